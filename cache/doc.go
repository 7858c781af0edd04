// Package cache provides a fixed-capacity, generic, in-memory LRU cache
// with O(1) get/put/eviction, hit/miss/eviction statistics, a pluggable
// eviction-policy seam, lightweight metrics hooks, and a reader/writer
// concurrency wrapper.
//
// Design
//
//   - Storage: the engine keeps a map[K]*node for lookups and a doubly
//     linked recency chain for ordering. The chain is bounded by two
//     sentinel nodes, so insert/remove/move never branch on first/last
//     element. All operations are O(1) amortized.
//
//   - Ordering: the chain runs from MRU (after head) to LRU (before
//     tail). Get promotes the entry it returns — it is a MUTATING
//     operation, which is why the concurrency wrapper write-locks it.
//     Peek and ContainsKey are the non-mutating lookups.
//
//   - Concurrency: the engine (LRU) is single-threaded by contract and
//     carries no internal synchronization. SyncCache is the decorator
//     that serializes access: write lock for Get/Put/Remove/Clear, read
//     lock for ContainsKey/Peek/Len. Statistics counters are atomic and
//     readable without the lock.
//
//   - Policies: eviction policy is pluggable via the policy package;
//     LRU is the default and the only one shipped. Policies manipulate
//     the chain through hooks and never see the index.
//
//   - Statistics: per-cache hits/misses/evictions plus a derived
//     hit-rate. Clear() empties the cache but keeps the counters;
//     Stats().Reset() zeroes them explicitly.
//
//   - Metrics: Options.Metrics receives Hit/Miss/Evict/Size signals.
//     By default NoopMetrics is used; plug the Prometheus adapter from
//     metrics/prom to export them.
//
//   - GetOrLoad: coalesces concurrent loads for the same key using
//     singleflight. If Loader is nil, GetOrLoad returns ErrNoLoader.
//
// Basic usage
//
//	c, err := cache.NewSync[int, string](cache.Options[int, string]{Capacity: 3})
//	if err != nil {
//	    // only fails on Capacity <= 0
//	}
//	_ = c.Put(1, "One")
//	if v, ok, _ := c.Get(1); ok {
//	    _ = v // use value; entry 1 is now most recently used
//	}
//	fmt.Println(c.Stats().HitRate())
//
// Exporting metrics (Prometheus adapter)
//
//	m := prom.New(nil, "lrucache", "demo", nil) // implements Metrics
//	c, _ := cache.NewSync[string, []byte](cache.Options[string, []byte]{
//	    Capacity: 10_000,
//	    Metrics:  m,
//	})
//
// Thread-safety & complexity
//
// The bare LRU engine must only be used from one goroutine; SyncCache is
// safe for concurrent use. Typical operation cost is O(1) expected time:
// one map access and a constant amount of pointer fixes. Eviction work
// is O(1) per removed item, and at most one entry is evicted per Put.
package cache
