package cache

import "context"

// Cache is the concurrency-safe surface of the engine, implemented by
// SyncCache. All methods are safe for concurrent use by multiple
// goroutines.
//
// Typical complexity for operations is amortized O(1):
// a map lookup plus constant-time chain adjustments under the cache lock.
type Cache[K comparable, V any] interface {
	// Get returns the value for k and a presence flag.
	// On hit the entry is promoted to most recently used: Get mutates
	// the recency order even though it reads like a pure lookup.
	// A miss is not an error; a non-nil error means the key was rejected
	// by the configured validity policy (ErrInvalidKey).
	Get(k K) (V, bool, error)

	// Peek returns the value for k without promoting the entry and
	// without recording a hit or a miss.
	Peek(k K) (V, bool, error)

	// Put inserts or updates k→v. An existing key is overwritten in
	// place and promoted (no eviction); a new key that pushes the cache
	// past capacity evicts exactly one least-recently-used entry.
	Put(k K, v V) error

	// ContainsKey reports presence without touching the recency order
	// or the statistics counters.
	ContainsKey(k K) (bool, error)

	// Remove deletes k if present and reports whether it was resident.
	// Explicit removals are not counted as evictions in Stats.
	Remove(k K) (bool, error)

	// Len returns the number of resident entries. Always <= Capacity().
	Len() int

	// Capacity returns the fixed entry limit; it never changes after
	// construction.
	Capacity() int

	// Clear removes every entry. Statistics are NOT reset; use
	// Stats().Reset() for that.
	Clear()

	// Stats returns the live statistics recorder for this cache.
	// Its counters may be read without holding the cache lock.
	Stats() *Stats

	// GetOrLoad returns the value for k, loading it via Options.Loader
	// on miss. Concurrent loads for the same key are coalesced.
	// If no Loader was configured, returns ErrNoLoader.
	GetOrLoad(ctx context.Context, k K) (V, error)
}
