package cache

import (
	"fmt"

	"github.com/IvanBrykalov/lrucache/policy"
	"github.com/IvanBrykalov/lrucache/policy/lru"
)

// LRU is the single-threaded cache engine: a key→node index paired with
// a sentinel-bounded recency chain. Every operation is amortized O(1):
// one map access plus a constant number of pointer fixes.
//
// The index and the chain are mutated in lockstep — every key in the
// index resolves to a node in the chain and vice versa, and the chain
// length always equals the index size.
//
// LRU is NOT safe for concurrent use. Wrap it in SyncCache whenever more
// than one goroutine may call in; note that even Get mutates internal
// state (it promotes the entry it returns).
type LRU[K comparable, V any] struct {
	idx   map[K]*node[K, V]
	chain *chain[K, V]
	cap   int

	// Policy and options (the policy uses hooks to manipulate the chain).
	pol policy.BoundPolicy[K, V]
	opt Options[K, V]

	stats Stats
}

// New constructs an engine with the provided Options.
// Returns ErrInvalidCapacity when opt.Capacity <= 0.
func New[K comparable, V any](opt Options[K, V]) (*LRU[K, V], error) {
	if opt.Capacity <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCapacity, opt.Capacity)
	}
	if opt.Metrics == nil {
		opt.Metrics = NoopMetrics{}
	}
	if opt.Policy == nil {
		opt.Policy = lru.New[K, V]()
	}

	c := &LRU[K, V]{
		idx:   make(map[K]*node[K, V], opt.Capacity),
		chain: newChain[K, V](),
		cap:   opt.Capacity,
		opt:   opt,
	}
	c.pol = opt.Policy.New(engineHooks[K, V]{c: c})
	return c, nil
}

// Get returns the value for k and a presence flag.
//
// On hit the entry becomes the most recently used: Get MUTATES the
// recency order even though it reads like a pure lookup. That side
// effect is what makes the cache LRU, not an accident — callers that
// need a value without promotion should use Peek.
// A miss is not an error; a non-nil error means the key was rejected.
func (c *LRU[K, V]) Get(k K) (V, bool, error) {
	var zero V
	if err := c.checkKey(k); err != nil {
		return zero, false, err
	}
	n, ok := c.idx[k]
	if !ok {
		c.stats.recordMiss()
		c.opt.Metrics.Miss()
		return zero, false, nil
	}
	c.pol.OnGet(n)
	c.stats.recordHit()
	c.opt.Metrics.Hit()
	return n.val, true, nil
}

// Peek returns the value for k without promoting the entry and without
// recording a hit or a miss.
func (c *LRU[K, V]) Peek(k K) (V, bool, error) {
	var zero V
	if err := c.checkKey(k); err != nil {
		return zero, false, err
	}
	n, ok := c.idx[k]
	if !ok {
		return zero, false, nil
	}
	return n.val, true, nil
}

// Put inserts or updates k→v.
//
// An existing key is overwritten in place and promoted; the size does
// not change and nothing is evicted. A new key is admitted at MRU, and
// if the cache then exceeds its capacity, exactly one least-recently-used
// entry is evicted — Len() <= Capacity() holds again before Put returns.
func (c *LRU[K, V]) Put(k K, v V) error {
	if err := c.checkKey(k); err != nil {
		return err
	}
	if c.opt.ValueCheck != nil {
		if err := c.opt.ValueCheck(v); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidValue, err)
		}
	}

	if n, ok := c.idx[k]; ok {
		// In-place overwrite; updates count as recent use.
		n.val = v
		c.pol.OnUpdate(n)
		return nil
	}

	n := &node[K, V]{key: k, val: v}
	c.idx[k] = n

	// Let the policy place the node (and optionally propose an eviction).
	if ev := c.pol.OnAdd(n); ev != nil {
		evn := ev.(*node[K, V])
		c.chain.remove(evn)
		c.dropNode(evn, EvictCapacity)
	}

	// Enforce the capacity limit after insertion.
	for c.chain.len > c.cap {
		tail, ok := c.chain.evictBack()
		if !ok {
			// The loop condition says entries exist; an empty chain here
			// means the index and the chain desynchronized.
			panic("lrucache: eviction from empty chain (index/chain desync)")
		}
		c.dropNode(tail, EvictCapacity)
	}
	c.opt.Metrics.Size(c.chain.len)
	return nil
}

// ContainsKey reports whether k is resident. It is a pure index lookup:
// no promotion, no statistics traffic.
func (c *LRU[K, V]) ContainsKey(k K) (bool, error) {
	if err := c.checkKey(k); err != nil {
		return false, err
	}
	_, ok := c.idx[k]
	return ok, nil
}

// Remove deletes k if present and reports whether it was resident.
// Explicit removals are not counted as evictions in Stats; the metrics
// hook still sees them under the EvictExplicit reason.
func (c *LRU[K, V]) Remove(k K) (bool, error) {
	if err := c.checkKey(k); err != nil {
		return false, err
	}
	n, ok := c.idx[k]
	if !ok {
		return false, nil
	}
	c.pol.OnRemove(n)
	c.chain.remove(n)
	delete(c.idx, k)
	c.opt.Metrics.Evict(EvictExplicit)
	if cb := c.opt.OnEvict; cb != nil {
		cb(n.key, n.val, EvictExplicit)
	}
	c.opt.Metrics.Size(c.chain.len)
	return true, nil
}

// Len returns the number of resident entries.
func (c *LRU[K, V]) Len() int { return c.chain.len }

// Capacity returns the fixed entry limit chosen at construction.
func (c *LRU[K, V]) Capacity() int { return c.cap }

// Stats returns the live statistics recorder. Its counters are atomic
// and may be read without any external locking.
func (c *LRU[K, V]) Stats() *Stats { return &c.stats }

// Clear removes every entry and resets Len() to 0.
//
// Statistics are NOT reset: the counters are cumulative history, so a
// hit-rate measured across clears stays meaningful. Call Stats().Reset()
// to zero them explicitly.
func (c *LRU[K, V]) Clear() {
	for n := c.chain.head.next; n != c.chain.tail; n = n.next {
		c.pol.OnRemove(n)
	}
	c.idx = make(map[K]*node[K, V], c.cap)
	c.chain.reset()
	c.opt.Metrics.Size(0)
}

// -------------------- internals --------------------

func (c *LRU[K, V]) checkKey(k K) error {
	if c.opt.KeyCheck == nil {
		return nil
	}
	if err := c.opt.KeyCheck(k); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	return nil
}

// dropNode finishes an eviction after n left the chain: policy and index
// bookkeeping, statistics, metrics, callback.
func (c *LRU[K, V]) dropNode(n *node[K, V], reason EvictReason) {
	c.pol.OnRemove(n)
	delete(c.idx, n.key)
	c.stats.recordEviction()
	c.opt.Metrics.Evict(reason)
	if cb := c.opt.OnEvict; cb != nil {
		// Callbacks run under the cache lock when wrapped in SyncCache;
		// keep them lightweight.
		cb(n.key, n.val, reason)
	}
}

// -------------------- policy hooks --------------------

// engineHooks adapts the engine's chain operations to policy.Hooks.
type engineHooks[K comparable, V any] struct{ c *LRU[K, V] }

func (h engineHooks[K, V]) MoveToFront(x policy.Node[K, V]) { h.c.chain.moveToFront(x.(*node[K, V])) }
func (h engineHooks[K, V]) PushFront(x policy.Node[K, V])   { h.c.chain.pushFront(x.(*node[K, V])) }
func (h engineHooks[K, V]) Remove(x policy.Node[K, V]) {
	// Policies call Remove while the cache lock is held.
	// Index bookkeeping is performed by the engine itself.
	h.c.chain.remove(x.(*node[K, V]))
}
func (h engineHooks[K, V]) Back() policy.Node[K, V] {
	// Explicit nil so a missing tail doesn't become a typed-nil interface.
	if n := h.c.chain.back(); n != nil {
		return n
	}
	return nil
}
func (h engineHooks[K, V]) Len() int { return h.c.chain.len }
