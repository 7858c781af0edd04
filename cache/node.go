package cache

// node is an intrusive doubly linked list element owned by the engine's
// recency chain. It stores the key/value alongside the chain links.
//
// Sentinels are nodes too: the chain boundaries are nodes that never
// carry a real key/value and never appear in the index.
type node[K comparable, V any] struct {
	key K
	val V

	// Chain links: the head side is MRU, the tail side is LRU.
	prev *node[K, V]
	next *node[K, V]
}

// Key returns the node key (part of policy.Node interface).
func (n *node[K, V]) Key() K { return n.key }

// Value returns a pointer to the stored value (part of policy.Node interface).
// NOTE: callers must only read/write through this pointer while holding the
// cache lock; otherwise data races may occur.
func (n *node[K, V]) Value() *V { return &n.val }
