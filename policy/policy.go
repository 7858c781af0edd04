package policy

// Node is the minimal contract a cache entry must satisfy for a policy.
// It provides read-only access to the key and a pointer to the value.
// The pointer allows in-place updates without re-linking the intrusive node.
type Node[K comparable, V any] interface {
	Key() K
	Value() *V
}

// Hooks expose O(1) operations that a policy can use to manipulate the
// engine's recency chain. Implementations are provided by the engine.
//
// Concurrency: all hook calls happen under the cache lock.
// Important: hooks manage only the chain; the engine owns the key->node
// index, and the two are kept in lockstep by the engine.
type Hooks[K comparable, V any] interface {
	// MoveToFront promotes the node to MRU.
	MoveToFront(Node[K, V])
	// PushFront inserts the node at MRU (used on admission).
	PushFront(Node[K, V])
	// Remove detaches the node from the chain (index bookkeeping is done
	// by the engine).
	Remove(Node[K, V])
	// Back returns the current LRU node (or nil if empty).
	Back() Node[K, V]
	// Len returns the number of resident nodes.
	Len() int
}

// BoundPolicy is a policy instance bound to one engine's hooks.
// All methods are invoked under the cache lock.
//
// Semantics:
//   - OnAdd may return an eviction candidate (e.g., the LRU of a
//     probation queue). The engine will evict that node and subsequently
//     call OnRemove for it.
//   - OnGet/OnUpdate typically promote the node (e.g., move to MRU).
//   - OnRemove is a notification to update policy-internal state.
//     The engine performs the actual deletion.
type BoundPolicy[K comparable, V any] interface {
	OnAdd(Node[K, V]) (evict Node[K, V])
	OnGet(Node[K, V])
	OnUpdate(Node[K, V])
	OnRemove(Node[K, V])
}

// Policy is a factory that creates policy instances bound to a
// particular engine's hooks. Substituting a policy never touches the
// index layer: policies see the chain only through Hooks.
type Policy[K comparable, V any] interface {
	New(Hooks[K, V]) BoundPolicy[K, V]
}
