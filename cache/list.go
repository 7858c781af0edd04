package cache

// chain is the recency ordering structure: a doubly linked list bounded
// by two fixed sentinel nodes. head.next is the most recently used real
// entry, tail.prev the least recently used; walking head→tail visits
// entries in strictly decreasing recency.
//
// The sentinels are the correctness lever here: every real node always
// has a live prev and next, so pushFront/moveToFront/remove never branch
// on "is this the first/last element" and never touch nil.
type chain[K comparable, V any] struct {
	head *node[K, V] // sentinel before MRU
	tail *node[K, V] // sentinel after LRU
	len  int         // number of real entries between the sentinels
}

func newChain[K comparable, V any]() *chain[K, V] {
	l := &chain[K, V]{
		head: &node[K, V]{},
		tail: &node[K, V]{},
	}
	l.head.next = l.tail
	l.tail.prev = l.head
	return l
}

// pushFront links a brand-new node immediately after the head sentinel.
// O(1).
func (l *chain[K, V]) pushFront(n *node[K, V]) {
	n.prev = l.head
	n.next = l.head.next
	l.head.next.prev = n
	l.head.next = n
	l.len++
}

// moveToFront promotes an already-linked node to MRU. O(1).
// Must not be called on nodes that have been removed from the chain.
func (l *chain[K, V]) moveToFront(n *node[K, V]) {
	if l.head.next == n {
		return
	}
	n.prev.next = n.next
	n.next.prev = n.prev
	n.prev = l.head
	n.next = l.head.next
	l.head.next.prev = n
	l.head.next = n
}

// remove unlinks an arbitrary node in O(1) given a direct reference.
func (l *chain[K, V]) remove(n *node[K, V]) {
	n.prev.next = n.next
	n.next.prev = n.prev
	n.prev, n.next = nil, nil
	l.len--
}

// back returns the current LRU node, or nil if the chain holds no real
// entries. O(1).
func (l *chain[K, V]) back() *node[K, V] {
	if l.tail.prev == l.head {
		return nil
	}
	return l.tail.prev
}

// evictBack removes and returns the LRU node. The second return is false
// when the chain is empty. O(1).
func (l *chain[K, V]) evictBack() (*node[K, V], bool) {
	n := l.back()
	if n == nil {
		return nil, false
	}
	l.remove(n)
	return n, true
}

// reset drops every real node by relinking the sentinels.
func (l *chain[K, V]) reset() {
	l.head.next = l.tail
	l.tail.prev = l.head
	l.len = 0
}
