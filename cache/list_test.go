package cache

import "testing"

// chainKeys walks head→tail and returns the keys in recency order
// (MRU first). Used to assert exact ordering after mutations.
func chainKeys[K comparable, V any](l *chain[K, V]) []K {
	var out []K
	for n := l.head.next; n != l.tail; n = n.next {
		out = append(out, n.key)
	}
	return out
}

func sameKeys(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

// A fresh chain has linked sentinels and no real entries.
func TestChain_Empty(t *testing.T) {
	t.Parallel()

	l := newChain[string, int]()
	if l.len != 0 {
		t.Fatalf("new chain len = %d, want 0", l.len)
	}
	if l.back() != nil {
		t.Fatal("back() on empty chain must be nil")
	}
	if _, ok := l.evictBack(); ok {
		t.Fatal("evictBack() on empty chain must report empty")
	}
}

// pushFront stacks entries MRU-first.
func TestChain_PushFrontOrder(t *testing.T) {
	t.Parallel()

	l := newChain[string, int]()
	for i, k := range []string{"a", "b", "c"} {
		l.pushFront(&node[string, int]{key: k, val: i})
	}
	if got := chainKeys(l); !sameKeys(got, []string{"c", "b", "a"}) {
		t.Fatalf("order = %v, want [c b a]", got)
	}
	if l.len != 3 {
		t.Fatalf("len = %d, want 3", l.len)
	}
}

// moveToFront promotes middle and tail entries; promoting the MRU is a no-op.
func TestChain_MoveToFront(t *testing.T) {
	t.Parallel()

	l := newChain[string, int]()
	a := &node[string, int]{key: "a"}
	b := &node[string, int]{key: "b"}
	c := &node[string, int]{key: "c"}
	l.pushFront(a)
	l.pushFront(b)
	l.pushFront(c) // order: c b a

	l.moveToFront(a) // tail -> front
	if got := chainKeys(l); !sameKeys(got, []string{"a", "c", "b"}) {
		t.Fatalf("order = %v, want [a c b]", got)
	}
	l.moveToFront(c) // middle -> front
	if got := chainKeys(l); !sameKeys(got, []string{"c", "a", "b"}) {
		t.Fatalf("order = %v, want [c a b]", got)
	}
	l.moveToFront(c) // already MRU: no-op
	if got := chainKeys(l); !sameKeys(got, []string{"c", "a", "b"}) {
		t.Fatalf("order after no-op = %v, want [c a b]", got)
	}
	if l.len != 3 {
		t.Fatalf("len = %d, want 3 (moveToFront must not change length)", l.len)
	}
}

// evictBack removes the LRU entry and only the LRU entry.
func TestChain_EvictBack(t *testing.T) {
	t.Parallel()

	l := newChain[string, int]()
	l.pushFront(&node[string, int]{key: "a"})
	l.pushFront(&node[string, int]{key: "b"})

	n, ok := l.evictBack()
	if !ok || n.key != "a" {
		t.Fatalf("evictBack = (%v, %v), want (a, true)", n, ok)
	}
	n, ok = l.evictBack()
	if !ok || n.key != "b" {
		t.Fatalf("evictBack = (%v, %v), want (b, true)", n, ok)
	}
	if _, ok := l.evictBack(); ok {
		t.Fatal("evictBack on drained chain must report empty")
	}
	if l.len != 0 {
		t.Fatalf("len = %d, want 0", l.len)
	}
}

// remove unlinks an arbitrary entry given a direct reference.
func TestChain_RemoveArbitrary(t *testing.T) {
	t.Parallel()

	l := newChain[string, int]()
	a := &node[string, int]{key: "a"}
	b := &node[string, int]{key: "b"}
	c := &node[string, int]{key: "c"}
	l.pushFront(a)
	l.pushFront(b)
	l.pushFront(c) // c b a

	l.remove(b)
	if got := chainKeys(l); !sameKeys(got, []string{"c", "a"}) {
		t.Fatalf("order = %v, want [c a]", got)
	}
	if b.prev != nil || b.next != nil {
		t.Fatal("removed node must have cleared links")
	}
}

// reset drops everything by relinking the sentinels.
func TestChain_Reset(t *testing.T) {
	t.Parallel()

	l := newChain[string, int]()
	l.pushFront(&node[string, int]{key: "a"})
	l.pushFront(&node[string, int]{key: "b"})

	l.reset()
	if l.len != 0 || l.back() != nil {
		t.Fatalf("after reset: len=%d back=%v, want empty", l.len, l.back())
	}

	// Chain must be reusable after reset.
	l.pushFront(&node[string, int]{key: "x"})
	if got := chainKeys(l); !sameKeys(got, []string{"x"}) {
		t.Fatalf("order after reuse = %v, want [x]", got)
	}
}
