package cache

import (
	"math/rand"
	"runtime"
	"strconv"
	"sync"
	"testing"
	"time"
)

// A mixed workload of concurrent Get/Put/Peek/ContainsKey/Remove on
// random keys, with an occasional Clear. Should pass under `-race`
// without detector reports, and the capacity invariant must hold at
// every observation point.
func TestRace_MixedWorkload(t *testing.T) {
	const capacity = 1_024
	c, err := NewSync[string, []byte](Options[string, []byte]{Capacity: capacity})
	if err != nil {
		t.Fatal(err)
	}

	workers := 4 * runtime.GOMAXPROCS(0)
	keyspace := 10_000
	deadline := time.Now().Add(2 * time.Second)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(id int) {
			defer wg.Done()
			r := rand.New(rand.NewSource(time.Now().UnixNano() + int64(id)*9973))
			for time.Now().Before(deadline) {
				k := "k:" + strconv.Itoa(r.Intn(keyspace))
				switch r.Intn(100) {
				case 0: // ~1% — Clear
					c.Clear()
				case 1, 2, 3, 4: // ~4% — Remove
					c.Remove(k)
				case 5, 6, 7, 8, 9: // ~5% — ContainsKey
					c.ContainsKey(k)
				case 10, 11, 12, 13, 14: // ~5% — Peek
					c.Peek(k)
				case 15, 16, 17, 18, 19, 20, 21, 22, 23, 24: // ~10% — Put
					if err := c.Put(k, []byte("x")); err != nil {
						t.Errorf("Put: %v", err)
						return
					}
				default: // ~75% — Get
					c.Get(k)
				}
				if n := c.Len(); n > capacity {
					t.Errorf("Len %d exceeds capacity %d", n, capacity)
					return
				}
			}
		}(w)
	}
	wg.Wait()

	if n := c.Len(); n > capacity {
		t.Fatalf("final Len %d exceeds capacity %d", n, capacity)
	}
}

// Statistics must be readable concurrently with heavy mutation: the
// recorder is atomic and takes no part in the cache lock.
func TestRace_StatsReaders(t *testing.T) {
	c, err := NewSync[int, int](Options[int, int]{Capacity: 256})
	if err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(1 * time.Second)
	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; time.Now().Before(deadline); i++ {
			c.Put(i%1_000, i)
			c.Get(i % 1_000)
		}
	}()
	go func() {
		defer wg.Done()
		for time.Now().Before(deadline) {
			snap := c.Stats().Snapshot()
			if snap.HitRate < 0 || snap.HitRate > 1 {
				t.Errorf("hit rate out of range: %v", snap.HitRate)
				return
			}
		}
	}()
	wg.Wait()
}
