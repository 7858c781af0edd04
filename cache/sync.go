package cache

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/IvanBrykalov/lrucache/internal/singleflight"
)

var tracer = otel.Tracer("github.com/IvanBrykalov/lrucache/cache")

// SyncCache decorates an LRU engine with a reader/writer lock, exposing
// the identical contract for concurrent callers.
//
// Lock discipline: Get takes the WRITE lock. Get promotes the entry it
// returns, so running it under a read lock would let two goroutines
// relink the chain concurrently and corrupt it — the classic LRU
// concurrency trap. Only ContainsKey, Peek and Len are pure reads and
// use the read lock; Capacity is immutable and Stats is internally
// atomic, so neither takes any lock.
type SyncCache[K comparable, V any] struct {
	mu sync.RWMutex
	c  *LRU[K, V]

	// singleflight group for coalescing concurrent loads in GetOrLoad.
	sf singleflight.Group[K, V]

	traceEnabled bool
}

// NewSync constructs an engine from opt and wraps it.
// Returns ErrInvalidCapacity when opt.Capacity <= 0.
func NewSync[K comparable, V any](opt Options[K, V]) (*SyncCache[K, V], error) {
	c, err := New(opt)
	if err != nil {
		return nil, err
	}
	return &SyncCache[K, V]{c: c, traceEnabled: opt.Tracing}, nil
}

// WrapSync wraps an existing engine. The engine must not be called
// directly afterwards: direct calls bypass the lock.
func WrapSync[K comparable, V any](c *LRU[K, V]) *SyncCache[K, V] {
	return &SyncCache[K, V]{c: c, traceEnabled: c.opt.Tracing}
}

// Get returns the value for k and promotes the entry on hit.
// Write lock: promotion mutates the recency chain.
func (s *SyncCache[K, V]) Get(k K) (V, bool, error) {
	var span trace.Span
	if s.traceEnabled {
		_, span = tracer.Start(context.Background(), "cache.Get")
		defer span.End()
	}

	s.mu.Lock()
	v, ok, err := s.c.Get(k)
	s.mu.Unlock()

	if s.traceEnabled {
		span.SetAttributes(attribute.Bool("cache.hit", ok))
	}
	return v, ok, err
}

// Peek returns the value for k without promotion. Read lock is enough:
// nothing is mutated.
func (s *SyncCache[K, V]) Peek(k K) (V, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.c.Peek(k)
}

// Put inserts or updates k→v under the write lock.
func (s *SyncCache[K, V]) Put(k K, v V) error {
	var span trace.Span
	if s.traceEnabled {
		_, span = tracer.Start(context.Background(), "cache.Put")
		defer span.End()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c.Put(k, v)
}

// ContainsKey reports presence. Read lock is sufficient since it does
// not modify the access order.
func (s *SyncCache[K, V]) ContainsKey(k K) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.c.ContainsKey(k)
}

// Remove deletes k if present, under the write lock.
func (s *SyncCache[K, V]) Remove(k K) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c.Remove(k)
}

// Len returns the number of resident entries.
func (s *SyncCache[K, V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.c.Len()
}

// Capacity returns the fixed entry limit. Immutable, no lock needed.
func (s *SyncCache[K, V]) Capacity() int { return s.c.Capacity() }

// Stats returns the statistics recorder. Its counters are independently
// atomic, so no cache lock is taken here or when reading them.
func (s *SyncCache[K, V]) Stats() *Stats { return s.c.Stats() }

// Clear removes every entry under the write lock. Statistics survive.
func (s *SyncCache[K, V]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.c.Clear()
}

// GetOrLoad returns the value for k; on miss it loads via Options.Loader,
// coalescing concurrent loads for the same key (singleflight).
// If no Loader is configured, returns ErrNoLoader.
func (s *SyncCache[K, V]) GetOrLoad(ctx context.Context, k K) (V, error) {
	// fast path
	v, ok, err := s.Get(k)
	if err != nil {
		var zero V
		return zero, err
	}
	if ok {
		return v, nil
	}
	if s.c.opt.Loader == nil {
		var zero V
		return zero, ErrNoLoader
	}

	// singleflight: exactly one real load for the key
	return s.sf.Do(ctx, k, func() (V, error) {
		// double-check after flight join
		if v, ok, err := s.Get(k); err != nil || ok {
			return v, err
		}
		v, err := s.c.opt.Loader(ctx, k)
		if err == nil {
			if perr := s.Put(k, v); perr != nil {
				return v, perr
			}
		}
		return v, err
	})
}

// Compile-time check: SyncCache implements the Cache interface.
var _ Cache[string, int] = (*SyncCache[string, int])(nil)
