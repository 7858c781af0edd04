package cache

import (
	"context"
	"errors"

	"github.com/IvanBrykalov/lrucache/policy"
)

// Options configures the cache behavior. Zero values are safe except
// Capacity; sane defaults are applied in New():
//   - nil Policy  => LRU
//   - nil Metrics => NoopMetrics
type Options[K comparable, V any] struct {
	// Capacity is the entry count limit. Must be > 0; New returns
	// ErrInvalidCapacity otherwise. Immutable after construction.
	Capacity int

	// Policy is a pluggable eviction policy; nil => LRU by default.
	// Policies manipulate the recency chain only through policy.Hooks,
	// so substituting one never touches the index layer.
	Policy policy.Policy[K, V]

	// KeyCheck rejects keys the caller considers unrepresentable, for
	// example a zero value reserved as an internal sentinel. nil accepts
	// every key. A rejected key surfaces as ErrInvalidKey and leaves the
	// cache untouched.
	KeyCheck func(K) error

	// ValueCheck is the Put-side counterpart of KeyCheck; failures
	// surface as ErrInvalidValue.
	ValueCheck func(V) error

	// Loader fetches a value on cache miss. Used by SyncCache.GetOrLoad.
	Loader func(ctx context.Context, k K) (V, error)

	// Observability
	// OnEvict is called for every capacity eviction and explicit Remove,
	// synchronously under the cache lock; keep callbacks lightweight.
	OnEvict func(k K, v V, reason EvictReason)
	Metrics Metrics

	// Tracing enables OpenTelemetry spans around SyncCache operations.
	// Off by default; the engine itself never traces.
	Tracing bool
}

// ZeroKeyCheck returns a KeyCheck that rejects the zero value of K.
// Useful when the caller reserves the zero key as a "no key" sentinel.
func ZeroKeyCheck[K comparable]() func(K) error {
	return func(k K) error {
		var zero K
		if k == zero {
			return errors.New("zero key")
		}
		return nil
	}
}
