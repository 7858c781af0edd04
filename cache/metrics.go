package cache

// EvictReason explains why an entry left the cache.
type EvictReason int

const (
	// EvictCapacity — removed to keep Len() within Capacity().
	EvictCapacity EvictReason = iota
	// EvictExplicit — removed by an explicit Remove call.
	// Explicit removals are reported here but are not counted in the
	// Stats eviction counter.
	EvictExplicit
)

// Metrics exposes cache-level observability hooks.
// A NoopMetrics implementation is provided and used by default.
type Metrics interface {
	Hit()
	Miss()
	Evict(reason EvictReason)
	Size(entries int)
}

// NoopMetrics is a drop-in Metrics implementation that does nothing.
// It is safe for concurrent use and intended as the default when
// no observability backend is configured.
type NoopMetrics struct{}

func (NoopMetrics) Hit()              {}
func (NoopMetrics) Miss()             {}
func (NoopMetrics) Evict(EvictReason) {}
func (NoopMetrics) Size(entries int)  {}

// Ensure NoopMetrics implements the Metrics interface at compile time.
var _ Metrics = NoopMetrics{}
