package cache

import "github.com/IvanBrykalov/lrucache/internal/util"

// Stats tracks cumulative cache effectiveness counters: hits, misses
// and capacity evictions.
//
// Each counter is independently atomic, so Stats may be read without
// holding the cache lock. Concurrent increments are never lost, but the
// three counters are not a consistent joint snapshot: reading Hits()
// then Misses() may observe increments from other goroutines in
// between. Counters are padded to separate cache lines to avoid false
// sharing on the hot path.
type Stats struct {
	hits   util.PaddedAtomicUint64
	misses util.PaddedAtomicUint64
	evicts util.PaddedAtomicUint64
}

func (s *Stats) recordHit()      { s.hits.Add(1) }
func (s *Stats) recordMiss()     { s.misses.Add(1) }
func (s *Stats) recordEviction() { s.evicts.Add(1) }

// Hits returns the number of Get calls that found their key.
func (s *Stats) Hits() uint64 { return s.hits.Load() }

// Misses returns the number of Get calls that did not find their key.
func (s *Stats) Misses() uint64 { return s.misses.Load() }

// Evictions returns the number of entries removed to enforce capacity.
// Explicit Remove calls and Clear are not counted here.
func (s *Stats) Evictions() uint64 { return s.evicts.Load() }

// HitRate returns hits/(hits+misses), or 0.0 before any Get was made.
func (s *Stats) HitRate() float64 {
	h := s.hits.Load()
	total := h + s.misses.Load()
	if total == 0 {
		return 0.0
	}
	return float64(h) / float64(total)
}

// Snapshot is a point-in-time copy of the counters. Each field is read
// atomically; the struct as a whole is not a consistent cut.
type Snapshot struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
	HitRate   float64
}

// Snapshot returns the current counter values.
func (s *Stats) Snapshot() Snapshot {
	return Snapshot{
		Hits:      s.Hits(),
		Misses:    s.Misses(),
		Evictions: s.Evictions(),
		HitRate:   s.HitRate(),
	}
}

// Reset zeroes every counter. Clear() deliberately does not call this:
// statistics track cumulative history across clears, and resetting them
// is a separate, explicit decision.
func (s *Stats) Reset() {
	s.hits.Store(0)
	s.misses.Store(0)
	s.evicts.Store(0)
}
