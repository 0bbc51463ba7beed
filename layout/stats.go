package layout

import "sync/atomic"

// Stats counts cache validity checks; safe for concurrent use
type Stats struct {
	hits   atomic.Uint64
	misses atomic.Uint64
}

// DefaultStats is shared by every cache built without WithStats
var DefaultStats = &Stats{}

func (s *Stats) Hit()           { s.hits.Add(1) }
func (s *Stats) Miss()          { s.misses.Add(1) }
func (s *Stats) Hits() uint64   { return s.hits.Load() }
func (s *Stats) Misses() uint64 { return s.misses.Load() }

// Ratio returns hits over total checks, 0 before any check
func (s *Stats) Ratio() float64 {
	h, m := s.Hits(), s.Misses()
	if h+m == 0 {
		return 0
	}
	return float64(h) / float64(h+m)
}

// Reset zeroes both counters
func (s *Stats) Reset() {
	s.hits.Store(0)
	s.misses.Store(0)
}
