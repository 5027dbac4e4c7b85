package gk

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// QueryPercentile converts the fraction p into a rank and delegates to
// Query. p must lie in [0, 1].
func (s *Summary) QueryPercentile(p float64) (float64, error) {
	if p < 0 || p > 1 {
		return 0, errors.Errorf("gk: percentile must be in [0, 1], got %v", p)
	}
	return s.Query(int64(math.Round(p * float64(s.n))))
}

// Entries returns a snapshot of the tuple sequence in ascending value
// order. The snapshot together with Epsilon and Count is everything an
// external store needs to persist the summary.
func (s *Summary) Entries() []Entry {
	out := make([]Entry, 0, s.size)
	for node := s.list.front(); node != nil; node = node.next[0] {
		out = append(out, node.entry)
	}
	return out
}

// Count returns the number of observations inserted so far.
func (s *Summary) Count() int64 {
	return s.n
}

// Size returns the number of tuples currently held.
func (s *Summary) Size() int64 {
	return s.size
}

// Epsilon returns the configured error tolerance.
func (s *Summary) Epsilon() float64 {
	return s.epsilon
}

// Min returns the smallest observation seen, +Inf before any insert.
// Tracked separately from the tuples, since compression may merge the
// minimum tuple away.
func (s *Summary) Min() float64 {
	return s.min
}

// Max returns the largest observation seen, -Inf before any insert.
func (s *Summary) Max() float64 {
	return s.max
}

// Reset drops all observations, keeping the configured tolerance.
func (s *Summary) Reset() {
	s.list = newSkiplist()
	s.n = 0
	s.size = 0
	s.min = math.Inf(1)
	s.max = math.Inf(-1)
}

func (s *Summary) String() string {
	return fmt.Sprintf("gk.Summary{eps=%v n=%d size=%d min=%v max=%v}",
		s.epsilon, s.n, s.size, s.min, s.max)
}
