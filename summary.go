// Package gk implements the Greenwald-Khanna summary for estimating
// rank statistics (quantiles, percentiles) over an unbounded stream of
// observations using bounded memory.
//
// "Space-Efficient Online Computation of Quantile Summaries"
// (Greenwald, Khanna 2001)
// http://infolab.stanford.edu/~datar/courses/cs361a/papers/quantiles.pdf
//
// The summary is backed by a skiplist so inserting an observation is
// O(log n) expected; queries scan the compressed summary, whose size
// stays O((1/epsilon) * log(epsilon*n)).
package gk

import (
	"math"

	"github.com/pkg/errors"
)

// ErrRankOutOfRange is reported when a query asks for a rank the
// summary cannot answer: the summary is empty or the rank lies outside
// [1, n].
var ErrRankOutOfRange = errors.New("gk: rank out of range")

// Summary holds a single-stream quantile summary. A query at rank r
// returns a value whose true rank in the fully sorted stream is within
// epsilon*n of r.
//
// A Summary is not safe for concurrent use. Queries may run alongside
// each other, but Insert must be serialized against every other call
// on the same instance.
type Summary struct {
	epsilon float64
	n       int64
	size    int64
	list    *skiplist
	min     float64
	max     float64
}

// New returns an empty summary with the given error tolerance.
// epsilon must lie strictly between 0 and 1.
func New(epsilon float64) (*Summary, error) {
	if epsilon <= 0 || epsilon >= 1 {
		return nil, errors.Errorf("gk: epsilon must be in (0, 1), got %v", epsilon)
	}
	return &Summary{
		epsilon: epsilon,
		list:    newSkiplist(),
		min:     math.Inf(1),
		max:     math.Inf(-1),
	}, nil
}

// Insert adds one observation to the stream and recompresses the
// summary. Any value is acceptable; Insert never fails.
func (s *Summary) Insert(value float64) {
	node := s.list.insert(Entry{Value: value, G: 1})
	if node.prev[0] != s.list.head && node.next[0] != nil {
		node.entry.Delta = s.interiorDelta()
	}
	if value < s.min {
		s.min = value
	}
	if value > s.max {
		s.max = value
	}
	s.size++
	s.n++
	s.compress()
}

// interiorDelta is the uncertainty assigned to an insert that is
// neither the new minimum nor the new maximum: the full currently
// tolerable error budget, capped so the tuple still fits the
// compression threshold once n counts it.
func (s *Summary) interiorDelta() int64 {
	delta := int64(math.Round(2 * s.epsilon * float64(s.n)))
	if limit := s.threshold(s.n+1) - 1; delta > limit {
		delta = limit
	}
	if delta < 0 {
		delta = 0
	}
	return delta
}

func (s *Summary) threshold(n int64) int64 {
	return int64(math.Floor(2 * s.epsilon * float64(n)))
}

// compress merges adjacent tuples whose combined bookkeeping fits the
// current error budget. It runs after every insert; users never call
// it directly.
func (s *Summary) compress() {
	budget := s.threshold(s.n)
	node := s.list.front()
	for node != nil && node.next[0] != nil {
		next := node.next[0]
		g := node.entry.G + next.entry.G
		delta := node.entry.Delta
		if next.entry.Delta > delta {
			delta = next.entry.Delta
		}
		// The merged tuple must itself stay within the budget, so the
		// wider of the two uncertainties is what gets tested and kept.
		if g+delta > budget {
			node = next
			continue
		}
		next.entry.G = g
		next.entry.Delta = delta
		prev := node.prev[0]
		s.list.remove(node)
		s.size--
		// Step back one position: the merge may enable a further
		// merge with the new predecessor.
		if prev != s.list.head {
			node = prev
		} else {
			node = next
		}
	}
}

// Query returns the estimated value at rank targetRank, counted 1..n.
// An empty summary or a rank outside [1, n] reports ErrRankOutOfRange.
func (s *Summary) Query(targetRank int64) (float64, error) {
	if s.size == 0 {
		return 0, errors.Wrap(ErrRankOutOfRange, "empty summary")
	}
	if targetRank < 1 || targetRank > s.n {
		return 0, errors.Wrapf(ErrRankOutOfRange, "rank %d not in [1, %d]", targetRank, s.n)
	}

	tolerance := s.epsilon * float64(s.n)
	var rmin int64
	for node := s.list.front(); node != nil; node = node.next[0] {
		rmin += node.entry.G
		rmax := rmin + node.entry.Delta
		if float64(targetRank)-float64(rmin) <= tolerance &&
			float64(rmax)-float64(targetRank) <= tolerance {
			return node.entry.Value, nil
		}
	}
	return 0, errors.Wrapf(ErrRankOutOfRange, "no entry covers rank %d", targetRank)
}
