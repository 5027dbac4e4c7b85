package gk

// Entry is one tuple of the summary: an observed value plus the rank
// bookkeeping maintained for it. G is the minimum rank contribution of
// this tuple and everything merged into it; Delta is the additional
// uncertainty on top of the minimum rank.
type Entry struct {
	Value float64 `json:"v"`
	G     int64   `json:"g"`
	Delta int64   `json:"delta"`
}

func (e Entry) span() int64 {
	return e.G + e.Delta
}
