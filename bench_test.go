package gk_test

import (
	"math/rand"
	"testing"

	"github.com/beorn7/perks/quantile"
	"github.com/streamstat/gk"
	"github.com/stripe/veneur/tdigest"
)

const benchMask = 1<<16 - 1

func benchValues() []float64 {
	rng := rand.New(rand.NewSource(42))
	vals := make([]float64, benchMask+1)
	for i := range vals {
		vals[i] = rng.ExpFloat64() * 250
	}
	return vals
}

func BenchmarkSummaryInsert(b *testing.B) {
	vals := benchValues()
	sum, err := gk.New(0.01)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sum.Insert(vals[i&benchMask])
	}
}

func BenchmarkPerksInsert(b *testing.B) {
	vals := benchValues()
	est := quantile.NewTargeted(map[float64]float64{
		0.5: 0.005, 0.9: 0.001, 0.99: 0.0001,
	})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		est.Insert(vals[i&benchMask])
	}
}

func BenchmarkTDigestInsert(b *testing.B) {
	vals := benchValues()
	td := tdigest.NewMerging(100, false)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		td.Add(vals[i&benchMask], 1)
	}
}

func BenchmarkSummaryQuery(b *testing.B) {
	sum, err := gk.New(0.01)
	if err != nil {
		b.Fatal(err)
	}
	for _, v := range benchValues() {
		sum.Insert(v)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := sum.QueryPercentile(0.9); err != nil {
			b.Fatal(err)
		}
	}
}
