package main

import (
	"fmt"
	"math/rand"

	"github.com/beorn7/perks/quantile"
	"github.com/streamstat/gk"
	"github.com/stripe/veneur/tdigest"
)

func main() {
	sum, err := gk.New(0.01)
	if err != nil {
		panic(err)
	}
	ckms := quantile.NewTargeted(map[float64]float64{
		0.5: 0.001, 0.9: 0.001, 0.99: 0.001,
	})
	td := tdigest.NewMerging(100, false)

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 2e5; i++ {
		v := rng.ExpFloat64() * 250 // long-tailed, latency-like
		sum.Insert(v)
		ckms.Insert(v)
		td.Add(v, 1)
	}

	fmt.Println(sum)
	for _, p := range []float64{0.5, 0.9, 0.99} {
		v, err := sum.QueryPercentile(p)
		if err != nil {
			panic(err)
		}
		fmt.Printf("p%g: gk=%.2f ckms=%.2f tdigest=%.2f\n",
			p*100, v, ckms.Query(p), td.Quantile(p))
	}
}
