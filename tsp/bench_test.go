package tsp_test

import (
	"fmt"
	"testing"

	"github.com/tsplab/tsplab/tsp"
)

// BenchmarkTourLength measures the per-candidate evaluation cost both engines
// pay in their hot loops.
func BenchmarkTourLength(b *testing.B) {
	for _, n := range []int{50, 250, 1000} {
		p, err := tsp.RandomProblem(n, 1000, 1000, tsp.NewRNG(1))
		if err != nil {
			b.Fatal(err)
		}
		order, err := tsp.RandPermutation(n, tsp.NewRNG(2))
		if err != nil {
			b.Fatal(err)
		}

		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			var sink float64
			for i := 0; i < b.N; i++ {
				sink += p.TourLength(order)
			}
			_ = sink
		})
	}
}

func BenchmarkRandPermutation(b *testing.B) {
	rng := tsp.NewRNG(3)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := tsp.RandPermutation(250, rng); err != nil {
			b.Fatal(err)
		}
	}
}
