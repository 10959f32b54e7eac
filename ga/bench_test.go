package ga

import (
	"fmt"
	"testing"

	"github.com/tsplab/tsplab/tsp"
)

// BenchmarkStep measures one full generation across problem sizes with the
// population held at a realistic 200 tours.
func BenchmarkStep(b *testing.B) {
	for _, n := range []int{50, 250, 1000} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			rng := tsp.NewRNG(1)
			prob, err := tsp.RandomProblem(n, 800, 600, rng)
			if err != nil {
				b.Fatal(err)
			}

			cfg := DefaultConfig()
			cfg.PopulationSize = 200
			cfg.Generations = 1 << 30
			cfg.StallLimit = 1 << 30

			e, err := New(prob, cfg, rng)
			if err != nil {
				b.Fatal(err)
			}

			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				e.Step()
			}
		})
	}
}

// BenchmarkOrderCrossover isolates the recombination hot path.
func BenchmarkOrderCrossover(b *testing.B) {
	const n = 500

	var (
		rng   = tsp.NewRNG(1)
		p1    = make([]int, n)
		p2    = make([]int, n)
		child = make([]int, n)
		mark  = make([]int, n)
		stamp int
	)
	for i := 0; i < n; i++ {
		p1[i], p2[i] = i, i
	}
	tsp.ShuffleInPlace(p1, rng)
	tsp.ShuffleInPlace(p2, rng)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		orderCrossover(p1, p2, child, rng, mark, &stamp)
	}
}
