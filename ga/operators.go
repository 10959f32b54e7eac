// Package ga - the three genetic operators.
//
// All operators work on raw order slices and a caller-supplied RNG; they
// allocate nothing. The crossover uses a stamp-marked scratch slice so the
// per-generation inner loop never clears an O(n) buffer.
package ga

import (
	"math/rand"

	"github.com/tsplab/tsplab/tsp"
)

// tournamentSelect draws k population indices uniformly with replacement and
// returns the one whose tour has the minimum cached length. k==1 degenerates
// to pure random selection (no selection pressure), which is legal.
//
// Contract: every tour in pop is scored, k >= 1.
//
// Complexity: O(k).
func tournamentSelect(pop []tsp.Tour, rng *rand.Rand, k int) int {
	var (
		best = rng.Intn(len(pop))
		i    int
		cand int
	)
	for i = 1; i < k; i++ {
		cand = rng.Intn(len(pop))
		if pop[cand].Length < pop[best].Length {
			best = cand
		}
	}

	return best
}

// orderCrossover writes the Order Crossover (OX) of p1 and p2 into child.
//
// Two cut points a <= b are drawn uniformly over [0, n-1] (order-independent:
// descending draws are swapped). The inclusive slice p1[a..b] is copied into
// the child at the same positions; the remaining positions are filled by
// scanning p2 from position b+1 (wrapping) and skipping genes already placed.
// The fill cursor also starts at b+1 and only ever visits positions outside
// [a,b], so the child is a valid permutation by construction, preserving p2's
// relative order for the non-inherited genes.
//
// Self-crossover (p1 == p2 element-wise) reproduces the parent exactly.
//
// mark/stamp is reusable scratch: mark[g] == *stamp tags gene g as placed for
// this invocation only, so the buffer is never cleared between calls.
//
// Contract: p1, p2 are permutations of 0..n-1; len(child) == len(mark) == n.
//
// Complexity: O(n), no allocations.
func orderCrossover(p1, p2, child []int, rng *rand.Rand, mark []int, stamp *int) {
	var n = len(p1)

	var (
		a = rng.Intn(n)
		b = rng.Intn(n)
	)
	if a > b {
		a, b = b, a
	}

	*stamp++
	var cur = *stamp

	// Inherited segment from p1, verbatim and in place.
	var (
		i    int
		gene int
	)
	for i = a; i <= b; i++ {
		gene = p1[i]
		child[i] = gene
		mark[gene] = cur
	}

	// Fill the cyclic remainder (b+1 .. a-1) in p2's order, starting the scan
	// right after the segment. The cursor advances once per placed gene and
	// therefore never re-enters [a,b].
	var pos = (b + 1) % n
	for i = 0; i < n; i++ {
		gene = p2[(b+1+i)%n]
		if mark[gene] == cur {
			continue
		}
		child[pos] = gene
		pos = (pos + 1) % n
	}
}

// mutateSwap visits every position independently and, with probability rate,
// swaps its gene with a uniformly chosen position. Self-swap is allowed and
// is a no-op; the slice stays a permutation under any outcome.
//
// Complexity: O(n) draws.
func mutateSwap(p []int, rate float64, rng *rand.Rand) {
	var (
		n = len(p)
		i int
		j int
	)
	for i = 0; i < n; i++ {
		if rng.Float64() < rate {
			j = rng.Intn(n)
			p[i], p[j] = p[j], p[i]
		}
	}
}
