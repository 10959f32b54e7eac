// Package tsp - Problem construction and tour-length evaluation.
//
// A Problem owns the city slice and the derived N×N symmetric distance
// matrix. The matrix is stored as a flat row-major buffer (dist[i*n+j]) for
// cache-friendly reads, built exactly once in the constructor, and never
// mutated afterwards; rebuilding it means constructing a new Problem.
//
// Contracts:
//   - N >= MinCities for every constructor.
//   - Dist and TourLength assume in-range indices / a valid permutation;
//     callers validate once at the boundary (ValidatePermutation), never in
//     the per-candidate hot path.
//
// Complexity:
//   - Construction: O(N²) time and space (the matrix).
//   - Dist: O(1). TourLength: O(N), no allocations.
package tsp

import (
	"math"
	"math/rand"
)

// Problem is an ordered sequence of Cities plus the derived symmetric
// Euclidean distance matrix. Read-only after construction; safe to share
// across engines without synchronization.
type Problem struct {
	cities []City
	n      int
	dist   []float64 // flat row-major n*n, dist[i*n+j] == dist[j*n+i]
}

// NewProblem builds a Problem from the given cities and derives the distance
// matrix. The city slice is copied; later mutation of the argument does not
// affect the Problem.
//
// Errors: ErrTooFewCities when len(cities) < MinCities.
//
// Complexity: O(N²).
func NewProblem(cities []City) (*Problem, error) {
	if len(cities) < MinCities {
		return nil, ErrTooFewCities
	}

	var n = len(cities)
	p := &Problem{
		cities: make([]City, n),
		n:      n,
		dist:   make([]float64, n*n),
	}
	copy(p.cities, cities)

	// Symmetric fill: compute each pair once, mirror across the diagonal.
	// The diagonal stays at its zero value.
	var (
		i int
		j int
		d float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d = math.Hypot(
				float64(p.cities[i].X-p.cities[j].X),
				float64(p.cities[i].Y-p.cities[j].Y),
			)
			p.dist[i*n+j] = d
			p.dist[j*n+i] = d
		}
	}

	return p, nil
}

// RandomProblem populates count cities uniformly inside the [0,width)×[0,height)
// bounds (tags follow creation order) and builds the Problem from them.
// A nil rng selects the default deterministic stream (seed==0 policy).
//
// Errors: ErrTooFewCities when count < MinCities, ErrBadBounds when either
// bound is non-positive.
//
// Complexity: O(count²) dominated by the matrix build.
func RandomProblem(count, width, height int, rng *rand.Rand) (*Problem, error) {
	if count < MinCities {
		return nil, ErrTooFewCities
	}
	if width <= 0 || height <= 0 {
		return nil, ErrBadBounds
	}

	var r = rng
	if r == nil {
		r = NewRNG(0)
	}

	cities := make([]City, count)
	var i int
	for i = 0; i < count; i++ {
		cities[i] = City{
			X:   r.Intn(width),
			Y:   r.Intn(height),
			Tag: uint16(i),
		}
	}

	return NewProblem(cities)
}

// N returns the number of cities.
func (p *Problem) N() int { return p.n }

// CityAt returns the city at index i. Contract: 0 <= i < N.
func (p *Problem) CityAt(i int) City { return p.cities[i] }

// Cities returns an independent copy of the city slice, preserving creation
// order. The Problem's own storage stays private and immutable.
func (p *Problem) Cities() []City {
	out := make([]City, p.n)
	copy(out, p.cities)

	return out
}

// Dist returns the Euclidean distance between cities i and j.
// Contract: indices in [0..N-1]; the matrix is symmetric with a zero diagonal.
//
// Complexity: O(1).
func (p *Problem) Dist(i, j int) float64 {
	return p.dist[i*p.n+j]
}

// TourLength sums the cycle length of order: every consecutive edge plus the
// wrap-around edge from the last city back to the first.
//
// Contract: order is a permutation of 0..N-1 (ValidatePermutation); the
// function makes no ordering assumption beyond that and performs no per-call
// validation.
//
// Complexity: O(N), no allocations.
func (p *Problem) TourLength(order []int) float64 {
	var (
		n   = p.n
		acc float64
		i   int
	)
	for i = 0; i+1 < n; i++ {
		acc += p.dist[order[i]*n+order[i+1]]
	}
	// Closing edge: the tour is a cycle, not a path.
	acc += p.dist[order[n-1]*n+order[0]]

	return acc
}

// Evaluate scores t against the problem, caching the cycle length.
// Same contract as TourLength.
func (p *Problem) Evaluate(t *Tour) {
	t.Length = p.TourLength(t.Order)
}
