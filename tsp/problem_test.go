package tsp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tsplab/tsplab/tsp"
)

// squareCities is the canonical 4-city axis-aligned square with side 10;
// its optimal tour is the perimeter of exactly 40.
func squareCities() []tsp.City {
	return []tsp.City{
		{X: 0, Y: 0, Tag: 0},
		{X: 0, Y: 10, Tag: 1},
		{X: 10, Y: 10, Tag: 2},
		{X: 10, Y: 0, Tag: 3},
	}
}

// rotateLeft returns order cyclically rotated left by k positions.
func rotateLeft(order []int, k int) []int {
	n := len(order)
	out := make([]int, n)
	for i := 0; i < n; i++ {
		out[i] = order[(i+k)%n]
	}
	return out
}

// reversed returns a reversed copy of order.
func reversed(order []int) []int {
	n := len(order)
	out := make([]int, n)
	for i := 0; i < n; i++ {
		out[i] = order[n-1-i]
	}
	return out
}

func TestNewProblem_TooFewCities(t *testing.T) {
	_, err := tsp.NewProblem(squareCities()[:2])
	require.ErrorIs(t, err, tsp.ErrTooFewCities)

	_, err = tsp.NewProblem(nil)
	require.ErrorIs(t, err, tsp.ErrTooFewCities)
}

func TestNewProblem_CopiesCities(t *testing.T) {
	cities := squareCities()
	p, err := tsp.NewProblem(cities)
	require.NoError(t, err)

	// Mutating the argument after construction must not leak into the problem.
	cities[0].X = 999
	require.Equal(t, 0, p.CityAt(0).X)

	// Cities() hands out an independent copy as well.
	got := p.Cities()
	got[1].Y = -1
	require.Equal(t, 10, p.CityAt(1).Y)
}

func TestDistanceMatrix_SymmetricZeroDiagonal(t *testing.T) {
	p, err := tsp.RandomProblem(12, 300, 200, tsp.NewRNG(7))
	require.NoError(t, err)

	n := p.N()
	for i := 0; i < n; i++ {
		require.Zero(t, p.Dist(i, i))
		for j := 0; j < n; j++ {
			require.Equal(t, p.Dist(i, j), p.Dist(j, i), "dist(%d,%d)", i, j)
			if i != j {
				require.Greater(t, p.Dist(i, j), -1.0) // non-negative by construction
			}
		}
	}
}

func TestTourLength_SquarePerimeter(t *testing.T) {
	p, err := tsp.NewProblem(squareCities())
	require.NoError(t, err)

	// 0→1→2→3→0 traces the perimeter: 10+10+10+10.
	require.InDelta(t, 40.0, p.TourLength([]int{0, 1, 2, 3}), 1e-9)

	// The diagonal crossing 0→2→1→3→0 is strictly longer.
	require.Greater(t, p.TourLength([]int{0, 2, 1, 3}), 40.0)
}

// TestTourLength_CycleInvariance checks the undirected-cycle property: the
// length is invariant under cyclic rotation and under reversal of the order.
func TestTourLength_CycleInvariance(t *testing.T) {
	rng := tsp.NewRNG(42)

	for _, n := range []int{3, 4, 7, 25, 80} {
		p, err := tsp.RandomProblem(n, 500, 400, rng)
		require.NoError(t, err)

		order, err := tsp.RandPermutation(n, rng)
		require.NoError(t, err)

		base := p.TourLength(order)
		for k := 1; k < n; k++ {
			require.InDelta(t, base, p.TourLength(rotateLeft(order, k)), 1e-9,
				"n=%d rotation k=%d", n, k)
		}
		require.InDelta(t, base, p.TourLength(reversed(order)), 1e-9, "n=%d reversal", n)
	}
}

func TestRandomProblem_Bounds(t *testing.T) {
	_, err := tsp.RandomProblem(10, 0, 100, nil)
	require.ErrorIs(t, err, tsp.ErrBadBounds)
	_, err = tsp.RandomProblem(10, 100, -5, nil)
	require.ErrorIs(t, err, tsp.ErrBadBounds)
	_, err = tsp.RandomProblem(2, 100, 100, nil)
	require.ErrorIs(t, err, tsp.ErrTooFewCities)

	p, err := tsp.RandomProblem(50, 320, 240, tsp.NewRNG(3))
	require.NoError(t, err)
	require.Equal(t, 50, p.N())
	for i := 0; i < p.N(); i++ {
		c := p.CityAt(i)
		require.GreaterOrEqual(t, c.X, 0)
		require.Less(t, c.X, 320)
		require.GreaterOrEqual(t, c.Y, 0)
		require.Less(t, c.Y, 240)
		require.Equal(t, uint16(i), c.Tag)
	}
}

func TestEvaluate_CachesLength(t *testing.T) {
	p, err := tsp.NewProblem(squareCities())
	require.NoError(t, err)

	tour := tsp.NewTour([]int{0, 1, 2, 3})
	require.False(t, tour.Scored())
	require.True(t, math.IsInf(tour.Length, 1))

	p.Evaluate(&tour)
	require.True(t, tour.Scored())
	require.InDelta(t, 40.0, tour.Length, 1e-9)
}
