package bench

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tsplab/tsplab/tsp"
)

func TestSaveConvergence_Empty(t *testing.T) {
	err := SaveConvergence(filepath.Join(t.TempDir(), "c.png"), "t", nil)
	require.ErrorIs(t, err, ErrNoSeries)
}

func TestSaveConvergence_WritesPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "convergence.png")
	series := map[string]Series{
		"ga": {120, 115, 112, 110},
		"sa": {130, 118, 111, 109},
	}

	require.NoError(t, SaveConvergence(path, "ga vs sa", series))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Greater(t, info.Size(), int64(0))
}

func TestSaveTour_Validation(t *testing.T) {
	prob, err := tsp.NewProblem([]tsp.City{
		{X: 0, Y: 0}, {X: 0, Y: 10}, {X: 10, Y: 10}, {X: 10, Y: 0},
	})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "tour.png")

	err = SaveTour(path, "t", prob, tsp.Tour{})
	require.ErrorIs(t, err, ErrEmptyTour)

	err = SaveTour(path, "t", prob, tsp.Tour{Order: []int{0, 0, 1, 2}})
	require.ErrorIs(t, err, tsp.ErrNotPermutation)
}

func TestSaveTour_WritesPNG(t *testing.T) {
	rng := tsp.NewRNG(1)
	prob, err := tsp.RandomProblem(15, 200, 200, rng)
	require.NoError(t, err)

	order, err := tsp.RandPermutation(prob.N(), rng)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "tour.png")
	require.NoError(t, SaveTour(path, "random tour", prob, tsp.NewTour(order)))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Greater(t, info.Size(), int64(0))
}
