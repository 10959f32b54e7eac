package bench

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tsplab/tsplab/ga"
	"github.com/tsplab/tsplab/opt"
	"github.com/tsplab/tsplab/sa"
	"github.com/tsplab/tsplab/tsp"
)

// testAlgorithms builds small fast GA and SA factories.
func testAlgorithms() []Algorithm {
	return []Algorithm{
		{
			Name: "ga",
			New: func(p *tsp.Problem, seed int64) (opt.Engine, error) {
				cfg := ga.Config{
					PopulationSize: 32,
					Generations:    100,
					MutationRate:   0.05,
					TournamentK:    3,
					Elitism:        2,
					StallLimit:     20,
				}
				return ga.New(p, cfg, tsp.NewRNG(seed))
			},
		},
		{
			Name: "sa",
			New: func(p *tsp.Problem, seed int64) (opt.Engine, error) {
				cfg := sa.Config{
					InitialTemp:      50,
					FinalTemp:        0.5,
					Alpha:            0.05,
					NeighborsPerTemp: 5,
					StallLimit:       2000,
				}
				return sa.New(p, cfg, tsp.NewRNG(seed))
			},
		},
	}
}

func testCase() Case {
	return Case{Cities: 12, Width: 100, Height: 100, ProblemSeed: 42}
}

func TestRunner_Validation(t *testing.T) {
	ctx := context.Background()

	_, err := Runner{Runs: 3, MaxSteps: 100}.RunCase(ctx, testCase(), nil)
	require.ErrorIs(t, err, ErrNoAlgorithms)

	_, err = Runner{Runs: 0, MaxSteps: 100}.RunCase(ctx, testCase(), testAlgorithms())
	require.ErrorIs(t, err, ErrBadRuns)

	_, err = Runner{Runs: 3, MaxSteps: 0}.RunCase(ctx, testCase(), testAlgorithms())
	require.ErrorIs(t, err, ErrBadMaxSteps)

	bad := testCase()
	bad.Cities = 2
	_, err = Runner{Runs: 3, MaxSteps: 100}.RunCase(ctx, bad, testAlgorithms())
	require.ErrorIs(t, err, tsp.ErrTooFewCities)
}

func TestRunner_ProducesFullMatrix(t *testing.T) {
	r := Runner{Runs: 3, BaseSeed: 1, MaxSteps: 10000}

	records, err := r.RunCase(context.Background(), testCase(), testAlgorithms())
	require.NoError(t, err)
	require.Len(t, records, 6)

	perAlgo := make(map[string]int)
	for _, rec := range records {
		perAlgo[rec.Algorithm]++
		require.Greater(t, rec.Best, 0.0)
		require.Greater(t, rec.Steps, 0)
		require.GreaterOrEqual(t, rec.Elapsed.Nanoseconds(), int64(0))
	}
	require.Equal(t, 3, perAlgo["ga"])
	require.Equal(t, 3, perAlgo["sa"])
}

func TestRunner_IsReproducible(t *testing.T) {
	r := Runner{Runs: 2, BaseSeed: 7, MaxSteps: 10000}

	first, err := r.RunCase(context.Background(), testCase(), testAlgorithms())
	require.NoError(t, err)
	second, err := r.RunCase(context.Background(), testCase(), testAlgorithms())
	require.NoError(t, err)

	require.Len(t, second, len(first))
	for i := range first {
		require.Equal(t, first[i].Algorithm, second[i].Algorithm)
		require.Equal(t, first[i].Best, second[i].Best)
		require.Equal(t, first[i].Steps, second[i].Steps)
	}
}

func TestRunner_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := Runner{Runs: 1, BaseSeed: 1, MaxSteps: 10000}
	_, err := r.RunCase(ctx, testCase(), testAlgorithms())
	require.ErrorIs(t, err, context.Canceled)
}

func TestRunner_MaxStepsCapsRun(t *testing.T) {
	// A one-step cap cannot finish either engine on a 12-city problem.
	r := Runner{Runs: 1, BaseSeed: 1, MaxSteps: 1}

	records, err := r.RunCase(context.Background(), testCase(), testAlgorithms())
	require.NoError(t, err)
	for _, rec := range records {
		require.Equal(t, 1, rec.Steps)
	}
}
