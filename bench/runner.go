// Package bench - the repeated-run harness.
package bench

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tsplab/tsplab/opt"
	"github.com/tsplab/tsplab/tsp"
)

// Sentinel errors raised by the runner.
var (
	// ErrNoAlgorithms indicates RunCase was called with an empty set.
	ErrNoAlgorithms = errors.New("bench: no algorithms to run")

	// ErrBadRuns indicates Runner.Runs < 1.
	ErrBadRuns = errors.New("bench: runs must be >= 1")

	// ErrBadMaxSteps indicates Runner.MaxSteps < 1.
	ErrBadMaxSteps = errors.New("bench: max steps must be >= 1")
)

// Algorithm is a named engine factory. New receives the shared problem and a
// run-specific seed; it must build a fresh engine for every call.
type Algorithm struct {
	Name string
	New  func(p *tsp.Problem, seed int64) (opt.Engine, error)
}

// Case describes one generated problem instance.
type Case struct {
	Cities      int
	Width       int
	Height      int
	ProblemSeed int64
}

// Record is the outcome of a single run.
type Record struct {
	Algorithm string
	Run       int
	Best      float64
	Steps     int
	Elapsed   time.Duration
}

// Runner executes every algorithm Runs times over one problem. MaxSteps caps
// a single run so a misconfigured engine cannot hang the harness.
type Runner struct {
	Runs     int
	BaseSeed int64
	MaxSteps int
}

// RunCase generates the case's problem and races the algorithms over it.
// Run r of every algorithm uses the engine seed derived from BaseSeed and r,
// so two algorithms see the same seed sequence and the whole matrix is
// reproducible. Cancelling ctx stops between steps.
//
// Complexity: MaxSteps-bounded; one Record per (algorithm, run).
func (r Runner) RunCase(ctx context.Context, c Case, algos []Algorithm) ([]Record, error) {
	if len(algos) == 0 {
		return nil, ErrNoAlgorithms
	}
	if r.Runs < 1 {
		return nil, ErrBadRuns
	}
	if r.MaxSteps < 1 {
		return nil, ErrBadMaxSteps
	}

	prob, err := tsp.RandomProblem(c.Cities, c.Width, c.Height, tsp.NewRNG(c.ProblemSeed))
	if err != nil {
		return nil, fmt.Errorf("bench: generate problem: %w", err)
	}

	records := make([]Record, 0, len(algos)*r.Runs)
	for _, algo := range algos {
		var run int
		for run = 0; run < r.Runs; run++ {
			seed := tsp.DeriveRNG(tsp.NewRNG(r.BaseSeed), uint64(run)).Int63()

			rec, err := r.runOnce(ctx, algo, prob, run, seed)
			if err != nil {
				return records, err
			}
			records = append(records, rec)
		}
	}

	return records, nil
}

// runOnce steps one fresh engine to completion (or the step cap) and times it.
func (r Runner) runOnce(ctx context.Context, algo Algorithm, prob *tsp.Problem, run int, seed int64) (Record, error) {
	eng, err := algo.New(prob, seed)
	if err != nil {
		return Record{}, fmt.Errorf("bench: %s run %d: %w", algo.Name, run, err)
	}

	var (
		start = time.Now()
		steps int
	)
	for steps = 0; steps < r.MaxSteps && eng.Step(); steps++ {
		if err := ctx.Err(); err != nil {
			return Record{}, fmt.Errorf("bench: %s run %d: %w", algo.Name, run, err)
		}
	}
	if !eng.Finished() {
		steps = r.MaxSteps // hit the cap mid-run
	} else {
		steps++ // the terminating step did a full unit of work
	}

	return Record{
		Algorithm: algo.Name,
		Run:       run,
		Best:      eng.Best().Length,
		Steps:     steps,
		Elapsed:   time.Since(start),
	}, nil
}
