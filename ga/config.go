// Package ga - configuration surface and validation.
//
// Explicit, validated configuration passed once at construction; the engine
// never mutates it afterwards. Only sentinel errors; callers branch with
// errors.Is and may retry New with a corrected Config.
package ga

import "errors"

// Sentinel configuration errors raised by Config.Validate.
var (
	// ErrBadPopulationSize indicates PopulationSize < 2; crossover needs two
	// parent slots even though the tournament may pick the same index twice.
	ErrBadPopulationSize = errors.New("ga: population size must be >= 2")

	// ErrBadGenerations indicates a non-positive generation budget.
	ErrBadGenerations = errors.New("ga: generations must be >= 1")

	// ErrBadMutationRate indicates MutationRate outside [0,1].
	ErrBadMutationRate = errors.New("ga: mutation rate must be in [0,1]")

	// ErrBadTournamentK indicates TournamentK < 1.
	ErrBadTournamentK = errors.New("ga: tournament size must be >= 1")

	// ErrBadElitism indicates Elitism < 0 or Elitism >= PopulationSize.
	ErrBadElitism = errors.New("ga: elitism must be in [0, population size)")

	// ErrBadStallLimit indicates a non-positive stall limit.
	ErrBadStallLimit = errors.New("ga: stall limit must be >= 1")

	// ErrNilProblem indicates a nil *tsp.Problem passed to New.
	ErrNilProblem = errors.New("ga: problem is nil")
)

// Config holds the recognized Genetic Algorithm options.
//
//   - PopulationSize — fixed number of tours for the engine's lifetime (>= 2).
//   - Generations    — hard budget; reaching it transitions to Exhausted.
//   - MutationRate   — per-position swap probability in [0,1].
//   - TournamentK    — draws per tournament, with replacement (>= 1).
//   - Elitism        — tours copied unchanged each generation, in [0, PopulationSize).
//   - StallLimit     — consecutive improvement-free generations before Converged (>= 1).
type Config struct {
	PopulationSize int
	Generations    int
	MutationRate   float64
	TournamentK    int
	Elitism        int
	StallLimit     int
}

// DefaultConfig returns the reference parameter set; tuned for a few hundred
// cities, small enough to converge in interactive runs.
func DefaultConfig() Config {
	return Config{
		PopulationSize: 1000,
		Generations:    5000,
		MutationRate:   0.02,
		TournamentK:    5,
		Elitism:        5,
		StallLimit:     500,
	}
}

// Validate checks internal consistency. It is called by New; exported so
// drivers can validate user input before constructing anything.
//
// Complexity: O(1).
func (c Config) Validate() error {
	if c.PopulationSize < 2 {
		return ErrBadPopulationSize
	}
	if c.Generations < 1 {
		return ErrBadGenerations
	}
	if c.MutationRate < 0 || c.MutationRate > 1 {
		return ErrBadMutationRate
	}
	if c.TournamentK < 1 {
		return ErrBadTournamentK
	}
	if c.Elitism < 0 || c.Elitism >= c.PopulationSize {
		return ErrBadElitism
	}
	if c.StallLimit < 1 {
		return ErrBadStallLimit
	}

	return nil
}
