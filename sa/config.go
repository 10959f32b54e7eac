// Package sa - configuration surface and validation.
package sa

import "errors"

// Sentinel configuration errors raised by Config.Validate.
var (
	// ErrBadInitialTemp indicates InitialTemp <= 0 or not finite.
	ErrBadInitialTemp = errors.New("sa: initial temperature must be positive")

	// ErrBadFinalTemp indicates FinalTemp <= 0 or FinalTemp >= InitialTemp;
	// the floor must be strictly between zero and the starting temperature.
	ErrBadFinalTemp = errors.New("sa: final temperature must be in (0, initial)")

	// ErrBadAlpha indicates a negative cooling rate. Zero is legal and
	// freezes the temperature, leaving the stall limit as the only exit.
	ErrBadAlpha = errors.New("sa: alpha must be >= 0")

	// ErrBadNeighborsPerTemp indicates NeighborsPerTemp < 1.
	ErrBadNeighborsPerTemp = errors.New("sa: neighbors per temperature must be >= 1")

	// ErrBadStallLimit indicates a non-positive stall limit.
	ErrBadStallLimit = errors.New("sa: stall limit must be >= 1")

	// ErrNilProblem indicates a nil *tsp.Problem passed to New.
	ErrNilProblem = errors.New("sa: problem is nil")
)

// Config holds the recognized Simulated Annealing options.
//
//   - InitialTemp      — starting temperature (> 0).
//   - FinalTemp        — termination floor, in (0, InitialTemp).
//   - Alpha            — reciprocal cooling rate (>= 0); each epoch applies
//     T = T / (1 + Alpha*T). Zero freezes the schedule.
//   - NeighborsPerTemp — Metropolis proposals per epoch (>= 1).
//   - StallLimit       — consecutive improvement-free proposals before the
//     engine gives up (>= 1).
type Config struct {
	InitialTemp      float64
	FinalTemp        float64
	Alpha            float64
	NeighborsPerTemp int
	StallLimit       int
}

// DefaultConfig returns the reference schedule. Alpha is sized for problems
// of a few hundred cities; drivers commonly rescale it as 1/(0.2*N).
func DefaultConfig() Config {
	return Config{
		InitialTemp:      1000,
		FinalTemp:        1e-3,
		Alpha:            0.02,
		NeighborsPerTemp: 5,
		StallLimit:       50000,
	}
}

// Validate checks internal consistency. Called by New; exported so drivers
// can validate user input up front.
//
// Complexity: O(1).
func (c Config) Validate() error {
	if !(c.InitialTemp > 0) {
		return ErrBadInitialTemp
	}
	if !(c.FinalTemp > 0) || c.FinalTemp >= c.InitialTemp {
		return ErrBadFinalTemp
	}
	if !(c.Alpha >= 0) {
		return ErrBadAlpha
	}
	if c.NeighborsPerTemp < 1 {
		return ErrBadNeighborsPerTemp
	}
	if c.StallLimit < 1 {
		return ErrBadStallLimit
	}

	return nil
}
