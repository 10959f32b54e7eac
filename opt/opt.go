// Package opt - engine and progress-sink contracts.
package opt

import "github.com/tsplab/tsplab/tsp"

// Engine is a tour-search engine driven by an external scheduler.
//
// Contracts:
//   - Step performs one bounded unit of work (a GA generation, an SA
//     temperature epoch) and returns whether the engine is still running.
//     Once finished, further calls are no-ops returning false.
//   - Step is single-writer: it must not be invoked concurrently with itself
//     on the same instance. Accessors may be called concurrently with Step;
//     implementations guard state with a mutex and return snapshots.
type Engine interface {
	// Step advances the engine by one bounded unit of work.
	Step() bool

	// Finished reports whether the engine reached a terminal state.
	Finished() bool

	// Best returns a copy of the best-ever tour found so far.
	Best() tsp.Tour
}

// Sink receives (stepIndex, bestLength) progress records, one per completed
// step. Implementations own persistence (file, memory, network); engines only
// append. Append returning an error aborts the engine's Solve loop.
type Sink interface {
	Append(step int, best float64) error
}

// SinkFunc adapts a plain function to the Sink interface.
type SinkFunc func(step int, best float64) error

// Append implements Sink.
func (f SinkFunc) Append(step int, best float64) error { return f(step, best) }

// Discard is a Sink that drops every record; handy default for drivers that
// do not log progress.
var Discard Sink = SinkFunc(func(int, float64) error { return nil })
