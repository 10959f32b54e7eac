// Package tsplab is an in-memory laboratory for racing travelling-salesman
// metaheuristics: generate a random city field, then let a Genetic Algorithm
// and Simulated Annealing hunt the shortest closed tour step by step.
//
// What is tsplab?
//
//	A small, deterministic optimization library organized per concern:
//		• tsp/   — cities, problems (dense distance matrix), tours, RNG policy
//		• opt/   — the engine/driver contract: bounded Step(), progress sinks
//		• ga/    — Genetic Algorithm: tournament selection, order crossover,
//		           swap mutation, elitism
//		• sa/    — Simulated Annealing: 2-opt neighbors, Metropolis acceptance,
//		           reciprocal cooling
//		• bench/ — repeated-run harness, CSV output, convergence/tour plots
//
// Why step-driven engines?
//
//   - The caller owns the cadence: step from a render loop, a ticker, or a
//     tight goroutine; every Step is a bounded unit of work.
//   - Engines are snapshot-readable mid-run and safe to observe while a
//     step executes on another goroutine.
//   - Same seed, same result: all randomness flows through one seedable
//     policy, so every run reproduces exactly.
//
// Quick ASCII example:
//
//	    (0,10)───(10,10)
//	      │         │
//	    (0,0)────(10,0)
//
//	the optimal closed tour over the 10x10 square is its perimeter, 40.
//
// The cmd/tsplab binary races both engines over one problem and reports the
// winner; see its package documentation for the YAML configuration surface.
//
//	go get github.com/tsplab/tsplab
package tsplab
