// Package sa implements Simulated Annealing over closed tours.
//
// What this package provides
//
//   - Engine: a single-trajectory annealer driven by external Step calls.
//     Each step is one temperature epoch: a fixed number of 2-opt neighbor
//     proposals judged by the Metropolis criterion, followed by one cooling
//     update T = T / (1 + alpha*T).
//   - Config: explicit, validated knobs (initial and final temperature,
//     cooling rate, neighbors per epoch, stall limit).
//
// Responsibilities:
//
//   - Keep the current tour, the best-ever tour, and the temperature as the
//     only mutable state, guarded by one mutex so readers can snapshot
//     mid-run.
//   - Terminate when the temperature falls below the floor or the best tour
//     has not improved for StallLimit consecutive proposals. The work of the
//     terminating epoch still counts: its accepted moves and best updates
//     are kept before the terminal check.
//
// Design principles:
//
//   - Sentinel errors only; no logging, no panics on user input.
//   - Deterministic given (problem, Config, RNG seed); the engine never
//     touches a global or time-based randomness source.
//   - Step allocates nothing; the candidate tour is preallocated scratch.
//
// See the tsp package for the shared problem representation and the opt
// package for the driver-facing Engine contract.
package sa
