// Package tsp defines the shared problem core consumed by the tour-search
// engines in ga/ and sa/: city coordinates, the symmetric Euclidean distance
// matrix, the Tour representation, and the deterministic RNG service.
//
// Responsibilities:
//   - Problem: an ordered set of Cities plus an N×N distance matrix, built
//     once from coordinates and treated as read-only afterwards. Both engines
//     hold a reference to the same Problem and never mutate it.
//   - Tour: a permutation of the city indices 0..N-1 with a cached cycle
//     length. A freshly built Tour has Length == +Inf ("not yet scored").
//   - RNG: a single seedable factory (seed==0 ⇒ fixed default seed) plus
//     SplitMix64-style stream derivation and Fisher–Yates shuffling, so both
//     engines draw from reproducible, decorrelated streams.
//
// Design principles:
//   - Deterministic: no time-based randomness anywhere; same seed ⇒ same run.
//   - Strict sentinels: only errors declared in types.go; no logging, no
//     panics on user input.
//   - Hot-path discipline: TourLength is O(N) with no allocations; validation
//     happens once at the boundary, never per candidate evaluation.
//
// Use this package when you need the problem data; use ga/ or sa/ to search.
package tsp
