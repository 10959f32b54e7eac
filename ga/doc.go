// Package ga implements the Genetic Algorithm engine for closed-tour search.
//
// The engine evolves a fixed-size population of candidate tours over the
// shared read-only tsp.Problem:
//
//   - Initialization: uniformly random permutations (Fisher–Yates), evaluated
//     and sorted ascending by length so index 0 is always the current best.
//   - Selection: tournament of K uniform draws with replacement; K==1
//     degenerates to pure random selection, which is legal.
//   - Crossover: Order Crossover (OX) — copy a random slice of parent A
//     verbatim, fill the rest in parent B's relative order.
//   - Mutation: per-position swap with probability MutationRate.
//   - Elitism: the top Elitism tours survive each generation unchanged.
//
// State machine:
//
//	Running → Converged (stall limit)  |  Exhausted (generation budget)
//
// Both terminal phases are "finished"; once finished, Step is a no-op.
//
// Driving and concurrency:
//   - Step performs exactly one generation and returns; pacing belongs to the
//     caller (ticker, event loop, test driver).
//   - All mutable run state sits behind one mutex; accessors return copies,
//     so a concurrent reader never observes a tour mid-mutation.
//
// Configuration is validated once in New; per-step arithmetic only ever sees
// validated, finite inputs.
package ga
