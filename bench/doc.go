// Package bench races the optimization engines against each other.
//
// What this package provides
//
//   - Runner: repeated, seeded, independently-randomized runs of any set of
//     engines over one generated problem, producing per-run Records.
//   - Summarize: per-engine aggregation of Records (min, mean, median,
//     percentile, standard deviation of the best lengths and step counts).
//   - CSV output: WriteRecords for finished runs and CSVSink for streaming
//     per-step progress out of a live engine.
//   - Plots: PNG convergence curves and a best-tour drawing.
//
// Design principles:
//
//   - Determinism end to end: the problem comes from a problem seed, each
//     run's engine RNG is derived from a base seed and the run index, so one
//     (Runner, Case) pair always reproduces the same numbers.
//   - Engines are constructed through a caller-supplied factory; the runner
//     only knows the opt.Engine contract and never imports ga or sa.
//   - Errors wrap with context at this boundary; the library packages below
//     stay sentinel-only.
package bench
