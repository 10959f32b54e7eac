// Package opt declares the contract between the search engines (ga/, sa/) and
// whatever drives them: a bounded-work Step interface and a progress sink.
//
// The engines never know who is pacing them. A driver — an animation loop, a
// benchmark harness, a test — calls Step once per scheduling tick and reads
// snapshots under the engine's own lock. The progress sink is consumed by the
// engines' Solve loops and implemented outside the core (e.g. the CSV sink in
// bench/), which keeps persistence concerns out of the algorithms.
package opt
