// Package tsp - deterministic RNG service shared by both engines.
//
// This file centralizes random generation policy for the whole module.
//
// Goals:
//   - Determinism: same seed ⇒ identical results across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//   - Independence: SplitMix64-style stream derivation so the GA and SA
//     engines never share or correlate their draws.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Each engine owns exactly one
//     generator and uses it only under its own step lock. Use DeriveRNG to
//     create independent streams for concurrently driven engines.
package tsp

import "math/rand"

// DefaultSeed is the fixed "zero" seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const DefaultSeed int64 = 1

// NewRNG returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ DefaultSeed; otherwise the provided seed verbatim.
//
// Complexity: O(1).
func NewRNG(seed int64) *rand.Rand {
	var s = seed
	if s == 0 {
		s = DefaultSeed
	}

	return rand.New(rand.NewSource(s))
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed using the canonical SplitMix64 finalizer. Small input changes produce
// large, well-distributed output changes, which keeps derived streams
// uncorrelated even for adjacent stream ids.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	var x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// DeriveRNG creates an independent deterministic stream from a base RNG and a
// stream identifier. If base==nil the default seed is used as the parent.
// Otherwise base.Int63() is consumed once so that reusing the same stream id
// by mistake still yields distinct children.
//
// Call during setup (engine construction), never in hot loops.
//
// Complexity: O(1).
func DeriveRNG(base *rand.Rand, stream uint64) *rand.Rand {
	var parent int64
	if base == nil {
		parent = DefaultSeed
	} else {
		parent = base.Int63()
	}

	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}

// ShuffleInPlace performs an in-place Fisher–Yates shuffle: iterate from the
// last index down to 1, swapping with a uniformly chosen earlier-or-equal
// index. A nil rng selects the default deterministic stream.
//
// Complexity: O(n) time, O(1) extra space.
func ShuffleInPlace(a []int, rng *rand.Rand) {
	var n = len(a)
	if n <= 1 {
		return
	}

	var r = rng
	if r == nil {
		r = NewRNG(0)
	}

	var (
		i int
		j int
	)
	for i = n - 1; i > 0; i-- {
		j = r.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// RandPermutation returns a uniformly random permutation of 0..n-1 generated
// deterministically from rng (nil ⇒ default stream). For n < 0 it returns
// ErrDimensionMismatch; the returned slice is the only allocation.
//
// Complexity: O(n) time, O(n) space.
func RandPermutation(n int, rng *rand.Rand) ([]int, error) {
	if n < 0 {
		return nil, ErrDimensionMismatch
	}
	p := make([]int, n)

	var i int
	for i = 0; i < n; i++ {
		p[i] = i
	}
	ShuffleInPlace(p, rng)

	return p, nil
}
