// Package tsp - core value types and sentinel errors.
//
// This file declares the City and Tour value types shared by both engines
// and the strict sentinels every function in this package may return.
// Keep sentinels flat and comparable with errors.Is; no fmt.Errorf wrapping
// inside the library.
package tsp

import (
	"errors"
	"math"
)

// Sentinel errors returned by the problem core.
var (
	// ErrTooFewCities indicates a problem with fewer than MinCities cities;
	// a closed tour needs at least three distinct points to be meaningful.
	ErrTooFewCities = errors.New("tsp: need at least 3 cities")

	// ErrBadBounds indicates non-positive width/height passed to RandomProblem.
	ErrBadBounds = errors.New("tsp: bounds must be positive")

	// ErrDimensionMismatch indicates a slice whose length does not match the
	// problem size (wrong permutation length, negative n, and so on).
	ErrDimensionMismatch = errors.New("tsp: dimension mismatch")

	// ErrNotPermutation indicates an order slice with duplicate or
	// out-of-range city indices.
	ErrNotPermutation = errors.New("tsp: order is not a permutation")

	// ErrNilRNG indicates that a caller passed a nil *rand.Rand where the
	// contract requires an initialized generator (engine constructors).
	ErrNilRNG = errors.New("tsp: rng is nil")
)

// MinCities is the smallest problem size the optimization engines accept.
const MinCities = 3

// City is an immutable 2-D integer coordinate with a stable identifying tag
// assigned at creation (index in creation order). Never mutated after the
// problem is populated.
type City struct {
	X, Y int
	Tag  uint16
}

// Tour is an ordering of city indices plus a cached cycle length.
//
// Invariant: Order is a permutation of 0..N-1 (each index appears exactly
// once). Length is the sum of consecutive-edge distances plus the closing
// edge from the last city back to the first; +Inf means "not yet scored".
type Tour struct {
	Order  []int
	Length float64
}

// NewTour wraps order into an unscored Tour. The slice is taken by reference;
// callers that need isolation should pass a fresh slice.
func NewTour(order []int) Tour {
	return Tour{Order: order, Length: math.Inf(1)}
}

// Clone returns a deep copy of the tour (independent Order backing array).
//
// Complexity: O(n).
func (t Tour) Clone() Tour {
	if t.Order == nil {
		return Tour{Length: t.Length}
	}
	out := make([]int, len(t.Order))
	copy(out, t.Order)

	return Tour{Order: out, Length: t.Length}
}

// Scored reports whether the tour has been evaluated (Length < +Inf).
func (t Tour) Scored() bool {
	return !math.IsInf(t.Length, 1)
}

// Less orders tours ascending by cached length. Unscored tours (+Inf) sort
// after every scored one.
func (t Tour) Less(u Tour) bool {
	return t.Length < u.Length
}

// ValidatePermutation checks that order is a permutation of {0..n-1} of
// length n. It allocates a single O(n) marker slice.
//
// Errors:
//   - ErrDimensionMismatch when n <= 0 or len(order) != n,
//   - ErrNotPermutation on duplicate or out-of-range entries.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(order []int, n int) error {
	if n <= 0 || len(order) != n {
		return ErrDimensionMismatch
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = order[i]
		if v < 0 || v >= n {
			return ErrNotPermutation
		}
		if seen[v] {
			return ErrNotPermutation
		}
		seen[v] = true
	}

	return nil
}
