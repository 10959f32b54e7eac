package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tsplab/tsplab/tsp"
)

func TestValidatePermutation(t *testing.T) {
	tests := []struct {
		name  string
		order []int
		n     int
		want  error
	}{
		{name: "valid identity", order: []int{0, 1, 2, 3}, n: 4, want: nil},
		{name: "valid shuffled", order: []int{2, 0, 3, 1}, n: 4, want: nil},
		{name: "wrong length", order: []int{0, 1, 2}, n: 4, want: tsp.ErrDimensionMismatch},
		{name: "zero n", order: nil, n: 0, want: tsp.ErrDimensionMismatch},
		{name: "duplicate", order: []int{0, 1, 1, 3}, n: 4, want: tsp.ErrNotPermutation},
		{name: "out of range", order: []int{0, 1, 2, 4}, n: 4, want: tsp.ErrNotPermutation},
		{name: "negative entry", order: []int{0, -1, 2, 3}, n: 4, want: tsp.ErrNotPermutation},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tsp.ValidatePermutation(tc.order, tc.n)
			if tc.want == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tc.want)
			}
		})
	}
}

func TestTour_Clone_Independent(t *testing.T) {
	orig := tsp.Tour{Order: []int{3, 1, 0, 2}, Length: 12.5}
	cp := orig.Clone()

	require.Equal(t, orig.Order, cp.Order)
	require.Equal(t, orig.Length, cp.Length)

	cp.Order[0] = 99
	require.Equal(t, 3, orig.Order[0], "clone must not alias the original order")
}

func TestTour_Less_UnscoredSortsLast(t *testing.T) {
	scored := tsp.Tour{Order: []int{0, 1, 2}, Length: 10}
	fresh := tsp.NewTour([]int{2, 1, 0})

	require.True(t, scored.Less(fresh))
	require.False(t, fresh.Less(scored))
	require.False(t, fresh.Less(fresh), "+Inf is not less than +Inf")
}
