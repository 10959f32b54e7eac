// Package sa - the 2-opt neighborhood move.
package sa

import "math/rand"

// twoOptNeighbor writes a 2-opt neighbor of src into dst: src with one
// inclusive segment [i..j] reversed, i and j drawn uniformly (descending
// draws are swapped). i == j yields dst == src, a legal self-neighbor.
//
// Reversing a segment of a closed tour replaces exactly the two edges that
// bracket it, which is the classic 2-opt move.
//
// Contract: len(dst) == len(src); src is a permutation, so dst is too.
//
// Complexity: O(n), no allocations.
func twoOptNeighbor(src, dst []int, rng *rand.Rand) {
	var n = len(src)
	copy(dst, src)

	var (
		i = rng.Intn(n)
		j = rng.Intn(n)
	)
	if i > j {
		i, j = j, i
	}

	for i < j {
		dst[i], dst[j] = dst[j], dst[i]
		i++
		j--
	}
}
