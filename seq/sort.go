// SPDX-License-Identifier: MIT

// Package seq - ordering.
//
// Contract:
//   - ArgSort never mutates; Sort reorders in place. Both return the
//     permutation perm with sorted[i] == original[perm[i]].
//   - Ascending and stable (equal keys keep input order); reverse flips the
//     whole ascending permutation.
//   - Total order from cmp.Compare: NaN sorts before every other value.

package seq

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/lvnum/numeric"
)

// ArgSort returns the stable ascending permutation of a, reversed wholesale
// when reverse is true. a is not modified.
// Complexity: O(n log n).
func ArgSort[T numeric.Ordered](a []T, reverse bool) []int {
	perm := make([]int, len(a))
	for i := range perm {
		perm[i] = i
	}
	slices.SortStableFunc(perm, func(i, j int) int {
		return cmp.Compare(a[i], a[j])
	})
	if reverse {
		slices.Reverse(perm)
	}

	return perm
}

// Sort reorders a in place and returns the permutation that was applied.
func Sort[T numeric.Ordered](a []T, reverse bool) []int {
	perm := ArgSort(a, reverse)
	sorted := Select(a, perm)
	copy(a, sorted)

	return perm
}
