// SPDX-License-Identifier: MIT

package seq

import (
	"math"

	"github.com/katalvlaran/lvnum/numeric"
)

// Any reports whether some element is non-zero.
func Any[T numeric.Number](a []T) bool {
	for _, v := range a {
		if !numeric.IsZero(v) {
			return true
		}
	}

	return false
}

// All reports whether every element is non-zero (true for empty input).
func All[T numeric.Number](a []T) bool {
	for _, v := range a {
		if numeric.IsZero(v) {
			return false
		}
	}

	return true
}

// Find returns the indices of the non-zero elements, ascending.
func Find[T numeric.Number](a []T) []int {
	ix := make([]int, 0)
	for i, v := range a {
		if !numeric.IsZero(v) {
			ix = append(ix, i)
		}
	}

	return ix
}

// NonZero is Find under its array-library name.
func NonZero[T numeric.Number](a []T) []int {
	return Find(a)
}

// ArgMax returns the index of the largest element, first index on ties.
// NaN entries never win unless every entry is NaN (then 0 is returned).
// Panics with ErrEmpty on empty input.
// Complexity: O(n), single pass.
func ArgMax[T numeric.Ordered](a []T) int {
	mustNonEmpty("ArgMax", len(a))

	return argBest(a, func(v, best T) bool { return v > best })
}

// ArgMin returns the index of the smallest element, first index on ties.
// NaN handling matches ArgMax. Panics with ErrEmpty on empty input.
func ArgMin[T numeric.Ordered](a []T) int {
	mustNonEmpty("ArgMin", len(a))

	return argBest(a, func(v, best T) bool { return v < best })
}

// argBest scans once, keeping the first index for which better never fires
// against a later element. NaN is skipped.
func argBest[T numeric.Ordered](a []T, better func(v, best T) bool) int {
	ix := -1
	for i, v := range a {
		if math.IsNaN(float64(v)) {
			continue
		}
		if ix < 0 || better(v, a[ix]) {
			ix = i
		}
	}
	if ix < 0 {
		return 0
	}

	return ix
}

// IsNaN returns a mask with 1 where a[i] is NaN (either part, for complex).
func IsNaN[T numeric.Number](a []T) []T {
	return maskOf(a, numeric.IsNaN[T])
}
