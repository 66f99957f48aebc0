// SPDX-License-Identifier: MIT

// Package seq - generators.
//
// Behavior highlights:
//   - Arange is half-open and computes each value as start+i*step, so there
//     is no accumulated drift; its length is ceil((stop-start)/step).
//   - Linspace(inclusive=true) pins the last value to stop exactly.
//   - Linspace with num == 1 yields [start]; num == 0 yields an empty slice.

package seq

import (
	"math"

	"github.com/katalvlaran/lvnum/numeric"
)

// Range returns 0, 1, ..., n-1. Panics with ErrNegativeCount for n < 0.
func Range[T numeric.Number](n int) []T {
	if n < 0 {
		panic(seqErrorf("Range", ErrNegativeCount))
	}
	out := make([]T, n)
	for i := range out {
		out[i] = numeric.FromInt[T](i)
	}

	return out
}

// Full returns a slice of length n filled with v.
// Panics with ErrNegativeCount for n < 0.
func Full[T numeric.Number](n int, v T) []T {
	if n < 0 {
		panic(seqErrorf("Full", ErrNegativeCount))
	}
	out := make([]T, n)
	for i := range out {
		out[i] = v
	}

	return out
}

// Arange returns start, start+step, ... stopping before stop.
// A step whose sign disagrees with stop-start yields an empty slice.
// Panics with ErrZeroStep when step == 0 and with ErrTooLong when the
// count is infinite or exceeds math.MaxInt.
// Complexity: O(n).
func Arange[T numeric.Ordered](start, stop, step T) []T {
	if step == 0 {
		panic(seqErrorf("Arange", ErrZeroStep))
	}
	span := math.Ceil(float64(stop-start) / float64(step))
	if !(span > 0) { // also rejects NaN
		return []T{}
	}
	if span >= math.MaxInt {
		panic(seqErrorf("Arange", ErrTooLong))
	}
	n := int(span)
	out := make([]T, n)
	for i := range out {
		out[i] = start + T(i)*step
	}

	return out
}

// Linspace returns num evenly spaced values from start.
// inclusive=true spaces them over [start, stop] with out[num-1] == stop;
// inclusive=false spaces them over [start, stop).
// Panics with ErrNegativeCount for num < 0.
// Complexity: O(num).
func Linspace[T numeric.Number](start, stop T, num int, inclusive bool) []T {
	if num < 0 {
		panic(seqErrorf("Linspace", ErrNegativeCount))
	}
	out := make([]T, num)
	if num == 0 {
		return out
	}
	out[0] = start
	if num == 1 {
		return out
	}

	div := num
	if inclusive {
		div = num - 1
	}
	step := (stop - start) / numeric.FromInt[T](div)
	for i := 1; i < num; i++ {
		out[i] = start + numeric.FromInt[T](i)*step
	}
	if inclusive {
		out[num-1] = stop
	}

	return out
}
