// SPDX-License-Identifier: MIT

package seq

import "github.com/katalvlaran/lvnum/numeric"

// checkIndices panics with ErrOutOfRange if any ix[k] is outside [0, n).
func checkIndices(op string, n int, ix []int) {
	for _, i := range ix {
		if i < 0 || i >= n {
			panic(seqErrorf(op, ErrOutOfRange))
		}
	}
}

// Select gathers out[k] = a[ix[k]].
// Panics with ErrOutOfRange on an invalid index.
func Select[T numeric.Number](a []T, ix []int) []T {
	checkIndices("Select", len(a), ix)
	out := make([]T, len(ix))
	for k, i := range ix {
		out[k] = a[i]
	}

	return out
}

// SetSlice scatters a[ix[k]] = v[k] in place.
// Panics with ErrLengthMismatch when len(ix) != len(v) and ErrOutOfRange on
// an invalid index. Nothing is written when a check fails.
func SetSlice[T numeric.Number](a []T, ix []int, v []T) {
	mustSameLen("SetSlice", len(ix), len(v))
	checkIndices("SetSlice", len(a), ix)
	for k, i := range ix {
		a[i] = v[k]
	}
}

// SetAll writes v at every position listed in ix.
// Panics with ErrOutOfRange on an invalid index.
func SetAll[T numeric.Number](a []T, ix []int, v T) {
	checkIndices("SetAll", len(a), ix)
	for _, i := range ix {
		a[i] = v
	}
}

// Concat joins the inputs into one fresh slice.
func Concat[T numeric.Number](parts ...[]T) []T {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	out := make([]T, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}

	return out
}
