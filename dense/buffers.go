// SPDX-License-Identifier: MIT

package dense

import "github.com/katalvlaran/lvnum/numeric"

// Zeros returns a zero-filled buffer of length n.
func Zeros[T numeric.Number](n int) []T {
	return make([]T, n)
}

// Ones returns a buffer of length n filled with One[T].
func Ones[T numeric.Number](n int) []T {
	return Full(n, numeric.One[T]())
}

// Full returns a buffer of length n filled with v.
func Full[T numeric.Number](n int, v T) []T {
	buf := make([]T, n)
	for i := range buf {
		buf[i] = v
	}

	return buf
}

// Identity returns an n×n identity buffer. The diagonal has the same offsets
// in both orders, so the result is valid for RowMajor and ColMajor alike.
// Panics with ErrBadShape for negative n.
func Identity[T numeric.Number](n int) []T {
	if n < 0 {
		panic(denseErrorf(opIdentity, ErrBadShape))
	}
	buf := make([]T, n*n)
	one := numeric.One[T]()
	for i := 0; i < n; i++ {
		buf[i*n+i] = one
	}

	return buf
}
