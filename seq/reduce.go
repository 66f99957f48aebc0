// SPDX-License-Identifier: MIT

// Package seq - reductions.
//
// Determinism:
//   - Accumulation is a single left-to-right pass; no pairwise or Kahan
//     summation, so results match a plain fold exactly.
//
// Complexity quicksheet:
//   - Every reduction is O(n) time; CumSum/Diff allocate O(n).

package seq

import (
	"math"

	"github.com/katalvlaran/lvnum/numeric"
)

// Sum returns the sum of a; the empty sum is zero.
func Sum[T numeric.Number](a []T) T {
	var s T
	for _, v := range a {
		s += v
	}

	return s
}

// Prod returns the product of a; the empty product is one.
func Prod[T numeric.Number](a []T) T {
	p := numeric.One[T]()
	for _, v := range a {
		p *= v
	}

	return p
}

// CumSum returns the running sums: out[i] == Sum(a[:i+1]).
func CumSum[T numeric.Number](a []T) []T {
	out := make([]T, len(a))
	var s T
	for i, v := range a {
		s += v
		out[i] = s
	}

	return out
}

// Mean returns the arithmetic mean. Panics with ErrEmpty on empty input.
func Mean[T numeric.Number](a []T) T {
	mustNonEmpty("Mean", len(a))

	return Sum(a) / numeric.FromInt[T](len(a))
}

// Var returns the population variance Σ|x-μ|²/n.
// For complex input the squared modulus is used, so the result is real
// (imaginary part zero). Panics with ErrEmpty on empty input.
func Var[T numeric.Number](a []T) T {
	mustNonEmpty("Var", len(a))
	mu := Mean(a)
	var acc float64
	for _, v := range a {
		d := numeric.Norm(v - mu)
		acc += d * d
	}

	return numeric.FromFloat64[T](acc / float64(len(a)))
}

// Std returns the population standard deviation sqrt(Var(a)).
// Panics with ErrEmpty on empty input.
func Std[T numeric.Number](a []T) T {
	return numeric.Sqrt(Var(a))
}

// Norm2 returns the Euclidean norm sqrt(Σ|x|²) as float64.
func Norm2[T numeric.Number](a []T) float64 {
	var acc float64
	for _, v := range a {
		n := numeric.Norm(v)
		acc += n * n
	}

	return math.Sqrt(acc)
}

// NormInf returns max|x| as float64; the empty norm is zero.
func NormInf[T numeric.Number](a []T) float64 {
	var m float64
	for _, v := range a {
		if n := numeric.Norm(v); n > m {
			m = n
		}
	}

	return m
}

// Dot returns Σ a[i]*b[i] (no conjugation).
// Panics with ErrLengthMismatch when the lengths differ.
func Dot[T numeric.Number](a, b []T) T {
	mustSameLen("Dot", len(a), len(b))
	var s T
	for i, v := range a {
		s += v * b[i]
	}

	return s
}

// Diff returns the discrete difference out[i] = a[i+1]-a[i], of length n-1.
// Panics with ErrEmpty on empty input.
func Diff[T numeric.Number](a []T) []T {
	mustNonEmpty("Diff", len(a))
	out := make([]T, len(a)-1)
	for i := range out {
		out[i] = a[i+1] - a[i]
	}

	return out
}

// Max returns the largest element; NaN entries are skipped unless every
// entry is NaN. Panics with ErrEmpty on empty input.
func Max[T numeric.Ordered](a []T) T {
	mustNonEmpty("Max", len(a))

	return a[ArgMax(a)]
}

// Min returns the smallest element, with the same NaN rule as Max.
// Panics with ErrEmpty on empty input.
func Min[T numeric.Ordered](a []T) T {
	mustNonEmpty("Min", len(a))

	return a[ArgMin(a)]
}
