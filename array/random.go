// SPDX-License-Identifier: MIT

package array

import (
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/lvnum/numeric"
)

// maxRedraws caps the redraw loop in Rand for intervals narrower than the
// element type's resolution.
const maxRedraws = 64

// Rand returns n samples from the uniform distribution on [0, 1)
// (or the WithUniformBounds interval). Complex element types draw the real
// and imaginary parts independently.
func Rand[T numeric.Number](n int, opts ...Option) *Array[T] {
	mustCount(n)
	o := gatherOptions(opts...)
	u := distuv.Uniform{Min: o.min, Max: o.max, Src: o.src}
	draw := func() float64 {
		for try := 0; try < maxRedraws; try++ {
			v := u.Rand()
			// float32 rounding can land a sample on max; redraw.
			if real(numeric.ToComplex128(numeric.FromFloat64[T](v))) < o.max {
				return v
			}
		}

		return o.min
	}

	return &Array[T]{data: fill[T](n, draw)}
}

// RandN returns n samples from the standard normal distribution
// (or the WithNormalParams one). Complex element types draw both parts.
func RandN[T numeric.Number](n int, opts ...Option) *Array[T] {
	mustCount(n)
	o := gatherOptions(opts...)
	dist := distuv.Normal{Mu: o.mu, Sigma: o.sig, Src: o.src}

	return &Array[T]{data: fill[T](n, dist.Rand)}
}

// fill draws one sample per real element and two per complex element
// (real part first).
func fill[T numeric.Number](n int, draw func() float64) []T {
	out := make([]T, n)
	cplx := numeric.IsComplex[T]()
	for i := range out {
		re := draw()
		var im float64
		if cplx {
			im = draw()
		}
		out[i] = numeric.FromComplex128[T](complex(re, im))
	}

	return out
}
