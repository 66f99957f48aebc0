// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/lvnum/numeric"

const opFromParts = "FromParts"

// Real returns the real parts of m, preserving shape and order.
//
//	re := matrix.Real[float64](m) // m is *Matrix[complex128]
func Real[F numeric.Real, C numeric.Complex](m *Matrix[C]) *Matrix[F] {
	return decompose(m, numeric.Re[F, C])
}

// Imag returns the imaginary parts of m, preserving shape and order.
func Imag[F numeric.Real, C numeric.Complex](m *Matrix[C]) *Matrix[F] {
	return decompose(m, numeric.Im[F, C])
}

// Conj returns the elementwise complex conjugate; real matrices are copied unchanged.
func (m *Matrix[T]) Conj() *Matrix[T] {
	out := like(m)
	for idx, v := range m.data {
		out.data[idx] = numeric.Conj(v)
	}

	return out
}

// FromParts builds a complex matrix from same-shaped real and imaginary parts.
// The result takes re's order; im is read through its own order.
// Panics with ErrDimensionMismatch when shapes differ.
func FromParts[C numeric.Complex, F numeric.Real](re, im *Matrix[F]) *Matrix[C] {
	if err := ValidateSameShape(re, im); err != nil {
		panic(matrixErrorf(opFromParts, err))
	}
	out := &Matrix[C]{rows: re.rows, cols: re.cols, data: make([]C, len(re.data)), order: re.order}
	for i := 0; i < re.rows; i++ {
		for j := 0; j < re.cols; j++ {
			k := re.index(i, j)
			out.data[k] = numeric.Cmplx[C](re.data[k], im.data[im.index(i, j)])
		}
	}

	return out
}

func decompose[F numeric.Real, C numeric.Complex](m *Matrix[C], f func(C) F) *Matrix[F] {
	out := &Matrix[F]{rows: m.rows, cols: m.cols, data: make([]F, len(m.data)), order: m.order}
	for idx, v := range m.data {
		out.data[idx] = f(v)
	}

	return out
}
