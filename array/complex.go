// SPDX-License-Identifier: MIT

// Package array - complex construction & decomposition.
//
// Type parameters: C is the complex element type, F the real component type.
// Name the one that is not inferable from the arguments:
//
//	z := array.FromParts[complex128](re, im) // F from re, im
//	r := array.Real[float64](z)              // C from z
//
// Every result is a fresh allocation; no function here returns a view.

package array

import (
	"math/cmplx"

	"github.com/katalvlaran/lvnum/numeric"
)

// FromParts builds re[i] + im[i]·i. Panics with ErrLengthMismatch.
func FromParts[C numeric.Complex, F numeric.Real](re, im *Array[F]) *Array[C] {
	if re.Len() != im.Len() {
		panic(arrayErrorf(opFromParts, ErrLengthMismatch))
	}
	out := make([]C, re.Len())
	for i, r := range re.data {
		out[i] = numeric.Cmplx[C](r, im.data[i])
	}

	return &Array[C]{data: out}
}

// FromReal builds re[i] + 0i.
func FromReal[C numeric.Complex, F numeric.Real](re *Array[F]) *Array[C] {
	out := make([]C, re.Len())
	for i, r := range re.data {
		out[i] = numeric.Cmplx[C](r, 0)
	}

	return &Array[C]{data: out}
}

// FromImag builds 0 + im[i]·i.
func FromImag[C numeric.Complex, F numeric.Real](im *Array[F]) *Array[C] {
	out := make([]C, im.Len())
	for i, v := range im.data {
		out[i] = numeric.Cmplx[C](0, v)
	}

	return &Array[C]{data: out}
}

// FromPolar builds r[i]·e^(i·theta[i]). Panics with ErrLengthMismatch.
func FromPolar[C numeric.Complex, F numeric.Real](r, theta *Array[F]) *Array[C] {
	if r.Len() != theta.Len() {
		panic(arrayErrorf(opFromPolar, ErrLengthMismatch))
	}
	out := make([]C, r.Len())
	for i, m := range r.data {
		out[i] = numeric.FromPolar[C](m, theta.data[i])
	}

	return &Array[C]{data: out}
}

// FromInterleaved builds complex values from [re0, im0, re1, im1, ...].
// Panics with ErrOddLength when the length is odd.
func FromInterleaved[C numeric.Complex, F numeric.Real](a *Array[F]) *Array[C] {
	if a.Len()%2 != 0 {
		panic(arrayErrorf(opFromInterleaved, ErrOddLength))
	}
	out := make([]C, a.Len()/2)
	for i := range out {
		out[i] = numeric.Cmplx[C](a.data[2*i], a.data[2*i+1])
	}

	return &Array[C]{data: out}
}

// Real returns the real parts.
func Real[F numeric.Real, C numeric.Complex](a *Array[C]) *Array[F] {
	return decompose(a, numeric.Re[F, C])
}

// Imag returns the imaginary parts.
func Imag[F numeric.Real, C numeric.Complex](a *Array[C]) *Array[F] {
	return decompose(a, numeric.Im[F, C])
}

// Norm returns the moduli |z|.
func Norm[F numeric.Real, C numeric.Complex](a *Array[C]) *Array[F] {
	return decompose(a, numeric.Magnitude[F, C])
}

// Arg returns the phase angles in (-π, π].
func Arg[F numeric.Real, C numeric.Complex](a *Array[C]) *Array[F] {
	return decompose(a, numeric.Arg[F, C])
}

// ToPolar returns the modulus and phase arrays.
func ToPolar[F numeric.Real, C numeric.Complex](a *Array[C]) (r, theta *Array[F]) {
	rs := make([]F, a.Len())
	ts := make([]F, a.Len())
	for i, z := range a.data {
		m, p := cmplx.Polar(complex128(z))
		rs[i], ts[i] = F(m), F(p)
	}

	return &Array[F]{data: rs}, &Array[F]{data: ts}
}

// Interleave returns [re0, im0, re1, im1, ...], twice the length of a.
func Interleave[F numeric.Real, C numeric.Complex](a *Array[C]) *Array[F] {
	out := make([]F, 2*a.Len())
	for i, z := range a.data {
		out[2*i] = numeric.Re[F](z)
		out[2*i+1] = numeric.Im[F](z)
	}

	return &Array[F]{data: out}
}

func decompose[F numeric.Real, C numeric.Complex](a *Array[C], f func(C) F) *Array[F] {
	out := make([]F, a.Len())
	for i, z := range a.data {
		out[i] = f(z)
	}

	return &Array[F]{data: out}
}
