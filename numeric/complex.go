// SPDX-License-Identifier: MIT

// Package numeric: complex-only capability.
//
// Go cannot tie complex64 to float32 inside a constraint, so the real
// component type F is an explicit type parameter. Put the parameter you want
// to name first; the other one is inferred from the argument:
//
//	re := numeric.Re[float64](z)            // C inferred from z
//	z2 := numeric.Cmplx[complex64](re, im)  // F inferred from re, im
//
// All computations go through complex128 and are narrowed at the end.
package numeric

import "math/cmplx"

// Cmplx builds a complex value from its real and imaginary parts.
func Cmplx[C Complex, F Real](re, im F) C {
	return C(complex(float64(re), float64(im)))
}

// FromPolar builds a complex value from magnitude r and angle theta (radians).
func FromPolar[C Complex, F Real](r, theta F) C {
	return C(cmplx.Rect(float64(r), float64(theta)))
}

// Re returns the real part of c.
func Re[F Real, C Complex](c C) F {
	return F(real(complex128(c)))
}

// Im returns the imaginary part of c.
func Im[F Real, C Complex](c C) F {
	return F(imag(complex128(c)))
}

// Magnitude returns |c| (the complex norm).
func Magnitude[F Real, C Complex](c C) F {
	return F(cmplx.Abs(complex128(c)))
}

// Arg returns the phase angle of c in (-π, π].
func Arg[F Real, C Complex](c C) F {
	return F(cmplx.Phase(complex128(c)))
}
