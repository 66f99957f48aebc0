// SPDX-License-Identifier: MIT

// Package numeric: transcendental capability.
//
// Each function is its own capability: a real-only consumer never needs the
// complex branch and vice versa. Dispatch happens once per call through
// lift/lower; real inputs go to package math, complex inputs to math/cmplx.
//
// Numeric policy: NaN and ±Inf propagate exactly as math/cmplx define them.
// Nothing here checks or masks non-finite values.
package numeric

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/floats/scalar"
)

// unary applies fr to real x or fc to complex x and narrows back to T.
func unary[T Number](x T, fr func(float64) float64, fc func(complex128) complex128) T {
	z, isCmplx := lift(x)
	if isCmplx {
		return lower[T](fc(z))
	}

	return lower[T](complex(fr(real(z)), 0))
}

// Ln returns the natural logarithm of x.
func Ln[T Number](x T) T { return unary(x, math.Log, cmplx.Log) }

// Exp returns e**x.
func Exp[T Number](x T) T { return unary(x, math.Exp, cmplx.Exp) }

// Sin returns the sine of x.
func Sin[T Number](x T) T { return unary(x, math.Sin, cmplx.Sin) }

// Cos returns the cosine of x.
func Cos[T Number](x T) T { return unary(x, math.Cos, cmplx.Cos) }

// Asin returns the arcsine of x.
func Asin[T Number](x T) T { return unary(x, math.Asin, cmplx.Asin) }

// Acos returns the arccosine of x.
func Acos[T Number](x T) T { return unary(x, math.Acos, cmplx.Acos) }

// Sqrt returns the square root of x.
// Real negative inputs yield NaN (math.Sqrt); use a complex T for the principal root.
func Sqrt[T Number](x T) T { return unary(x, math.Sqrt, cmplx.Sqrt) }

// Abs returns |x|. For complex x the result is |x|+0i so the type is preserved.
func Abs[T Number](x T) T {
	return unary(x, math.Abs, func(z complex128) complex128 {
		return complex(cmplx.Abs(z), 0)
	})
}

// Round rounds half away from zero. Complex values round both parts.
func Round[T Number](x T) T {
	return unary(x, math.Round, func(z complex128) complex128 {
		return complex(math.Round(real(z)), math.Round(imag(z)))
	})
}

// RoundTo rounds x to prec decimal places (half away from zero) using
// gonum's scalar.Round. Complex values round both parts.
func RoundTo[T Number](x T, prec int) T {
	fr := func(f float64) float64 { return scalar.Round(f, prec) }

	return unary(x, fr, func(z complex128) complex128 {
		return complex(fr(real(z)), fr(imag(z)))
	})
}

// Pow returns x**e.
func Pow[T Number](x, e T) T {
	zx, isCmplx := lift(x)
	ze, _ := lift(e)
	if isCmplx {
		return lower[T](cmplx.Pow(zx, ze))
	}

	return lower[T](complex(math.Pow(real(zx), real(ze)), 0))
}

// PowInt returns x**n by repeated squaring (exact for small integer n).
// Negative n yields 1/(x**-n).
// Complexity: O(log |n|).
func PowInt[T Number](x T, n int) T {
	if n < 0 {
		// -(n+1) cannot overflow, math.MinInt included.
		return One[T]() / (x * PowInt(x, -(n + 1)))
	}
	acc := One[T]()
	base := x
	for n > 0 {
		if n&1 == 1 {
			acc *= base
		}
		base *= base
		n >>= 1
	}

	return acc
}

// IsNaN reports whether x is NaN (either part, for complex x).
func IsNaN[T Number](x T) bool {
	z, isCmplx := lift(x)
	if isCmplx {
		return cmplx.IsNaN(z)
	}

	return math.IsNaN(real(z))
}

// IsFinite reports whether x is neither NaN nor ±Inf (both parts, for complex x).
func IsFinite[T Number](x T) bool {
	z, _ := lift(x)

	return !cmplx.IsNaN(z) && !cmplx.IsInf(z)
}

// Norm returns the magnitude of x as float64: |x| for reals, the complex
// modulus otherwise. Used by norm reductions that must return a real value.
func Norm[T Number](x T) float64 {
	z, isCmplx := lift(x)
	if isCmplx {
		return cmplx.Abs(z)
	}

	return math.Abs(real(z))
}

// Conj returns the complex conjugate of x; real values are returned unchanged.
func Conj[T Number](x T) T {
	z, isCmplx := lift(x)
	if !isCmplx {
		return x
	}

	return lower[T](cmplx.Conj(z))
}
