// SPDX-License-Identifier: MIT

// Package numeric: identity and conversion capability.
//
// Purpose:
//   - Provide additive/multiplicative identities for any Number.
//   - Convert loop counters and float64 constants into T without callers
//     having to know whether T is real or complex (Go forbids int→complex
//     conversions on non-constant values).
//   - Widen/narrow helpers (lift/lower) are the single dispatch point used by
//     every transcendental capability in funcs.go.
package numeric

import "math"

// Zero returns the additive identity of T.
// Complexity: O(1).
func Zero[T Number]() T {
	var z T
	return z
}

// One returns the multiplicative identity of T.
// Complexity: O(1).
func One[T Number]() T {
	return T(1)
}

// IsZero reports whether v equals the additive identity.
// Used by predicates (Any/All/NonZero) that treat zero as false.
func IsZero[T Number](v T) bool {
	return v == Zero[T]()
}

// IsComplex reports whether T belongs to the complex family.
func IsComplex[T Number]() bool {
	var z T
	switch any(z).(type) {
	case complex64, complex128:
		return true
	default:
		return false
	}
}

// FromInt converts i to T (imaginary part zero for complex T).
// Complexity: O(1).
func FromInt[T Number](i int) T {
	return lower[T](complex(float64(i), 0))
}

// FromFloat64 converts f to T (imaginary part zero for complex T).
// Complexity: O(1).
func FromFloat64[T Number](f float64) T {
	return lower[T](complex(f, 0))
}

// FromComplex128 converts z to T; real targets keep only real(z).
func FromComplex128[T Number](z complex128) T {
	return lower[T](z)
}

// ToComplex128 widens x to complex128 (imaginary part zero for real x).
func ToComplex128[T Number](x T) complex128 {
	z, _ := lift(x)

	return z
}

// MinValue returns the most negative finite value representable by T.
func MinValue[T Ordered]() T {
	return -MaxValue[T]()
}

// MaxValue returns the largest finite value representable by T.
func MaxValue[T Ordered]() T {
	var z T
	limit := math.MaxFloat64 // variable, not constant: float32 cannot represent it
	if _, ok := any(z).(float32); ok {
		limit = math.MaxFloat32
	}

	return T(limit)
}

// lift widens x into complex128 and reports whether x came from the complex
// family. Real values get a zero imaginary part.
func lift[T Number](x T) (complex128, bool) {
	switch v := any(x).(type) {
	case float64:
		return complex(v, 0), false
	case float32:
		return complex(float64(v), 0), false
	case complex128:
		return v, true
	case complex64:
		return complex128(v), true
	}
	// Unreachable: Number is an exact type set.
	panic("numeric: unsupported element type")
}

// lower narrows z into T. Real targets drop the imaginary part.
func lower[T Number](z complex128) T {
	var out T
	switch any(out).(type) {
	case float64:
		return any(real(z)).(T)
	case float32:
		return any(float32(real(z))).(T)
	case complex128:
		return any(z).(T)
	case complex64:
		return any(complex64(z)).(T)
	}
	panic("numeric: unsupported element type")
}
