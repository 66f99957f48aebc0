// SPDX-License-Identifier: MIT

// Package seq - comparison masks.
//
// A mask is a slice of the same element type holding One where the predicate
// holds and Zero elsewhere, so it composes with Sum (count), Mul (filter) and
// Find (positions). Equality forms accept any Number; ordering forms need a
// real element type.

package seq

import "github.com/katalvlaran/lvnum/numeric"

// maskOf evaluates pred per element.
func maskOf[T numeric.Number](a []T, pred func(T) bool) []T {
	out := make([]T, len(a))
	one := numeric.One[T]()
	for i, v := range a {
		if pred(v) {
			out[i] = one
		}
	}

	return out
}

// maskOf2 evaluates pred pairwise; panics with ErrLengthMismatch.
func maskOf2[T numeric.Number](op string, a, b []T, pred func(x, y T) bool) []T {
	mustSameLen(op, len(a), len(b))
	out := make([]T, len(a))
	one := numeric.One[T]()
	for i, v := range a {
		if pred(v, b[i]) {
			out[i] = one
		}
	}

	return out
}

// Eq returns the mask a[i] == v.
func Eq[T numeric.Number](a []T, v T) []T { return maskOf(a, func(x T) bool { return x == v }) }

// Ne returns the mask a[i] != v.
func Ne[T numeric.Number](a []T, v T) []T { return maskOf(a, func(x T) bool { return x != v }) }

// Gt returns the mask a[i] > v.
func Gt[T numeric.Ordered](a []T, v T) []T { return maskOf(a, func(x T) bool { return x > v }) }

// Lt returns the mask a[i] < v.
func Lt[T numeric.Ordered](a []T, v T) []T { return maskOf(a, func(x T) bool { return x < v }) }

// Ge returns the mask a[i] >= v.
func Ge[T numeric.Ordered](a []T, v T) []T { return maskOf(a, func(x T) bool { return x >= v }) }

// Le returns the mask a[i] <= v.
func Le[T numeric.Ordered](a []T, v T) []T { return maskOf(a, func(x T) bool { return x <= v }) }

// Equal returns the pairwise mask a[i] == b[i].
func Equal[T numeric.Number](a, b []T) []T {
	return maskOf2("Equal", a, b, func(x, y T) bool { return x == y })
}

// NotEqual returns the pairwise mask a[i] != b[i].
func NotEqual[T numeric.Number](a, b []T) []T {
	return maskOf2("NotEqual", a, b, func(x, y T) bool { return x != y })
}

// LessThan returns the pairwise mask a[i] < b[i].
func LessThan[T numeric.Ordered](a, b []T) []T {
	return maskOf2("LessThan", a, b, func(x, y T) bool { return x < y })
}

// GreaterThan returns the pairwise mask a[i] > b[i].
func GreaterThan[T numeric.Ordered](a, b []T) []T {
	return maskOf2("GreaterThan", a, b, func(x, y T) bool { return x > y })
}

// And returns the logical and of two masks (non-zero is true).
func And[T numeric.Number](a, b []T) []T {
	return maskOf2("And", a, b, func(x, y T) bool { return !numeric.IsZero(x) && !numeric.IsZero(y) })
}

// Or returns the logical or of two masks.
func Or[T numeric.Number](a, b []T) []T {
	return maskOf2("Or", a, b, func(x, y T) bool { return !numeric.IsZero(x) || !numeric.IsZero(y) })
}

// Not returns the logical negation of a mask.
func Not[T numeric.Number](a []T) []T {
	return maskOf(a, numeric.IsZero[T])
}
