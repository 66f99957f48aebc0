// SPDX-License-Identifier: MIT

// Package array - element-wise arithmetic.
//
// One named operation per operator and operand kind:
//
//	array ⊕ array   a.Add(b)              (equal length, else ErrLengthMismatch)
//	array ⊕ scalar  a.AddScalar(s)
//	scalar ⊕ array  ScalarAdd(s, a)
//	in place        a.AddInPlace(b), a.AddScalarInPlace(s)
//
// Non-destructive forms return a fresh array; in-place forms return the
// receiver for chaining. Division follows IEEE rules (x/0 = ±Inf or NaN).

package array

import "github.com/katalvlaran/lvnum/numeric"

// binary op kernels
func add[T numeric.Number](x, y T) T { return x + y }
func sub[T numeric.Number](x, y T) T { return x - y }
func mul[T numeric.Number](x, y T) T { return x * y }
func div[T numeric.Number](x, y T) T { return x / y }

// zip returns f(a[i], b[i]); panics with ErrLengthMismatch.
func zip[T numeric.Number](op string, a, b []T, f func(x, y T) T) []T {
	if len(a) != len(b) {
		panic(arrayErrorf(op, ErrLengthMismatch))
	}
	out := make([]T, len(a))
	for i, v := range a {
		out[i] = f(v, b[i])
	}

	return out
}

// zipInPlace writes f(a[i], b[i]) into a; panics with ErrLengthMismatch.
func zipInPlace[T numeric.Number](op string, a, b []T, f func(x, y T) T) {
	if len(a) != len(b) {
		panic(arrayErrorf(op, ErrLengthMismatch))
	}
	for i, v := range a {
		a[i] = f(v, b[i])
	}
}

// scalarRight returns f(a[i], s).
func scalarRight[T numeric.Number](a []T, s T, f func(x, y T) T) []T {
	out := make([]T, len(a))
	for i, v := range a {
		out[i] = f(v, s)
	}

	return out
}

// scalarLeft returns f(s, a[i]).
func scalarLeft[T numeric.Number](s T, a []T, f func(x, y T) T) []T {
	out := make([]T, len(a))
	for i, v := range a {
		out[i] = f(s, v)
	}

	return out
}

// ---------- array ⊕ array ----------

// Add returns a + b element-wise.
func (a *Array[T]) Add(b *Array[T]) *Array[T] {
	return &Array[T]{data: zip("Add", a.data, b.data, add[T])}
}

// Sub returns a - b element-wise.
func (a *Array[T]) Sub(b *Array[T]) *Array[T] {
	return &Array[T]{data: zip("Sub", a.data, b.data, sub[T])}
}

// Mul returns a * b element-wise.
func (a *Array[T]) Mul(b *Array[T]) *Array[T] {
	return &Array[T]{data: zip("Mul", a.data, b.data, mul[T])}
}

// Div returns a / b element-wise.
func (a *Array[T]) Div(b *Array[T]) *Array[T] {
	return &Array[T]{data: zip("Div", a.data, b.data, div[T])}
}

// ---------- array ⊕ scalar ----------

// AddScalar returns a[i] + s.
func (a *Array[T]) AddScalar(s T) *Array[T] { return &Array[T]{data: scalarRight(a.data, s, add[T])} }

// SubScalar returns a[i] - s.
func (a *Array[T]) SubScalar(s T) *Array[T] { return &Array[T]{data: scalarRight(a.data, s, sub[T])} }

// MulScalar returns a[i] * s.
func (a *Array[T]) MulScalar(s T) *Array[T] { return &Array[T]{data: scalarRight(a.data, s, mul[T])} }

// DivScalar returns a[i] / s.
func (a *Array[T]) DivScalar(s T) *Array[T] { return &Array[T]{data: scalarRight(a.data, s, div[T])} }

// ---------- scalar ⊕ array ----------

// ScalarAdd returns s + a[i].
func ScalarAdd[T numeric.Number](s T, a *Array[T]) *Array[T] {
	return &Array[T]{data: scalarLeft(s, a.data, add[T])}
}

// ScalarSub returns s - a[i].
func ScalarSub[T numeric.Number](s T, a *Array[T]) *Array[T] {
	return &Array[T]{data: scalarLeft(s, a.data, sub[T])}
}

// ScalarMul returns s * a[i].
func ScalarMul[T numeric.Number](s T, a *Array[T]) *Array[T] {
	return &Array[T]{data: scalarLeft(s, a.data, mul[T])}
}

// ScalarDiv returns s / a[i].
func ScalarDiv[T numeric.Number](s T, a *Array[T]) *Array[T] {
	return &Array[T]{data: scalarLeft(s, a.data, div[T])}
}

// ---------- in place ----------

// AddInPlace sets a[i] += b[i].
func (a *Array[T]) AddInPlace(b *Array[T]) *Array[T] {
	zipInPlace("AddInPlace", a.data, b.data, add[T])
	return a
}

// SubInPlace sets a[i] -= b[i].
func (a *Array[T]) SubInPlace(b *Array[T]) *Array[T] {
	zipInPlace("SubInPlace", a.data, b.data, sub[T])
	return a
}

// MulInPlace sets a[i] *= b[i].
func (a *Array[T]) MulInPlace(b *Array[T]) *Array[T] {
	zipInPlace("MulInPlace", a.data, b.data, mul[T])
	return a
}

// DivInPlace sets a[i] /= b[i].
func (a *Array[T]) DivInPlace(b *Array[T]) *Array[T] {
	zipInPlace("DivInPlace", a.data, b.data, div[T])
	return a
}

// AddScalarInPlace sets a[i] += s.
func (a *Array[T]) AddScalarInPlace(s T) *Array[T] {
	for i := range a.data {
		a.data[i] += s
	}

	return a
}

// SubScalarInPlace sets a[i] -= s.
func (a *Array[T]) SubScalarInPlace(s T) *Array[T] {
	for i := range a.data {
		a.data[i] -= s
	}

	return a
}

// MulScalarInPlace sets a[i] *= s.
func (a *Array[T]) MulScalarInPlace(s T) *Array[T] {
	for i := range a.data {
		a.data[i] *= s
	}

	return a
}

// DivScalarInPlace sets a[i] /= s.
func (a *Array[T]) DivScalarInPlace(s T) *Array[T] {
	for i := range a.data {
		a.data[i] /= s
	}

	return a
}

// Neg returns -a.
func (a *Array[T]) Neg() *Array[T] {
	out := make([]T, len(a.data))
	for i, v := range a.data {
		out[i] = -v
	}

	return &Array[T]{data: out}
}

// NegInPlace negates every element and returns the receiver.
func (a *Array[T]) NegInPlace() *Array[T] {
	for i, v := range a.data {
		a.data[i] = -v
	}

	return a
}
