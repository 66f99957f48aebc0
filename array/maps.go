// SPDX-License-Identifier: MIT

package array

import "github.com/katalvlaran/lvnum/numeric"

// Map returns f applied to every element.
func (a *Array[T]) Map(f func(T) T) *Array[T] {
	out := make([]T, len(a.data))
	for i, v := range a.data {
		out[i] = f(v)
	}

	return &Array[T]{data: out}
}

// Apply replaces every element with f(element) and returns the receiver.
func (a *Array[T]) Apply(f func(T) T) *Array[T] {
	for i, v := range a.data {
		a.data[i] = f(v)
	}

	return a
}

// Ln returns the natural logarithm of each element.
func (a *Array[T]) Ln() *Array[T] { return a.Map(numeric.Ln[T]) }

// Exp returns e**x per element.
func (a *Array[T]) Exp() *Array[T] { return a.Map(numeric.Exp[T]) }

// Abs returns |x| per element (|z|+0i for complex).
func (a *Array[T]) Abs() *Array[T] { return a.Map(numeric.Abs[T]) }

// Sqrt returns the square root of each element.
func (a *Array[T]) Sqrt() *Array[T] { return a.Map(numeric.Sqrt[T]) }

// Sin returns the sine of each element.
func (a *Array[T]) Sin() *Array[T] { return a.Map(numeric.Sin[T]) }

// Cos returns the cosine of each element.
func (a *Array[T]) Cos() *Array[T] { return a.Map(numeric.Cos[T]) }

// Asin returns the arcsine of each element.
func (a *Array[T]) Asin() *Array[T] { return a.Map(numeric.Asin[T]) }

// Acos returns the arccosine of each element.
func (a *Array[T]) Acos() *Array[T] { return a.Map(numeric.Acos[T]) }

// Round rounds each element half away from zero.
func (a *Array[T]) Round() *Array[T] { return a.Map(numeric.Round[T]) }

// RoundInPlace rounds every element in place and returns the receiver.
func (a *Array[T]) RoundInPlace() *Array[T] { return a.Apply(numeric.Round[T]) }

// RoundTo rounds each element to prec decimal places.
func (a *Array[T]) RoundTo(prec int) *Array[T] {
	return a.Map(func(v T) T { return numeric.RoundTo(v, prec) })
}

// Pow returns x**e per element.
func (a *Array[T]) Pow(e T) *Array[T] {
	return a.Map(func(v T) T { return numeric.Pow(v, e) })
}

// PowInt returns x**n per element by repeated squaring.
func (a *Array[T]) PowInt(n int) *Array[T] {
	return a.Map(func(v T) T { return numeric.PowInt(v, n) })
}

// Conj returns the complex conjugate per element (a copy for real arrays).
func (a *Array[T]) Conj() *Array[T] { return a.Map(numeric.Conj[T]) }
