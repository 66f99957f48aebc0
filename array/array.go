// SPDX-License-Identifier: MIT

// Package array - container, constructors & accessors.
//
// Purpose:
//   - Own exactly one []T; its length is the only shape information.
//   - Give explicit borrowed views (Data, MutData) instead of implicit
//     delegation, so every length-changing path goes through the container.
//
// Complexity quicksheet:
//   - At/Set/Len: O(1); constructors and Clone: O(n).

package array

import (
	"github.com/katalvlaran/lvnum/dense"
	"github.com/katalvlaran/lvnum/numeric"
	"github.com/katalvlaran/lvnum/seq"
)

// Array is an owned, contiguous sequence of T.
// The zero value is an empty, ready-to-use array.
type Array[T numeric.Number] struct {
	data []T
}

// New returns an empty array.
func New[T numeric.Number]() *Array[T] {
	return &Array[T]{data: []T{}}
}

// WithCapacity returns an empty array whose buffer can grow to n without
// reallocating. Panics with ErrNegativeCount for n < 0.
func WithCapacity[T numeric.Number](n int) *Array[T] {
	mustCount(n)

	return &Array[T]{data: make([]T, 0, n)}
}

// Full returns an array of length n filled with v.
func Full[T numeric.Number](n int, v T) *Array[T] {
	return &Array[T]{data: seq.Full(n, v)}
}

// Zeros returns an array of n zeros.
func Zeros[T numeric.Number](n int) *Array[T] {
	mustCount(n)

	return &Array[T]{data: dense.Zeros[T](n)}
}

// Ones returns an array of n ones.
func Ones[T numeric.Number](n int) *Array[T] {
	mustCount(n)

	return &Array[T]{data: dense.Ones[T](n)}
}

// FromSlice takes ownership of data; the caller must not use it afterwards.
// A nil slice yields an empty array.
func FromSlice[T numeric.Number](data []T) *Array[T] {
	if data == nil {
		data = []T{}
	}

	return &Array[T]{data: data}
}

// Range returns 0, 1, ..., n-1.
func Range[T numeric.Number](n int) *Array[T] {
	return &Array[T]{data: seq.Range[T](n)}
}

// Arange returns the half-open stepped range [start, stop).
// Panics with ErrZeroStep when step == 0.
func Arange[T numeric.Ordered](start, stop, step T) *Array[T] {
	return &Array[T]{data: seq.Arange(start, stop, step)}
}

// Linspace returns num evenly spaced values; see seq.Linspace.
func Linspace[T numeric.Number](start, stop T, num int, inclusive bool) *Array[T] {
	return &Array[T]{data: seq.Linspace(start, stop, num, inclusive)}
}

// Concat joins the arrays, in order, into a fresh one.
func Concat[T numeric.Number](arrays ...*Array[T]) *Array[T] {
	parts := make([][]T, len(arrays))
	for i, a := range arrays {
		parts[i] = a.data
	}

	return &Array[T]{data: seq.Concat(parts...)}
}

// mustCount panics with ErrNegativeCount for n < 0.
func mustCount(n int) {
	if n < 0 {
		panic(arrayErrorf(opAlloc, ErrNegativeCount))
	}
}

// Len returns the number of elements.
func (a *Array[T]) Len() int { return len(a.data) }

// Data returns the buffer as a borrowed read view. Callers must not write
// through it; use MutData for that.
func (a *Array[T]) Data() []T { return a.data }

// MutData returns the buffer for in-place writes. The length cannot be
// changed through the view.
func (a *Array[T]) MutData() []T { return a.data }

// At returns element i. Panics with ErrOutOfRange unless 0 <= i < Len().
func (a *Array[T]) At(i int) T {
	a.mustIndex(opAt, i)

	return a.data[i]
}

// Set writes v at index i. Panics with ErrOutOfRange unless 0 <= i < Len().
func (a *Array[T]) Set(i int, v T) {
	a.mustIndex(opSet, i)
	a.data[i] = v
}

func (a *Array[T]) mustIndex(op string, i int) {
	if i < 0 || i >= len(a.data) {
		panic(arrayErrorf(op, ErrOutOfRange))
	}
}

// Clone returns a deep copy.
func (a *Array[T]) Clone() *Array[T] {
	out := make([]T, len(a.data))
	copy(out, a.data)

	return &Array[T]{data: out}
}

// Slice returns a copy of elements [i, j).
// Panics with ErrOutOfRange unless 0 <= i <= j <= Len().
func (a *Array[T]) Slice(i, j int) *Array[T] {
	if i < 0 || j < i || j > len(a.data) {
		panic(arrayErrorf(opSlice, ErrOutOfRange))
	}
	out := make([]T, j-i)
	copy(out, a.data[i:j])

	return &Array[T]{data: out}
}

// Append adds values to the end and returns the receiver.
func (a *Array[T]) Append(vs ...T) *Array[T] {
	a.data = append(a.data, vs...)

	return a
}
