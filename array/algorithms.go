// SPDX-License-Identifier: MIT

// Package array - sequence algorithms bound to Array.
//
// Methods cover every algorithm valid for any element type; the ordered ones
// are package functions taking *Array[T] with T real. All delegate to seq,
// so semantics (empty-input rules, NaN ordering, tie breaking) are shared.

package array

import (
	"github.com/katalvlaran/lvnum/numeric"
	"github.com/katalvlaran/lvnum/seq"
)

// Sum returns the sum of the elements (zero for an empty array).
func (a *Array[T]) Sum() T { return seq.Sum(a.data) }

// Prod returns the product of the elements (one for an empty array).
func (a *Array[T]) Prod() T { return seq.Prod(a.data) }

// CumSum returns the running sums.
func (a *Array[T]) CumSum() *Array[T] { return &Array[T]{data: seq.CumSum(a.data)} }

// Mean returns the arithmetic mean. Panics with ErrEmpty on an empty array.
func (a *Array[T]) Mean() T { return seq.Mean(a.data) }

// Var returns the population variance. Panics with ErrEmpty.
func (a *Array[T]) Var() T { return seq.Var(a.data) }

// Std returns the population standard deviation. Panics with ErrEmpty.
func (a *Array[T]) Std() T { return seq.Std(a.data) }

// Diff returns the discrete difference, one element shorter.
// Panics with ErrEmpty.
func (a *Array[T]) Diff() *Array[T] { return &Array[T]{data: seq.Diff(a.data)} }

// Norm2 returns the Euclidean norm.
func (a *Array[T]) Norm2() float64 { return seq.Norm2(a.data) }

// NormInf returns the largest magnitude (zero for an empty array).
func (a *Array[T]) NormInf() float64 { return seq.NormInf(a.data) }

// Dot returns Σ a[i]*b[i] without conjugation.
// Panics with ErrLengthMismatch.
func (a *Array[T]) Dot(b *Array[T]) T { return seq.Dot(a.data, b.data) }

// Any reports whether some element is non-zero.
func (a *Array[T]) Any() bool { return seq.Any(a.data) }

// All reports whether every element is non-zero.
func (a *Array[T]) All() bool { return seq.All(a.data) }

// Find returns the indices of the non-zero elements.
func (a *Array[T]) Find() []int { return seq.Find(a.data) }

// NonZero returns the indices of the non-zero elements.
func (a *Array[T]) NonZero() []int { return seq.NonZero(a.data) }

// IsNaN returns the 0/1 mask of NaN elements.
func (a *Array[T]) IsNaN() *Array[T] { return &Array[T]{data: seq.IsNaN(a.data)} }

// Eq returns the mask a[i] == v.
func (a *Array[T]) Eq(v T) *Array[T] { return &Array[T]{data: seq.Eq(a.data, v)} }

// Ne returns the mask a[i] != v.
func (a *Array[T]) Ne(v T) *Array[T] { return &Array[T]{data: seq.Ne(a.data, v)} }

// Equal returns the pairwise mask a[i] == b[i]. Panics with ErrLengthMismatch.
func (a *Array[T]) Equal(b *Array[T]) *Array[T] {
	return &Array[T]{data: seq.Equal(a.data, b.data)}
}

// NotEqual returns the pairwise mask a[i] != b[i]. Panics with ErrLengthMismatch.
func (a *Array[T]) NotEqual(b *Array[T]) *Array[T] {
	return &Array[T]{data: seq.NotEqual(a.data, b.data)}
}

// Select gathers the elements at ix into a new array.
func (a *Array[T]) Select(ix []int) *Array[T] { return &Array[T]{data: seq.Select(a.data, ix)} }

// SetSlice scatters v into the positions ix: a[ix[k]] = v[k].
func (a *Array[T]) SetSlice(ix []int, v *Array[T]) { seq.SetSlice(a.data, ix, v.data) }

// SetAll writes v at every position in ix.
func (a *Array[T]) SetAll(ix []int, v T) { seq.SetAll(a.data, ix, v) }

// AllClose reports whether a and b match within |a-b| <= atol + rtol*|b|.
func (a *Array[T]) AllClose(b *Array[T], rtol, atol float64) bool {
	return seq.AllClose(a.data, b.data, rtol, atol)
}

// ---------- ordered (real element types only) ----------

// Max returns the largest element. Panics with ErrEmpty.
func Max[T numeric.Ordered](a *Array[T]) T { return seq.Max(a.data) }

// Min returns the smallest element. Panics with ErrEmpty.
func Min[T numeric.Ordered](a *Array[T]) T { return seq.Min(a.data) }

// ArgMax returns the first index of the largest element. Panics with ErrEmpty.
func ArgMax[T numeric.Ordered](a *Array[T]) int { return seq.ArgMax(a.data) }

// ArgMin returns the first index of the smallest element. Panics with ErrEmpty.
func ArgMin[T numeric.Ordered](a *Array[T]) int { return seq.ArgMin(a.data) }

// Gt returns the mask a[i] > v.
func Gt[T numeric.Ordered](a *Array[T], v T) *Array[T] { return &Array[T]{data: seq.Gt(a.data, v)} }

// Lt returns the mask a[i] < v.
func Lt[T numeric.Ordered](a *Array[T], v T) *Array[T] { return &Array[T]{data: seq.Lt(a.data, v)} }

// Ge returns the mask a[i] >= v.
func Ge[T numeric.Ordered](a *Array[T], v T) *Array[T] { return &Array[T]{data: seq.Ge(a.data, v)} }

// Le returns the mask a[i] <= v.
func Le[T numeric.Ordered](a *Array[T], v T) *Array[T] { return &Array[T]{data: seq.Le(a.data, v)} }

// LessThan returns the pairwise mask a[i] < b[i].
func LessThan[T numeric.Ordered](a, b *Array[T]) *Array[T] {
	return &Array[T]{data: seq.LessThan(a.data, b.data)}
}

// GreaterThan returns the pairwise mask a[i] > b[i].
func GreaterThan[T numeric.Ordered](a, b *Array[T]) *Array[T] {
	return &Array[T]{data: seq.GreaterThan(a.data, b.data)}
}

// Sort reorders a in place (stable, ascending unless reverse) and returns
// the permutation applied: after the call a[i] == old[perm[i]].
func Sort[T numeric.Ordered](a *Array[T], reverse bool) []int { return seq.Sort(a.data, reverse) }

// ArgSort returns the permutation Sort would apply, leaving a untouched.
func ArgSort[T numeric.Ordered](a *Array[T], reverse bool) []int {
	return seq.ArgSort(a.data, reverse)
}
