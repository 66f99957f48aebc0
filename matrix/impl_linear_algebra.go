// SPDX-License-Identifier: MIT
// Package matrix - products and structural transforms.
//
// Purpose:
//   - MatVec / MatMat over any combination of storage orders, delegating the
//     loops to dense kernels.
//   - Transpose / ToOrder / Symmetrize as explicit copies; the receiver's
//     order never flips.
//
// Determinism:
//   - Fixed loop orders inside the dense kernels; results are bit-for-bit
//     reproducible for a given input and order combination.
//
// AI-Hints:
//   - For repeated products against the same right operand, keep both in
//     RowMajor to hit the contiguous fast path.

package matrix

import (
	"github.com/katalvlaran/lvnum/array"
	"github.com/katalvlaran/lvnum/dense"
	"github.com/katalvlaran/lvnum/numeric"
)

// Operation name constants for unified error wrapping.
const (
	opMatVec     = "Matrix.MatVec"
	opMatMat     = "Matrix.MatMat"
	opSymmetrize = "Matrix.Symmetrize"
	opToOrder    = "Matrix.ToOrder"
)

// MatVec returns y = m·x as a new array of length Rows().
// MAIN DESCRIPTION:
//   - y[i] is the dot product of row i with x.
//
// Errors (panic):
//   - ErrDimensionMismatch when x.Len() != Cols().
//
// Complexity:
//   - Time O(r*c), Space O(r).
func (m *Matrix[T]) MatVec(x *array.Array[T]) *array.Array[T] {
	if err := ValidateVecLen(x.Len(), m.cols); err != nil {
		panic(matrixErrorf(opMatVec, err))
	}

	return array.FromSlice(dense.MatVec(m.rows, m.cols, m.data, m.order, x.Data()))
}

// MatMat returns m·b, a Rows()×b.Cols() matrix in the receiver's order.
// Implementation:
//   - Stage 1: validate m.Cols() == b.Rows().
//   - Stage 2: dense.MatMat reads each operand through its own order.
//
// Errors (panic):
//   - ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*k*c), Space O(r*c).
func (m *Matrix[T]) MatMat(b *Matrix[T]) *Matrix[T] {
	if err := ValidateMulCompatible(m, b); err != nil {
		panic(matrixErrorf(opMatMat, err))
	}
	out := dense.MatMat(m.rows, m.cols, m.data, m.order, b.rows, b.cols, b.data, b.order, m.order)

	return &Matrix[T]{rows: m.rows, cols: b.cols, data: out, order: m.order}
}

// Transpose returns the Cols()×Rows() transpose, kept in the receiver's order.
// Complexity: O(r*c).
func (m *Matrix[T]) Transpose() *Matrix[T] {
	out := dense.Transpose(m.rows, m.cols, m.data, m.order)

	return &Matrix[T]{rows: m.cols, cols: m.rows, data: out, order: m.order}
}

// ToOrder returns a copy laid out in order; same logical values.
// Panics when order is neither RowMajor nor ColMajor.
// Complexity: O(r*c).
func (m *Matrix[T]) ToOrder(order Order) *Matrix[T] {
	if order != RowMajor && order != ColMajor {
		panic(matrixErrorf(opToOrder, ErrOrderMismatch))
	}
	out := dense.Reorder(m.rows, m.cols, m.data, m.order, order)

	return &Matrix[T]{rows: m.rows, cols: m.cols, data: out, order: order}
}

// Symmetrize returns (m + mᵀ)/2 for a square m.
// Errors (panic):
//   - ErrNonSquare.
//
// Complexity: O(n²).
func Symmetrize[T numeric.Number](m *Matrix[T]) *Matrix[T] {
	if err := ValidateSquare(m); err != nil {
		panic(matrixErrorf(opSymmetrize, err))
	}
	half := numeric.FromFloat64[T](0.5)
	out := like(m)
	n := m.rows
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out.data[out.index(i, j)] = (m.data[m.index(i, j)] + m.data[m.index(j, i)]) * half
		}
	}

	return out
}
