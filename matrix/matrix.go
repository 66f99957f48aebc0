// SPDX-License-Identifier: MIT

// Package matrix - the Matrix[T] container & constructors.
//
// Purpose:
//   - Own rows, cols, one flat buffer (len == rows*cols) and a storage Order
//     fixed at construction.
//   - Every coordinate access funnels through dense.Index, so row-major and
//     column-major share all algorithms.
//
// Complexity quicksheet:
//   - New: O(1) (takes ownership); Zeros/Ones/Full/Identity/Generate: O(r*c).

package matrix

import (
	"github.com/katalvlaran/lvnum/array"
	"github.com/katalvlaran/lvnum/dense"
	"github.com/katalvlaran/lvnum/numeric"
)

// ---------- error context tags ----------

const (
	ctxNew      = "Matrix.New"
	ctxFromRows = "Matrix.FromRows"
	ctxAlloc    = "Matrix.Alloc"
)

// Matrix is a dense rows×cols matrix of T in RowMajor or ColMajor order.
//   - data is a flat buffer of length rows*cols.
//   - order never changes after construction; use ToOrder for an explicit copy.
type Matrix[T numeric.Number] struct {
	rows, cols int   // dimensions (>= 0)
	data       []T   // contiguous storage (len == rows*cols)
	order      Order // storage order, fixed for the lifetime of the value
}

// New wraps data as a rows×cols matrix and takes ownership of it.
// MAIN DESCRIPTION:
//   - Foreign-buffer constructor: data is interpreted in the order chosen by
//     opts (RowMajor by default). No copy is made.
//
// Errors (panic):
//   - ErrBadShape when len(data) != rows*cols or a dimension is negative.
//
// Complexity:
//   - Time O(1), Space O(1).
func New[T numeric.Number](rows, cols int, data []T, opts ...Option) *Matrix[T] {
	if err := dense.CheckShape(rows, cols, len(data)); err != nil {
		panic(matrixErrorf(ctxNew, err))
	}
	if data == nil {
		data = []T{}
	}
	o := gatherOptions(opts...)

	return &Matrix[T]{rows: rows, cols: cols, data: data, order: o.order}
}

// alloc validates the shape and returns a zeroed buffer.
func alloc[T numeric.Number](rows, cols int) []T {
	if rows < 0 || cols < 0 {
		panic(matrixErrorf(ctxAlloc, ErrBadShape))
	}

	return dense.Zeros[T](rows * cols)
}

// Zeros returns a rows×cols zero matrix.
func Zeros[T numeric.Number](rows, cols int, opts ...Option) *Matrix[T] {
	return New(rows, cols, alloc[T](rows, cols), opts...)
}

// Ones returns a rows×cols matrix of ones.
func Ones[T numeric.Number](rows, cols int, opts ...Option) *Matrix[T] {
	return Full(rows, cols, numeric.One[T](), opts...)
}

// Full returns a rows×cols matrix filled with v.
func Full[T numeric.Number](rows, cols int, v T, opts ...Option) *Matrix[T] {
	buf := alloc[T](rows, cols)
	for i := range buf {
		buf[i] = v
	}

	return New(rows, cols, buf, opts...)
}

// Identity returns the n×n identity matrix.
func Identity[T numeric.Number](n int, opts ...Option) *Matrix[T] {
	if n < 0 {
		panic(matrixErrorf(ctxAlloc, ErrBadShape))
	}

	return New(n, n, dense.Identity[T](n), opts...)
}

// Generate returns the rows×cols matrix with element (i, j) = f(i, j).
// f is called in row-major coordinate order regardless of storage order.
func Generate[T numeric.Number](rows, cols int, f func(i, j int) T, opts ...Option) *Matrix[T] {
	m := Zeros[T](rows, cols, opts...)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			m.data[m.index(i, j)] = f(i, j)
		}
	}

	return m
}

// FromRows copies a slice of equal-length rows into a new matrix.
// An empty input yields a 0×0 matrix.
// Panics with ErrRaggedRows when the rows differ in length.
func FromRows[T numeric.Number](rows [][]T, opts ...Option) *Matrix[T] {
	if len(rows) == 0 {
		return Zeros[T](0, 0, opts...)
	}
	cols := len(rows[0])
	for _, r := range rows {
		if len(r) != cols {
			panic(matrixErrorf(ctxFromRows, ErrRaggedRows))
		}
	}

	return Generate(len(rows), cols, func(i, j int) T { return rows[i][j] }, opts...)
}

// Rand returns a rows×cols matrix of uniform samples in [0, 1)
// (see WithSource, WithUniformBounds).
func Rand[T numeric.Number](rows, cols int, opts ...Option) *Matrix[T] {
	if rows < 0 || cols < 0 {
		panic(matrixErrorf(ctxAlloc, ErrBadShape))
	}
	o := gatherOptions(opts...)
	buf := array.Rand[T](rows*cols, o.rnd...).MutData()

	return &Matrix[T]{rows: rows, cols: cols, data: buf, order: o.order}
}

// RandN returns a rows×cols matrix of standard-normal samples
// (see WithSource, WithNormalParams).
func RandN[T numeric.Number](rows, cols int, opts ...Option) *Matrix[T] {
	if rows < 0 || cols < 0 {
		panic(matrixErrorf(ctxAlloc, ErrBadShape))
	}
	o := gatherOptions(opts...)
	buf := array.RandN[T](rows*cols, o.rnd...).MutData()

	return &Matrix[T]{rows: rows, cols: cols, data: buf, order: o.order}
}

// like returns a zero matrix with m's shape and order.
func like[T numeric.Number](m *Matrix[T]) *Matrix[T] {
	return &Matrix[T]{rows: m.rows, cols: m.cols, data: make([]T, len(m.data)), order: m.order}
}

// index is the flat offset of (i, j) in m's own order.
func (m *Matrix[T]) index(i, j int) int {
	return dense.Index(m.rows, m.cols, i, j, m.order)
}
