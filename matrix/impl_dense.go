// SPDX-License-Identifier: MIT

// Package matrix - storage accessors, iteration & views.
//
// Purpose:
//   - Safe coordinate access (At/Set panic with ErrOutOfRange on bad indices).
//   - Lazy row/column iteration as iter.Seq, valid for either order.
//   - Zero-copy RowSlice/ColSlice only where the order makes them contiguous.
//
// AI-Hints:
//   - Prefer Row/Col iterators in order-agnostic code; use RowSlice/ColSlice
//     in hot loops when the order is known.
//   - SelectRows always materializes a RowMajor copy.
//
// Complexity quicksheet:
//   - At/Set/RowSlice/ColSlice: O(1); Row/Col: O(c)/O(r) when fully consumed;
//     Clone: O(r*c); SelectRows: O(k*c).

package matrix

import (
	"iter"

	"github.com/katalvlaran/lvnum/dense"
)

// ---------- error context tags ----------

const (
	ctxAt         = "At"         // method tag used in error wrappers
	ctxSet        = "Set"        // method tag used in error wrappers
	ctxRowSlice   = "RowSlice"   // method tag used in error wrappers
	ctxColSlice   = "ColSlice"   // method tag used in error wrappers
	ctxRow        = "Row"        // method tag used in error wrappers
	ctxCol        = "Col"        // method tag used in error wrappers
	ctxSelectRows = "SelectRows" // method tag used in error wrappers
)

// Rows returns the row count.
func (m *Matrix[T]) Rows() int { return m.rows }

// Cols returns the column count.
func (m *Matrix[T]) Cols() int { return m.cols }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Matrix[T]) Shape() (rows, cols int) { return m.rows, m.cols }

// Order returns the storage order fixed at construction.
func (m *Matrix[T]) Order() Order { return m.order }

// Len returns rows*cols.
func (m *Matrix[T]) Len() int { return len(m.data) }

// Data returns the flat buffer as a borrowed read view, laid out in Order().
func (m *Matrix[T]) Data() []T { return m.data }

// MutData returns the flat buffer for in-place writes, laid out in Order().
func (m *Matrix[T]) MutData() []T { return m.data }

// checkIndex panics with ErrOutOfRange unless (row, col) is inside the matrix.
func (m *Matrix[T]) checkIndex(method string, row, col int) {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		panic(denseErrorf(method, row, col, ErrOutOfRange))
	}
}

// At returns the element at (row, col).
// Panics with ErrOutOfRange on an invalid coordinate.
// Complexity: O(1).
func (m *Matrix[T]) At(row, col int) T {
	m.checkIndex(ctxAt, row, col)

	return m.data[m.index(row, col)]
}

// Set writes v at (row, col).
// Panics with ErrOutOfRange on an invalid coordinate.
// Complexity: O(1).
func (m *Matrix[T]) Set(row, col int, v T) {
	m.checkIndex(ctxSet, row, col)
	m.data[m.index(row, col)] = v
}

// Row returns a lazy iterator over row i, left to right.
// Panics with ErrOutOfRange when i is invalid (at call time, not iteration).
func (m *Matrix[T]) Row(i int) iter.Seq[T] {
	if i < 0 || i >= m.rows {
		panic(denseErrorf(ctxRow, i, 0, ErrOutOfRange))
	}

	return func(yield func(T) bool) {
		for j := 0; j < m.cols; j++ {
			if !yield(m.data[m.index(i, j)]) {
				return
			}
		}
	}
}

// Col returns a lazy iterator over column j, top to bottom.
// Panics with ErrOutOfRange when j is invalid.
func (m *Matrix[T]) Col(j int) iter.Seq[T] {
	if j < 0 || j >= m.cols {
		panic(denseErrorf(ctxCol, 0, j, ErrOutOfRange))
	}

	return func(yield func(T) bool) {
		for i := 0; i < m.rows; i++ {
			if !yield(m.data[m.index(i, j)]) {
				return
			}
		}
	}
}

// AllRows iterates (i, Row(i)) for every row in order.
func (m *Matrix[T]) AllRows() iter.Seq2[int, iter.Seq[T]] {
	return func(yield func(int, iter.Seq[T]) bool) {
		for i := 0; i < m.rows; i++ {
			if !yield(i, m.Row(i)) {
				return
			}
		}
	}
}

// RowSlice returns row i as a view into the buffer (writes are visible).
// Panics with ErrOrderMismatch unless Order() == RowMajor, and with
// ErrOutOfRange for an invalid i.
func (m *Matrix[T]) RowSlice(i int) []T {
	if m.order != RowMajor {
		panic(denseErrorf(ctxRowSlice, i, 0, ErrOrderMismatch))
	}
	if i < 0 || i >= m.rows {
		panic(denseErrorf(ctxRowSlice, i, 0, ErrOutOfRange))
	}

	return dense.RowSlice(m.rows, m.cols, m.data, i, m.order)
}

// ColSlice returns column j as a view into the buffer.
// Panics with ErrOrderMismatch unless Order() == ColMajor, and with
// ErrOutOfRange for an invalid j.
func (m *Matrix[T]) ColSlice(j int) []T {
	if m.order != ColMajor {
		panic(denseErrorf(ctxColSlice, 0, j, ErrOrderMismatch))
	}
	if j < 0 || j >= m.cols {
		panic(denseErrorf(ctxColSlice, 0, j, ErrOutOfRange))
	}

	return dense.ColSlice(m.rows, m.cols, m.data, j, m.order)
}

// SelectRows returns a new len(ix)×cols matrix holding rows ix in the given
// sequence (repeats allowed). The result is always RowMajor.
// Panics with ErrOutOfRange on an invalid row index.
// Complexity: O(len(ix)*c).
func (m *Matrix[T]) SelectRows(ix []int) *Matrix[T] {
	out := make([]T, 0, len(ix)*m.cols)
	for _, i := range ix {
		if i < 0 || i >= m.rows {
			panic(denseErrorf(ctxSelectRows, i, 0, ErrOutOfRange))
		}
		for j := 0; j < m.cols; j++ {
			out = append(out, m.data[m.index(i, j)])
		}
	}

	return &Matrix[T]{rows: len(ix), cols: m.cols, data: out, order: RowMajor}
}

// Clone returns a deep copy with the same shape and order.
// Complexity: O(r*c).
func (m *Matrix[T]) Clone() *Matrix[T] {
	out := like(m)
	copy(out.data, m.data)

	return out
}

// Do visits every element in row-major coordinate order until f returns false.
// MAIN DESCRIPTION:
//   - Read-only traversal independent of the storage order.
//
// Complexity:
//   - Time O(r*c) worst case, Space O(1).
func (m *Matrix[T]) Do(f func(i, j int, v T) bool) {
	var i, j int
	for i = 0; i < m.rows; i++ {
		for j = 0; j < m.cols; j++ {
			if !f(i, j, m.data[m.index(i, j)]) {
				return // early exit requested by caller
			}
		}
	}
}

// Apply replaces every element with f(i, j, v), visiting in row-major
// coordinate order, and returns the receiver.
func (m *Matrix[T]) Apply(f func(i, j int, v T) T) *Matrix[T] {
	var i, j, k int
	for i = 0; i < m.rows; i++ {
		for j = 0; j < m.cols; j++ {
			k = m.index(i, j)
			m.data[k] = f(i, j, m.data[k])
		}
	}

	return m
}
