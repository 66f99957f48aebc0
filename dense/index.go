// SPDX-License-Identifier: MIT

// Package dense - addressing & element access.
//
// Purpose:
//   - Keep ONE address formula for both orders; every accessor in lvnum
//     funnels through Index.
//   - Hand out contiguous views only where the order makes them contiguous.
//
// Complexity quicksheet:
//   - Index/At/Put: O(1); RowSlice/ColSlice: O(1) (views, no copy).

package dense

// Index returns the flat offset of (row, col) in an nRows×nCols buffer.
// Row-major: row*nCols + col. Column-major: col*nRows + row.
// Pure arithmetic; bounds are the caller's responsibility.
func Index(nRows, nCols, row, col int, order Order) int {
	if order == ColMajor {
		return col*nRows + row
	}

	return row*nCols + col
}

// At reads the element at (row, col).
func At[T any](nRows, nCols int, data []T, row, col int, order Order) T {
	return data[Index(nRows, nCols, row, col, order)]
}

// Put writes v at (row, col).
func Put[T any](nRows, nCols int, data []T, row, col int, order Order, v T) {
	data[Index(nRows, nCols, row, col, order)] = v
}

// RowSlice returns row as a view into data (shares memory).
// Panics with ErrOrderMismatch unless order is RowMajor.
func RowSlice[T any](nRows, nCols int, data []T, row int, order Order) []T {
	if order != RowMajor {
		panic(denseErrorf(opRowSlice, ErrOrderMismatch))
	}
	start := row * nCols

	return data[start : start+nCols : start+nCols]
}

// ColSlice returns col as a view into data (shares memory).
// Panics with ErrOrderMismatch unless order is ColMajor.
func ColSlice[T any](nRows, nCols int, data []T, col int, order Order) []T {
	if order != ColMajor {
		panic(denseErrorf(opColSlice, ErrOrderMismatch))
	}
	start := col * nRows

	return data[start : start+nRows : start+nRows]
}

// CheckShape reports ErrBadShape when a dimension is negative or
// n != nRows*nCols.
func CheckShape(nRows, nCols, n int) error {
	if nRows < 0 || nCols < 0 || nRows*nCols != n {
		return ErrBadShape
	}

	return nil
}
