// SPDX-License-Identifier: MIT

// Package dense - products over flat buffers.
//
// Purpose:
//   - One matrix-vector and one matrix-matrix kernel for every container.
//   - Each operand is addressed through its own Order; mixed orders are legal
//     and produce the same numbers as a same-order product.
//
// Determinism:
//   - Fixed loop order; accumulation always runs k = 0..inner-1.
//
// Complexity quicksheet:
//   - MatVec: O(r*c); MatMat: O(r*inner*c).

package dense

import "github.com/katalvlaran/lvnum/numeric"

// MatVec returns y = A·x where A is nRows×nCols in the given order.
// MAIN DESCRIPTION:
//   - y[i] = Σ_j A(i,j)·x[j], a per-row dot product.
//
// Implementation:
//   - Stage 1: validate len(x) == nCols, len(a) == nRows*nCols.
//   - Stage 2: row-major walks contiguous rows; column-major accumulates
//     column by column (axpy form) so both read their buffer sequentially.
//
// Errors (panic):
//   - ErrBadShape, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(r).
func MatVec[T numeric.Number](nRows, nCols int, a []T, order Order, x []T) []T {
	if err := CheckShape(nRows, nCols, len(a)); err != nil {
		panic(denseErrorf(opMatVec, err))
	}
	if len(x) != nCols {
		panic(denseErrorf(opMatVec, ErrDimensionMismatch))
	}

	y := make([]T, nRows)
	if order == ColMajor {
		for j := 0; j < nCols; j++ {
			xj := x[j]
			col := a[j*nRows : (j+1)*nRows]
			for i, v := range col {
				y[i] += v * xj
			}
		}

		return y
	}

	for i := 0; i < nRows; i++ {
		row := a[i*nCols : (i+1)*nCols]
		var acc T
		for j, v := range row {
			acc += v * x[j]
		}
		y[i] = acc
	}

	return y
}

// MatMat returns C = A·B, with A aRows×aCols in aOrder, B bRows×bCols in
// bOrder and C aRows×bCols laid out in out.
//
// Implementation:
//   - Stage 1: validate both buffers and aCols == bRows.
//   - Stage 2: all-RowMajor fast path (i-k-j, contiguous inner loop).
//   - Stage 3: otherwise the i-j-k loop reads each operand via Index.
//
// Errors (panic):
//   - ErrBadShape, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(aRows*aCols*bCols), Space O(aRows*bCols).
func MatMat[T numeric.Number](
	aRows, aCols int, a []T, aOrder Order,
	bRows, bCols int, b []T, bOrder Order,
	out Order,
) []T {
	if err := CheckShape(aRows, aCols, len(a)); err != nil {
		panic(denseErrorf(opMatMat, err))
	}
	if err := CheckShape(bRows, bCols, len(b)); err != nil {
		panic(denseErrorf(opMatMat, err))
	}
	if aCols != bRows {
		panic(denseErrorf(opMatMat, ErrDimensionMismatch))
	}

	c := make([]T, aRows*bCols)
	var i, j, k int

	if aOrder == RowMajor && bOrder == RowMajor && out == RowMajor {
		var rowA, rowB, rowC []T
		for i = 0; i < aRows; i++ {
			rowA = a[i*aCols : (i+1)*aCols]
			rowC = c[i*bCols : (i+1)*bCols]
			for k = 0; k < aCols; k++ {
				av := rowA[k]
				rowB = b[k*bCols : (k+1)*bCols]
				for j = 0; j < bCols; j++ {
					rowC[j] += av * rowB[j]
				}
			}
		}

		return c
	}

	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			var acc T
			for k = 0; k < aCols; k++ {
				acc += a[Index(aRows, aCols, i, k, aOrder)] * b[Index(bRows, bCols, k, j, bOrder)]
			}
			c[Index(aRows, bCols, i, j, out)] = acc
		}
	}

	return c
}
