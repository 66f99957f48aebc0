// SPDX-License-Identifier: MIT

package dense

// Reorder copies an nRows×nCols buffer stored in from into a fresh buffer
// stored in to. The source is never modified; from == to yields a plain copy.
// Panics with ErrBadShape when len(data) != nRows*nCols.
// Complexity: O(r*c).
func Reorder[T any](nRows, nCols int, data []T, from, to Order) []T {
	if err := CheckShape(nRows, nCols, len(data)); err != nil {
		panic(denseErrorf(opReorder, err))
	}
	out := make([]T, len(data))
	if from == to {
		copy(out, data)

		return out
	}
	for i := 0; i < nRows; i++ {
		for j := 0; j < nCols; j++ {
			out[Index(nRows, nCols, i, j, to)] = data[Index(nRows, nCols, i, j, from)]
		}
	}

	return out
}

// Transpose returns the nCols×nRows transpose of data, kept in the same order.
// Complexity: O(r*c).
func Transpose[T any](nRows, nCols int, data []T, order Order) []T {
	if err := CheckShape(nRows, nCols, len(data)); err != nil {
		panic(denseErrorf(opTranspose, err))
	}
	out := make([]T, len(data))
	for i := 0; i < nRows; i++ {
		for j := 0; j < nCols; j++ {
			out[Index(nCols, nRows, j, i, order)] = data[Index(nRows, nCols, i, j, order)]
		}
	}

	return out
}
