// Package dense implements the flat storage scheme shared by lvnum containers.
//
// 🚀 What is dense?
//
//	A stateless toolbox over plain Go slices: the row/column-major address
//	formula, element access through that formula, buffer builders, and the
//	two products every container needs (matrix-vector, matrix-matrix).
//	Nothing here owns memory; callers pass buffers in and get fresh buffers
//	back.
//
// ✨ Key features:
//   - Index: row-major row*nCols+col, column-major col*nRows+row.
//   - RowSlice / ColSlice: zero-copy contiguous views when the order allows.
//   - MatVec / MatMat: every operand is read through its own Order, so mixed
//     storage orders combine without reinterpreting a buffer.
//   - Reorder / Transpose: explicit normalization into a fresh buffer.
//   - Format: one row per line, elements separated by a single space.
//
// ⚙️ Usage:
//
//	data := []float64{1, 2, 3, 4, 5, 6}         // 2×3, row-major
//	v := dense.At(2, 3, data, 1, 2, dense.RowMajor) // 6
//	col := dense.Reorder(2, 3, data, dense.RowMajor, dense.ColMajor)
//	// col == [1 4 2 5 3 6]
//
// Errors: contract violations panic with an error wrapping ErrBadShape,
// ErrDimensionMismatch or ErrOrderMismatch; recover and test with errors.Is.
package dense
