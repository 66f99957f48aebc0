// Package matrix offers a generic dense 2-D container, Matrix[T], built on
// the flat row-major / column-major storage scheme of package dense.
//
// The matrix package provides:
//
//   - Constructors (Zeros, Ones, Full, Identity, Generate, FromRows, New,
//     Rand, RandN) with an explicit storage order (WithRowMajor, WithColMajor).
//   - Coordinate access (At, Set), lazy row/column iteration (Row, Col,
//     AllRows) and contiguous views constrained to the matching order
//     (RowSlice, ColSlice).
//   - Row-subset selection (SelectRows, always row-major).
//   - MatVec and MatMat over any mix of storage orders.
//   - Elementwise arithmetic mirroring package array, in allocating and
//     in-place forms, plus scalar-on-the-left package functions.
//   - Complex decomposition (Real, Imag, Conj, FromParts).
//   - Row/column statistics (RowSums, ColMeans, CenterColumns, Covariance,
//     Correlation, ...).
//
// Contract violations (shape mismatch, out-of-range index, order mismatch)
// panic with an error wrapping one of the package sentinels; recover and use
// errors.Is. Validate* helpers return the same sentinels for callers that
// prefer to check first.
//
// A matrix never changes its storage order implicitly: results take the
// receiver's order, and ToOrder makes an explicit copy.
package matrix
