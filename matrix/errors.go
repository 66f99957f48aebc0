// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Contract violations panic with an error wrapping one of these;
// Validate* helpers return them directly. Tests match via errors.Is.

package matrix

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvnum/dense"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." (or the owning package) for
// easy grepping. Panics wrap with matrixErrorf("Matrix.<op>", ErrX); callers
// recover and use errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// shape -> index -> dimension mismatch -> order mismatch.

var (
	// ErrBadShape is reported when len(data) != rows*cols or a dimension is
	// negative. Shared with package dense.
	ErrBadShape = dense.ErrBadShape

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add on different shapes, or MatMat where a.Cols != b.Rows.
	// Shared with package dense so kernel panics match the same target.
	ErrDimensionMismatch = dense.ErrDimensionMismatch

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrOrderMismatch signals a contiguous row view on column-major storage
	// or vice versa.
	ErrOrderMismatch = dense.ErrOrderMismatch

	// ErrRaggedRows indicates FromRows input whose rows differ in length.
	ErrRaggedRows = errors.New("matrix: rows have different lengths")

	// ErrTooFewRows signals a statistic that needs at least two observations.
	ErrTooFewRows = errors.New("matrix: need at least two rows")

	// ErrNaNInf signals a NaN or ±Inf tolerance or bound.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)

// matrixErrorf wraps err with an operation tag, preserving the sentinel.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// denseErrorf wraps an error with Matrix context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}
