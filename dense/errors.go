// SPDX-License-Identifier: MIT
// Package dense: sentinel error set.
//
// Contract violations panic with an error wrapping one of these sentinels and
// the operation tag ("dense.MatVec: dense: dimension mismatch"). Recover and
// match with errors.Is.

package dense

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is reported when a buffer length does not equal nRows*nCols
	// or a dimension is negative.
	ErrBadShape = errors.New("dense: invalid shape")

	// ErrDimensionMismatch indicates incompatible operand dimensions,
	// e.g. len(x) != nCols in MatVec or aCols != bRows in MatMat.
	ErrDimensionMismatch = errors.New("dense: dimension mismatch")

	// ErrOrderMismatch indicates a contiguous row (column) view was requested
	// from column-major (row-major) storage.
	ErrOrderMismatch = errors.New("dense: storage order mismatch")
)

// operation tags used in panic values.
const (
	opRowSlice  = "RowSlice"
	opColSlice  = "ColSlice"
	opMatVec    = "MatVec"
	opMatMat    = "MatMat"
	opReorder   = "Reorder"
	opIdentity  = "Identity"
	opTranspose = "Transpose"
)

// denseErrorf wraps err with a "dense.<op>" context, preserving the sentinel.
func denseErrorf(op string, err error) error {
	return fmt.Errorf("dense.%s: %w", op, err)
}
