// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape checks here.
//  - Return plain sentinel errors (tag-wrapped) so callers can check before a
//    panicking operation, or kernels can panic with the same value.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.
//
// Note:
//  - Each validator describes what it validates and what it assumes.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvnum/numeric"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateSameShape – Ensures matrices a and b have equal dimensions.
//
// Return: nil or wrapped ErrDimensionMismatch.
// Complexity: O(1).
// AI-Hints: Use for Add/Sub/Mul/Div kernels and compatibility guards.
func ValidateSameShape[T numeric.Number](a, b *Matrix[T]) error {
	if a.rows != b.rows {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.cols != b.cols {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible – Ensures a.Cols() == b.Rows() for a·b.
//
// Complexity: O(1).
func ValidateMulCompatible[T numeric.Number](a, b *Matrix[T]) error {
	if a.cols != b.rows {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures the vector length n matches the required size want.
// Time: O(1). Space: O(1).
func ValidateVecLen(n, want int) error {
	if n != want {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
//
// Errors: ErrNonSquare.
// Complexity: O(1).
func ValidateSquare[T numeric.Number](m *Matrix[T]) error {
	if m.rows != m.cols {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateIndex checks 0 <= row < Rows() and 0 <= col < Cols().
//
// Errors: ErrOutOfRange.
// Complexity: O(1).
func ValidateIndex[T numeric.Number](m *Matrix[T], row, col int) error {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return validatorErrorf(fmt.Sprintf("ValidateIndex(%d,%d)", row, col), ErrOutOfRange)
	}

	return nil
}

// validateTolerance rejects NaN/Inf tolerances (negative ones are normalized
// by the caller).
func validateTolerance(rtol, atol float64) error {
	if !isFinite(rtol) || !isFinite(atol) {
		return validatorErrorf("validateTolerance", ErrNaNInf)
	}

	return nil
}
