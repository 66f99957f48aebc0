// SPDX-License-Identifier: MIT
// Package seq: sentinel error set.
//
// All contract violations panic with fmt.Errorf("seq.<Op>: %w", ErrX);
// match the recovered value with errors.Is.

package seq

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty is reported by reductions that need at least one element.
	ErrEmpty = errors.New("seq: empty input")

	// ErrLengthMismatch indicates two operands of different length.
	ErrLengthMismatch = errors.New("seq: length mismatch")

	// ErrZeroStep is reported by Arange when step == 0.
	ErrZeroStep = errors.New("seq: zero step")

	// ErrTooLong is reported by Arange when the element count is not a
	// representable length (infinite span or step too small).
	ErrTooLong = errors.New("seq: length not representable")

	// ErrOutOfRange indicates an index outside [0, len).
	ErrOutOfRange = errors.New("seq: index out of range")

	// ErrNegativeCount is reported by generators asked for a negative length.
	ErrNegativeCount = errors.New("seq: negative count")
)

// seqErrorf wraps err with the operation tag; the sentinel stays matchable.
func seqErrorf(op string, err error) error {
	return fmt.Errorf("seq.%s: %w", op, err)
}

// mustNonEmpty panics with ErrEmpty when n == 0.
func mustNonEmpty(op string, n int) {
	if n == 0 {
		panic(seqErrorf(op, ErrEmpty))
	}
}

// mustSameLen panics with ErrLengthMismatch when na != nb.
func mustSameLen(op string, na, nb int) {
	if na != nb {
		panic(seqErrorf(op, ErrLengthMismatch))
	}
}
