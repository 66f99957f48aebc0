// SPDX-License-Identifier: MIT
// Package array: sentinel error set.
//
// The sentinels are shared with package seq so a panic raised by a delegated
// algorithm and one raised by Array itself match the same errors.Is target.

package array

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvnum/seq"
)

var (
	// ErrLengthMismatch indicates two operands of different length.
	ErrLengthMismatch = seq.ErrLengthMismatch

	// ErrOutOfRange indicates an index outside [0, Len()).
	ErrOutOfRange = seq.ErrOutOfRange

	// ErrEmpty is reported by reductions that need at least one element.
	ErrEmpty = seq.ErrEmpty

	// ErrZeroStep is reported by Arange when step == 0.
	ErrZeroStep = seq.ErrZeroStep

	// ErrNegativeCount is reported by constructors given a negative length.
	ErrNegativeCount = seq.ErrNegativeCount

	// ErrOddLength is reported by FromInterleaved on an odd-length input.
	ErrOddLength = errors.New("array: interleaved buffer has odd length")
)

// operation tags used in panic values.
const (
	opAt              = "At"
	opSet             = "Set"
	opSlice           = "Slice"
	opFromParts       = "FromParts"
	opFromPolar       = "FromPolar"
	opFromInterleaved = "FromInterleaved"
	opAlloc           = "Alloc"
)

// arrayErrorf wraps err with "Array.<op>" context, preserving the sentinel.
func arrayErrorf(op string, err error) error {
	return fmt.Errorf("Array.%s: %w", op, err)
}
