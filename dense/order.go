// SPDX-License-Identifier: MIT

package dense

import "strconv"

// Order is the storage order of a two-dimensional buffer.
// It is fixed when a container is built and never flips implicitly.
type Order uint8

const (
	// RowMajor stores rows contiguously: offset = row*nCols + col.
	RowMajor Order = iota
	// ColMajor stores columns contiguously: offset = col*nRows + row.
	ColMajor
)

// String implements fmt.Stringer.
func (o Order) String() string {
	switch o {
	case RowMajor:
		return "RowMajor"
	case ColMajor:
		return "ColMajor"
	default:
		return "Order(" + strconv.Itoa(int(o)) + ")"
	}
}
