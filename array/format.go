// SPDX-License-Identifier: MIT

package array

import (
	"fmt"

	"github.com/katalvlaran/lvnum/dense"
)

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Array[float64])(nil)

// String renders the elements on one line separated by single spaces.
func (a *Array[T]) String() string { return dense.FormatLine(a.data) }

// StringCol renders one element per line.
func (a *Array[T]) StringCol() string { return dense.FormatColumn(a.data) }
