// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvnum/dense"
)

var _ fmt.Stringer = (*Matrix[float64])(nil)

// String renders m row by row: elements separated by a space, rows by a
// newline, no trailing newline. An empty matrix renders as "".
func (m *Matrix[T]) String() string {
	return dense.Format(m.rows, m.cols, m.data, m.order)
}
