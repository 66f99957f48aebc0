// SPDX-License-Identifier: MIT

package dense

import (
	"fmt"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtSep     = " "
	_fmtRowStop = "\n"
)

// Format renders an nRows×nCols buffer as text: one row per line, elements
// separated by a single space, no trailing separator, no trailing newline.
// Elements use their default %v form.
func Format[T any](nRows, nCols int, data []T, order Order) string {
	var sb strings.Builder
	for i := 0; i < nRows; i++ {
		if i > 0 {
			sb.WriteString(_fmtRowStop)
		}
		for j := 0; j < nCols; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, "%v", data[Index(nRows, nCols, i, j, order)])
		}
	}

	return sb.String()
}

// FormatLine renders a buffer on one line, elements separated by a space.
func FormatLine[T any](data []T) string {
	return Format(1, len(data), data, RowMajor)
}

// FormatColumn renders a buffer one element per line.
func FormatColumn[T any](data []T) string {
	return Format(len(data), 1, data, RowMajor)
}
