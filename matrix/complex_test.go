// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvnum/matrix"
	"github.com/stretchr/testify/assert"
)

// TestComplexDecompose: parts preserve shape and storage order.
func TestComplexDecompose(t *testing.T) {
	z := matrix.FromRows([][]complex128{{complex(1, 2), complex(3, -4)}}, matrix.WithColMajor())

	re := matrix.Real[float64](z)
	im := matrix.Imag[float64](z)
	assert.Equal(t, matrix.ColMajor, re.Order())
	assert.Equal(t, [][]float64{{1, 3}}, toRows(re))
	assert.Equal(t, [][]float64{{2, -4}}, toRows(im))

	assert.Equal(t, [][]complex128{{complex(1, -2), complex(3, 4)}}, toRows(z.Conj()))

	back := matrix.FromParts[complex128](re, im.ToOrder(matrix.RowMajor))
	assert.Equal(t, toRows(z), toRows(back))

	z64 := matrix.FromRows([][]complex64{{complex(1, 1)}})
	assert.Equal(t, [][]float32{{1}}, toRows(matrix.Imag[float32](z64)))

	r := seqMatrix(1, 2, matrix.RowMajor)
	assert.Equal(t, toRows(r), toRows(r.Conj()))
}
