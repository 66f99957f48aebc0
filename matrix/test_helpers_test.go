// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures shared by the kernel tests.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/lvnum/matrix"
	"github.com/katalvlaran/lvnum/numeric"
	"github.com/stretchr/testify/require"
)

// orders lists both storage orders for table-driven tests.
var orders = []matrix.Order{matrix.RowMajor, matrix.ColMajor}

// requirePanicsIs runs f and asserts it panics with an error matching target.
func requirePanicsIs(t *testing.T, target error, f func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic wrapping %v", target)
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		require.True(t, errors.Is(err, target), "got %v, want %v", err, target)
	}()
	f()
}

// seqMatrix builds an r×c matrix with element (i,j) = i*c + j + 1 in order.
func seqMatrix(r, c int, order matrix.Order) *matrix.Matrix[float64] {
	return matrix.Generate(r, c, func(i, j int) float64 { return float64(i*c + j + 1) }, matrix.WithOrder(order))
}

// toRows materializes m as [][]T via the Row iterator.
func toRows[T numeric.Number](m *matrix.Matrix[T]) [][]T {
	out := make([][]T, 0, m.Rows())
	for _, row := range m.AllRows() {
		var r []T
		for v := range row {
			r = append(r, v)
		}
		out = append(out, r)
	}

	return out
}
