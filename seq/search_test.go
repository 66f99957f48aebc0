// SPDX-License-Identifier: MIT

package seq_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvnum/seq"
	"github.com/stretchr/testify/assert"
)

// TestAnyAll treats zero as false for real and complex input.
func TestAnyAll(t *testing.T) {
	assert.False(t, seq.Any([]float64{0, 0}))
	assert.True(t, seq.Any([]float64{0, -2}))
	assert.True(t, seq.Any([]complex128{0, 1i}))
	assert.False(t, seq.Any([]float64{}))

	assert.True(t, seq.All([]float64{1, 2}))
	assert.False(t, seq.All([]float64{1, 0}))
	assert.True(t, seq.All([]float64{}))
}

// TestFindNonZero: Zeros(5) with a[2]=7 yields [2] from both.
func TestFindNonZero(t *testing.T) {
	a := make([]float64, 5)
	a[2] = 7
	assert.Equal(t, []int{2}, seq.Find(a))
	assert.Equal(t, []int{2}, seq.NonZero(a))
	assert.Equal(t, []int{}, seq.Find([]float64{0, 0}))
}

// TestArgMaxArgMin checks the first-index tie rule and NaN skipping.
func TestArgMaxArgMin(t *testing.T) {
	tests := []struct {
		name   string
		in     []float64
		argMax int
		argMin int
	}{
		{"single", []float64{4}, 0, 0},
		{"ties", []float64{1, 5, 5, 0, 0}, 1, 3},
		{"negative", []float64{-3, -1, -2}, 1, 0},
		{"nan_first", []float64{math.NaN(), 1, 2}, 2, 1},
		{"all_nan", []float64{math.NaN(), math.NaN()}, 0, 0},
		{"inf", []float64{math.Inf(-1), 0, math.Inf(1)}, 2, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.argMax, seq.ArgMax(tc.in))
			assert.Equal(t, tc.argMin, seq.ArgMin(tc.in))
		})
	}
	requirePanicsIs(t, seq.ErrEmpty, func() { seq.ArgMax([]float64{}) })
	requirePanicsIs(t, seq.ErrEmpty, func() { seq.ArgMin([]float64{}) })
}

func TestIsNaNMask(t *testing.T) {
	assert.Equal(t, []float64{0, 1, 0}, seq.IsNaN([]float64{1, math.NaN(), math.Inf(1)}))
	assert.Equal(t, []complex128{1, 0}, seq.IsNaN([]complex128{complex(math.NaN(), 0), 1}))
}

// TestMasks covers scalar, pairwise and logical masks.
func TestMasks(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{3, 2, 1}

	assert.Equal(t, []float64{0, 1, 0}, seq.Eq(a, 2))
	assert.Equal(t, []float64{1, 0, 1}, seq.Ne(a, 2))
	assert.Equal(t, []float64{0, 0, 1}, seq.Gt(a, 2))
	assert.Equal(t, []float64{1, 0, 0}, seq.Lt(a, 2))
	assert.Equal(t, []float64{0, 1, 1}, seq.Ge(a, 2))
	assert.Equal(t, []float64{1, 1, 0}, seq.Le(a, 2))

	assert.Equal(t, []float64{0, 1, 0}, seq.Equal(a, b))
	assert.Equal(t, []float64{1, 0, 1}, seq.NotEqual(a, b))
	assert.Equal(t, []float64{1, 0, 0}, seq.LessThan(a, b))
	assert.Equal(t, []float64{0, 0, 1}, seq.GreaterThan(a, b))

	assert.Equal(t, []float64{0, 0, 1}, seq.And(seq.Ge(a, 2), seq.Gt(a, 2)))
	assert.Equal(t, []float64{1, 0, 1}, seq.Or(seq.Lt(a, 2), seq.Gt(a, 2)))
	assert.Equal(t, []float64{1, 0, 1}, seq.Not(seq.Eq(a, 2)))

	z := []complex128{1i, 2}
	assert.Equal(t, []complex128{0, 1}, seq.Eq(z, 2))

	requirePanicsIs(t, seq.ErrLengthMismatch, func() { seq.Equal(a, b[:2]) })
	requirePanicsIs(t, seq.ErrLengthMismatch, func() { seq.And(a, b[:1]) })
}

// TestMaskCount: Sum of a mask counts matches.
func TestMaskCount(t *testing.T) {
	a := []float64{5, 1, 5, 5}
	assert.Equal(t, 3.0, seq.Sum(seq.Eq(a, 5)))
}
