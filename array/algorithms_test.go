// SPDX-License-Identifier: MIT

package array_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvnum/array"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// TestReductions compares the methods with gonum on the same data.
func TestReductions(t *testing.T) {
	data := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	a := array.FromSlice(append([]float64(nil), data...))

	mean, std := stat.PopMeanStdDev(data, nil)
	assert.Equal(t, floats.Sum(data), a.Sum())
	assert.InDelta(t, mean, a.Mean(), 1e-12)
	assert.InDelta(t, std, a.Std(), 1e-12)
	assert.InDelta(t, std*std, a.Var(), 1e-12)
	assert.InDelta(t, floats.Norm(data, 2), a.Norm2(), 1e-12)
	assert.Equal(t, floats.Norm(data, math.Inf(1)), a.NormInf())
	assert.Equal(t, floats.Dot(data, data), a.Dot(a))
	assert.Equal(t, 9.0, array.Max(a))
	assert.Equal(t, 2.0, array.Min(a))
	assert.Equal(t, 7, array.ArgMax(a))
	assert.Equal(t, 0, array.ArgMin(a))
	assert.Equal(t, 2.0*4*4*4*5*5*7*9, a.Prod())

	requirePanicsIs(t, array.ErrEmpty, func() { array.New[float64]().Mean() })
	requirePanicsIs(t, array.ErrEmpty, func() { array.ArgMax(array.New[float64]()) })
	requirePanicsIs(t, array.ErrLengthMismatch, func() { a.Dot(array.Ones[float64](2)) })
}

// TestOnesSum: Ones(n).Sum() == n.
func TestOnesSum(t *testing.T) {
	for _, n := range []int{0, 1, 7, 1000} {
		assert.Equal(t, float64(n), array.Ones[float64](n).Sum())
		assert.Equal(t, complex(float64(n), 0), array.Ones[complex128](n).Sum())
	}
}

// TestCumSumDiff: prefix-sum and difference laws.
func TestCumSumDiff(t *testing.T) {
	a := array.FromSlice([]float64{1, -2, 3.5, 0, 4})
	cs := a.CumSum()
	for i := 0; i < a.Len(); i++ {
		assert.Equal(t, a.Slice(0, i+1).Sum(), cs.At(i))
	}

	d := a.Diff()
	require.Equal(t, a.Len()-1, d.Len())
	for i := 0; i < d.Len(); i++ {
		assert.Equal(t, a.At(i+1)-a.At(i), d.At(i))
	}
}

// TestMasks exercises the method and package-function forms.
func TestMasks(t *testing.T) {
	a := array.FromSlice([]float64{1, 2, 3})
	b := array.FromSlice([]float64{3, 2, 1})

	assert.Equal(t, []float64{0, 1, 0}, a.Eq(2).Data())
	assert.Equal(t, []float64{1, 0, 1}, a.Ne(2).Data())
	assert.Equal(t, []float64{0, 1, 0}, a.Equal(b).Data())
	assert.Equal(t, []float64{1, 0, 1}, a.NotEqual(b).Data())
	assert.Equal(t, []float64{0, 0, 1}, array.Gt(a, 2).Data())
	assert.Equal(t, []float64{1, 0, 0}, array.Lt(a, 2).Data())
	assert.Equal(t, []float64{0, 1, 1}, array.Ge(a, 2).Data())
	assert.Equal(t, []float64{1, 1, 0}, array.Le(a, 2).Data())
	assert.Equal(t, []float64{1, 0, 0}, array.LessThan(a, b).Data())
	assert.Equal(t, []float64{0, 0, 1}, array.GreaterThan(a, b).Data())
	assert.Equal(t, []float64{0, 1, 0}, array.FromSlice([]float64{1, math.NaN(), 2}).IsNaN().Data())
}

// TestSortContracts pins Sort (in place + permutation) vs ArgSort (pure).
func TestSortContracts(t *testing.T) {
	orig := []float64{3, 1, 4, 1, 5}
	a := array.FromSlice(append([]float64(nil), orig...))

	ix := array.ArgSort(a, false)
	assert.Equal(t, orig, a.Data(), "ArgSort must not mutate")

	sorted := a.Select(ix)
	for i := 1; i < sorted.Len(); i++ {
		assert.LessOrEqual(t, sorted.At(i-1), sorted.At(i))
	}

	back := array.Zeros[float64](a.Len())
	back.SetSlice(ix, sorted)
	assert.Equal(t, orig, back.Data(), "scatter through the permutation restores the input")

	perm := array.Sort(a, false)
	assert.Equal(t, ix, perm)
	assert.Equal(t, sorted.Data(), a.Data())
	for i, p := range perm {
		assert.Equal(t, orig[p], a.At(i))
	}

	array.Sort(a, true)
	assert.Equal(t, []float64{5, 4, 3, 1, 1}, a.Data())
}

func TestSelectSetAll(t *testing.T) {
	a := array.Range[float64](5)
	a.SetAll([]int{0, 4}, -1)
	assert.Equal(t, []float64{-1, 1, 2, 3, -1}, a.Data())
	assert.Equal(t, []float64{3, -1}, a.Select([]int{3, 0}).Data())
	requirePanicsIs(t, array.ErrOutOfRange, func() { a.Select([]int{5}) })
	requirePanicsIs(t, array.ErrLengthMismatch, func() { a.SetSlice([]int{0}, array.Ones[float64](2)) })
}

func TestAllClose(t *testing.T) {
	a := array.FromSlice([]float64{1, 2})
	assert.True(t, a.AllClose(a.AddScalar(1e-12), 0, 1e-9))
	assert.False(t, a.AllClose(a.AddScalar(1e-3), 0, 1e-9))
}
