// SPDX-License-Identifier: MIT

package seq_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvnum/seq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectScatter(t *testing.T) {
	a := []float64{10, 20, 30, 40}
	assert.Equal(t, []float64{40, 10, 10}, seq.Select(a, []int{3, 0, 0}))
	assert.Equal(t, []float64{}, seq.Select(a, nil))

	seq.SetSlice(a, []int{1, 3}, []float64{-1, -3})
	assert.Equal(t, []float64{10, -1, 30, -3}, a)

	seq.SetAll(a, []int{0, 2}, 0)
	assert.Equal(t, []float64{0, -1, 0, -3}, a)

	requirePanicsIs(t, seq.ErrOutOfRange, func() { seq.Select(a, []int{4}) })
	requirePanicsIs(t, seq.ErrOutOfRange, func() { seq.SetAll(a, []int{-1}, 1) })
	requirePanicsIs(t, seq.ErrLengthMismatch, func() { seq.SetSlice(a, []int{0}, []float64{1, 2}) })

	before := append([]float64(nil), a...)
	requirePanicsIs(t, seq.ErrOutOfRange, func() { seq.SetSlice(a, []int{0, 9}, []float64{7, 7}) })
	assert.Equal(t, before, a, "failed scatter must not write")
}

// TestConcat: lengths add up and offsets hold the originals.
func TestConcat(t *testing.T) {
	a1, a2, a3 := []float64{1, 2}, []float64{}, []float64{3, 4, 5}
	c := seq.Concat(a1, a2, a3)
	require.Len(t, c, len(a1)+len(a2)+len(a3))
	assert.Equal(t, a1, c[:2])
	assert.Equal(t, a3, c[2:])
	assert.Empty(t, seq.Concat[float64]())
}

// TestArgSortRoundTrip: Select by ArgSort is sorted; scattering back restores.
func TestArgSortRoundTrip(t *testing.T) {
	a := []float64{3, 1, 4, 1, 5, 9, 2, 6}
	orig := append([]float64(nil), a...)

	ix := seq.ArgSort(a, false)
	assert.Equal(t, orig, a, "ArgSort must not mutate")
	assert.Equal(t, []int{1, 3, 6, 0, 2, 4, 7, 5}, ix, "stable on ties")

	sorted := seq.Select(a, ix)
	for i := 1; i < len(sorted); i++ {
		assert.LessOrEqual(t, sorted[i-1], sorted[i])
	}

	restored := make([]float64, len(a))
	seq.SetSlice(restored, ix, sorted)
	assert.Equal(t, orig, restored)
}

func TestArgSortReverse(t *testing.T) {
	a := []float64{2, 1, 2, 3}
	// ascending stable is [1 0 2 3]; reversed wholesale.
	assert.Equal(t, []int{3, 2, 0, 1}, seq.ArgSort(a, true))
}

func TestArgSortNaN(t *testing.T) {
	a := []float64{1, math.NaN(), 0}
	assert.Equal(t, []int{1, 2, 0}, seq.ArgSort(a, false))
}

// TestSortInPlace reorders and reports the applied permutation.
func TestSortInPlace(t *testing.T) {
	a := []float32{3, 1, 2}
	orig := append([]float32(nil), a...)
	perm := seq.Sort(a, false)
	assert.Equal(t, []float32{1, 2, 3}, a)
	for i, p := range perm {
		assert.Equal(t, orig[p], a[i])
	}

	seq.Sort(a, true)
	assert.Equal(t, []float32{3, 2, 1}, a)
}

func TestAllClose(t *testing.T) {
	assert.True(t, seq.AllClose([]float64{1, 2}, []float64{1, 2 + 1e-10}, 0, 1e-9))
	assert.False(t, seq.AllClose([]float64{1, 2}, []float64{1, 2.1}, 0, 1e-9))
	assert.True(t, seq.AllClose([]float64{100}, []float64{101}, 0.01, 0))
	assert.False(t, seq.AllClose([]float64{1}, []float64{1, 2}, 1, 1))
	assert.True(t, seq.AllClose([]float64{math.Inf(1)}, []float64{math.Inf(1)}, 0, 0))
	assert.False(t, seq.AllClose([]float64{math.NaN()}, []float64{math.NaN()}, 1, 1))
	assert.False(t, seq.AllClose([]float64{1}, []float64{math.Inf(1)}, 1e-5, 0))
	assert.False(t, seq.AllClose([]float64{math.Inf(1)}, []float64{math.Inf(-1)}, 1e-5, 0))
	assert.False(t, seq.AllClose([]float64{-5}, []float64{math.Inf(1)}, 1e-9, 1e-9))
	assert.False(t, seq.AllClose([]complex128{complex(1, 0)}, []complex128{complex(1, math.Inf(1))}, 1, 1))
	assert.True(t, seq.AllClose([]complex128{1 + 1i}, []complex128{1 + 1.0000001i}, 0, 1e-6))
}
