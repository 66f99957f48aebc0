// SPDX-License-Identifier: MIT

package array_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvnum/array"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/cmplxs"
)

// TestFromPartsScenario: real/imag/norm of [1+2i, 2+3i].
func TestFromPartsScenario(t *testing.T) {
	re := array.FromSlice([]float64{1, 2})
	im := array.FromSlice([]float64{2, 3})
	z := array.FromParts[complex128](re, im)

	assert.Equal(t, []complex128{1 + 2i, 2 + 3i}, z.Data())
	assert.Equal(t, []float64{1, 2}, array.Real[float64](z).Data())
	assert.Equal(t, []float64{2, 3}, array.Imag[float64](z).Data())
	assert.InDelta(t, math.Sqrt(5), array.Norm[float64](z).At(0), 1e-15)

	want := make([]float64, z.Len())
	cmplxs.Abs(want, z.Data())
	assert.InDeltaSlice(t, want, array.Norm[float64](z).Data(), 1e-15)

	requirePanicsIs(t, array.ErrLengthMismatch, func() {
		array.FromParts[complex128](re, array.Ones[float64](3))
	})
}

// TestDecompositionIsCopy: results never alias the source.
func TestDecompositionIsCopy(t *testing.T) {
	z := array.FromSlice([]complex64{1 + 1i})
	r := array.Real[float32](z)
	r.Set(0, 42)
	assert.Equal(t, complex64(1+1i), z.At(0))
}

func TestPolarRoundTrip(t *testing.T) {
	z := array.FromSlice([]complex128{3 + 4i, -1, 2i})
	r, theta := array.ToPolar[float64](z)
	assert.InDeltaSlice(t, []float64{5, 1, 2}, r.Data(), 1e-12)
	assert.InDeltaSlice(t, []float64{math.Atan2(4, 3), math.Pi, math.Pi / 2}, theta.Data(), 1e-12)
	assert.InDeltaSlice(t, theta.Data(), array.Arg[float64](z).Data(), 0)

	back := array.FromPolar[complex128](r, theta)
	assert.True(t, back.AllClose(z, 0, 1e-12))
	requirePanicsIs(t, array.ErrLengthMismatch, func() {
		array.FromPolar[complex128](r, array.Ones[float64](1))
	})
}

func TestInterleave(t *testing.T) {
	flat := array.FromSlice([]float64{1, 2, 3, 4})
	z := array.FromInterleaved[complex128](flat)
	require.Equal(t, []complex128{1 + 2i, 3 + 4i}, z.Data())
	assert.Equal(t, flat.Data(), array.Interleave[float64](z).Data())
	requirePanicsIs(t, array.ErrOddLength, func() {
		array.FromInterleaved[complex128](array.Ones[float64](3))
	})
}

func TestFromRealImagConj(t *testing.T) {
	x := array.FromSlice([]float64{1, -2})
	assert.Equal(t, []complex128{1, -2}, array.FromReal[complex128](x).Data())
	assert.Equal(t, []complex128{1i, -2i}, array.FromImag[complex128](x).Data())

	z := array.FromSlice([]complex128{1 + 2i})
	assert.Equal(t, []complex128{1 - 2i}, z.Conj().Data())
	assert.Equal(t, []float64{1, -2}, x.Conj().Data())
}

// TestComplexMagnitudeReductions: norms are computed on moduli.
func TestComplexMagnitudeReductions(t *testing.T) {
	z := array.FromSlice([]complex128{3 + 4i, 0})
	assert.Equal(t, 5.0, z.NormInf())
	assert.Equal(t, 5.0, z.Norm2())
	assert.Equal(t, []complex128{5, 0}, z.Abs().Data())
}
