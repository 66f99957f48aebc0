// SPDX-License-Identifier: MIT

package array_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvnum/array"
	"github.com/stretchr/testify/assert"
)

// TestElementMaps compares each map against package math.
func TestElementMaps(t *testing.T) {
	src := []float64{0.1, 0.5, 0.9}
	a := array.FromSlice(src)
	cases := []struct {
		name string
		got  *array.Array[float64]
		f    func(float64) float64
	}{
		{"Ln", a.Ln(), math.Log},
		{"Exp", a.Exp(), math.Exp},
		{"Sqrt", a.Sqrt(), math.Sqrt},
		{"Sin", a.Sin(), math.Sin},
		{"Cos", a.Cos(), math.Cos},
		{"Asin", a.Asin(), math.Asin},
		{"Acos", a.Acos(), math.Acos},
		{"Abs", a.Neg().Abs(), math.Abs},
		{"Pow", a.Pow(3), func(x float64) float64 { return math.Pow(x, 3) }},
		{"PowInt", a.PowInt(2), func(x float64) float64 { return x * x }},
		{"Map", a.Map(func(x float64) float64 { return 2 * x }), func(x float64) float64 { return 2 * x }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for i, x := range src {
				assert.InDelta(t, tc.f(x), tc.got.At(i), 1e-12)
			}
		})
	}
	assert.Equal(t, []float64{0.1, 0.5, 0.9}, a.Data(), "maps must not mutate")
}

func TestRounding(t *testing.T) {
	a := array.FromSlice([]float64{1.25, -2.5, 3.49})
	assert.Equal(t, []float64{1, -3, 3}, a.Round().Data())
	assert.InDeltaSlice(t, []float64{1.3, -2.5, 3.5}, a.RoundTo(1).Data(), 1e-12)

	assert.Same(t, a, a.RoundInPlace())
	assert.Equal(t, []float64{1, -3, 3}, a.Data())
}

func TestApply(t *testing.T) {
	a := array.Range[float32](3)
	a.Apply(func(x float32) float32 { return x + 1 })
	assert.Equal(t, []float32{1, 2, 3}, a.Data())
}
