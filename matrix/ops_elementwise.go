// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Elementwise arithmetic (matrix⊕matrix, matrix⊕scalar, scalar⊕matrix)
//     in allocating and in-place forms.
//   - Small private broadcast kernels (ew*) reused by the statistics layer.
//   - Sanitizers: Clip, ReplaceInfNaN; comparison: AllClose.
//
// Determinism & Performance:
//   - Fixed loop orders (flat 0..n-1 when both operands share an order,
//     i→j through dense.Index otherwise).
//   - Allocating forms return a result in the receiver's order.
//
// AI-Hints:
//   - Keep operands in the same order to stay on the flat fast path.
//   - In-place forms return the receiver so calls chain.

package matrix

import (
	"math"

	"github.com/katalvlaran/lvnum/numeric"
)

const (
	opAdd           = "Matrix.Add"
	opSub           = "Matrix.Sub"
	opMul           = "Matrix.Mul"
	opDiv           = "Matrix.Div"
	opClip          = "Clip"
	opReplaceInfNaN = "ReplaceInfNaN"
	opAllClose      = "Matrix.AllClose"
	opBroadcast     = "broadcast"
)

func add[T numeric.Number](x, y T) T { return x + y }
func sub[T numeric.Number](x, y T) T { return x - y }
func mul[T numeric.Number](x, y T) T { return x * y }
func div[T numeric.Number](x, y T) T { return x / y }

// ewZip computes out[i,j] = f(a[i,j], b[i,j]) into a new matrix in a's order.
// Panics with ErrDimensionMismatch when shapes differ.
func ewZip[T numeric.Number](op string, a, b *Matrix[T], f func(x, y T) T) *Matrix[T] {
	if err := ValidateSameShape(a, b); err != nil {
		panic(matrixErrorf(op, err))
	}
	out := like(a)
	ewZipInto(out.data, a, b, f)

	return out
}

// ewZipInto writes f(a[i,j], b[i,j]) into dst, laid out in a's order.
// dst may alias a.data.
func ewZipInto[T numeric.Number](dst []T, a, b *Matrix[T], f func(x, y T) T) {
	if a.order == b.order {
		for idx, v := range a.data {
			dst[idx] = f(v, b.data[idx])
		}

		return
	}
	for i := 0; i < a.rows; i++ {
		for j := 0; j < a.cols; j++ {
			k := a.index(i, j)
			dst[k] = f(a.data[k], b.data[b.index(i, j)])
		}
	}
}

// ewScalar computes f(m[i,j], s) (right) or f(s, m[i,j]) (left) into dst.
func ewScalar[T numeric.Number](dst, src []T, s T, left bool, f func(x, y T) T) {
	if left {
		for idx, v := range src {
			dst[idx] = f(s, v)
		}

		return
	}
	for idx, v := range src {
		dst[idx] = f(v, s)
	}
}

// scalarOp allocates a same-shape, same-order result of the scalar form.
func scalarOp[T numeric.Number](m *Matrix[T], s T, left bool, f func(x, y T) T) *Matrix[T] {
	out := like(m)
	ewScalar(out.data, m.data, s, left, f)

	return out
}

// ---------- matrix ⊕ matrix ----------

// Add returns m + b elementwise. Panics with ErrDimensionMismatch on shape mismatch.
func (m *Matrix[T]) Add(b *Matrix[T]) *Matrix[T] { return ewZip(opAdd, m, b, add[T]) }

// Sub returns m - b elementwise.
func (m *Matrix[T]) Sub(b *Matrix[T]) *Matrix[T] { return ewZip(opSub, m, b, sub[T]) }

// Mul returns the elementwise (Hadamard) product m ∘ b. See MatMat for the
// matrix product.
func (m *Matrix[T]) Mul(b *Matrix[T]) *Matrix[T] { return ewZip(opMul, m, b, mul[T]) }

// Div returns m / b elementwise. Division by zero follows IEEE-754.
func (m *Matrix[T]) Div(b *Matrix[T]) *Matrix[T] { return ewZip(opDiv, m, b, div[T]) }

// ---------- matrix ⊕ scalar ----------

// AddScalar returns m + s.
func (m *Matrix[T]) AddScalar(s T) *Matrix[T] { return scalarOp(m, s, false, add[T]) }

// SubScalar returns m - s.
func (m *Matrix[T]) SubScalar(s T) *Matrix[T] { return scalarOp(m, s, false, sub[T]) }

// MulScalar returns m * s.
func (m *Matrix[T]) MulScalar(s T) *Matrix[T] { return scalarOp(m, s, false, mul[T]) }

// DivScalar returns m / s.
func (m *Matrix[T]) DivScalar(s T) *Matrix[T] { return scalarOp(m, s, false, div[T]) }

// ---------- scalar ⊕ matrix ----------

// ScalarAdd returns s + m.
func ScalarAdd[T numeric.Number](s T, m *Matrix[T]) *Matrix[T] { return scalarOp(m, s, true, add[T]) }

// ScalarSub returns s - m elementwise.
func ScalarSub[T numeric.Number](s T, m *Matrix[T]) *Matrix[T] { return scalarOp(m, s, true, sub[T]) }

// ScalarMul returns s * m.
func ScalarMul[T numeric.Number](s T, m *Matrix[T]) *Matrix[T] { return scalarOp(m, s, true, mul[T]) }

// ScalarDiv returns s / m elementwise.
func ScalarDiv[T numeric.Number](s T, m *Matrix[T]) *Matrix[T] { return scalarOp(m, s, true, div[T]) }

// ---------- in place ----------

// AddInPlace sets m = m + b and returns m.
func (m *Matrix[T]) AddInPlace(b *Matrix[T]) *Matrix[T] { return m.zipInPlace(opAdd, b, add[T]) }

// SubInPlace sets m = m - b and returns m.
func (m *Matrix[T]) SubInPlace(b *Matrix[T]) *Matrix[T] { return m.zipInPlace(opSub, b, sub[T]) }

// MulInPlace sets m = m ∘ b and returns m.
func (m *Matrix[T]) MulInPlace(b *Matrix[T]) *Matrix[T] { return m.zipInPlace(opMul, b, mul[T]) }

// DivInPlace sets m = m / b and returns m.
func (m *Matrix[T]) DivInPlace(b *Matrix[T]) *Matrix[T] { return m.zipInPlace(opDiv, b, div[T]) }

func (m *Matrix[T]) zipInPlace(op string, b *Matrix[T], f func(x, y T) T) *Matrix[T] {
	if err := ValidateSameShape(m, b); err != nil {
		panic(matrixErrorf(op, err))
	}
	ewZipInto(m.data, m, b, f)

	return m
}

// AddScalarInPlace sets m = m + s and returns m.
func (m *Matrix[T]) AddScalarInPlace(s T) *Matrix[T] {
	ewScalar(m.data, m.data, s, false, add[T])

	return m
}

// SubScalarInPlace sets m = m - s and returns m.
func (m *Matrix[T]) SubScalarInPlace(s T) *Matrix[T] {
	ewScalar(m.data, m.data, s, false, sub[T])

	return m
}

// MulScalarInPlace sets m = m * s and returns m.
func (m *Matrix[T]) MulScalarInPlace(s T) *Matrix[T] {
	ewScalar(m.data, m.data, s, false, mul[T])

	return m
}

// DivScalarInPlace sets m = m / s and returns m.
func (m *Matrix[T]) DivScalarInPlace(s T) *Matrix[T] {
	ewScalar(m.data, m.data, s, false, div[T])

	return m
}

// Neg returns -m.
func (m *Matrix[T]) Neg() *Matrix[T] {
	out := like(m)
	for idx, v := range m.data {
		out.data[idx] = -v
	}

	return out
}

// NegInPlace negates m and returns it.
func (m *Matrix[T]) NegInPlace() *Matrix[T] {
	for idx, v := range m.data {
		m.data[idx] = -v
	}

	return m
}

// ---------- broadcast micro-kernels ----------

// ewBroadcastSubCols computes out[i,j] = X[i,j] - colv[j].
// Time: O(r*c). Space: O(r*c).
//
// AI-Hint: Use for column-centering and z-scoring.
func ewBroadcastSubCols[T numeric.Number](x *Matrix[T], colv []T) *Matrix[T] {
	if len(colv) != x.cols {
		panic(matrixErrorf(opBroadcast, ErrDimensionMismatch))
	}

	return ewBroadcast(x, func(i, j int, v T) T { return v - colv[j] })
}

// ewBroadcastSubRows computes out[i,j] = X[i,j] - rowv[i].
func ewBroadcastSubRows[T numeric.Number](x *Matrix[T], rowv []T) *Matrix[T] {
	if len(rowv) != x.rows {
		panic(matrixErrorf(opBroadcast, ErrDimensionMismatch))
	}

	return ewBroadcast(x, func(i, j int, v T) T { return v - rowv[i] })
}

// ewScaleCols computes out[i,j] = X[i,j] * scale[j].
func ewScaleCols[T numeric.Number](x *Matrix[T], scale []T) *Matrix[T] {
	if len(scale) != x.cols {
		panic(matrixErrorf(opBroadcast, ErrDimensionMismatch))
	}

	return ewBroadcast(x, func(i, j int, v T) T { return v * scale[j] })
}

// ewScaleRows computes out[i,j] = X[i,j] * scale[i].
func ewScaleRows[T numeric.Number](x *Matrix[T], scale []T) *Matrix[T] {
	if len(scale) != x.rows {
		panic(matrixErrorf(opBroadcast, ErrDimensionMismatch))
	}

	return ewBroadcast(x, func(i, j int, v T) T { return v * scale[i] })
}

// ewBroadcast maps f over x by coordinate into a new same-order matrix.
func ewBroadcast[T numeric.Number](x *Matrix[T], f func(i, j int, v T) T) *Matrix[T] {
	out := like(x)
	for i := 0; i < x.rows; i++ {
		for j := 0; j < x.cols; j++ {
			k := x.index(i, j)
			out.data[k] = f(i, j, x.data[k])
		}
	}

	return out
}

// ---------- sanitizers ----------

// Clip copies m clamping each entry into [lo, hi].
// If lo > hi the bounds are swapped.
//
// Errors (panic):
//   - ErrNaNInf when a bound is NaN or ±Inf.
//
// Complexity: O(r*c).
func Clip[T numeric.Ordered](m *Matrix[T], lo, hi T) *Matrix[T] {
	if !isFinite(float64(lo)) || !isFinite(float64(hi)) {
		panic(matrixErrorf(opClip, ErrNaNInf))
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	out := like(m)
	for idx, v := range m.data {
		if v < lo {
			v = lo
		} else if v > hi {
			v = hi
		}
		out.data[idx] = v
	}

	return out
}

// ReplaceInfNaN copies m replacing every NaN or ±Inf entry with val.
// A complex entry is replaced when either part is non-finite.
//
// Errors (panic):
//   - ErrNaNInf when val itself is not finite.
//
// Complexity: O(r*c).
func ReplaceInfNaN[T numeric.Number](m *Matrix[T], val T) *Matrix[T] {
	if !finite(val) {
		panic(matrixErrorf(opReplaceInfNaN, ErrNaNInf))
	}
	out := like(m)
	for idx, v := range m.data {
		if !finite(v) {
			v = val
		}
		out.data[idx] = v
	}

	return out
}

// AllClose reports whether |m[i,j]-b[i,j]| <= atol + rtol*|b[i,j]| for
// every coordinate. Shapes must match (false otherwise); orders may differ.
// An infinity is close only to the same infinity.
// Negative tolerances are taken by absolute value.
//
// Errors (panic):
//   - ErrNaNInf when a tolerance is NaN or ±Inf.
//
// Complexity: O(r*c).
func (m *Matrix[T]) AllClose(b *Matrix[T], rtol, atol float64) bool {
	if err := validateTolerance(rtol, atol); err != nil {
		panic(matrixErrorf(opAllClose, err))
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if ValidateSameShape(m, b) != nil {
		return false
	}
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			x, y := m.data[m.index(i, j)], b.data[b.index(i, j)]
			if x == y {
				continue
			}
			if !finite(x) || !finite(y) {
				return false
			}
			if !(numeric.Norm(x-y) <= atol+rtol*numeric.Norm(y)) {
				return false
			}
		}
	}

	return true
}

// isFinite reports whether x is neither NaN nor ±Inf.
func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// finite reports whether every part of v is finite.
func finite[T numeric.Number](v T) bool { return numeric.IsFinite(v) }
