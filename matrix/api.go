// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication: each facade delegates to the canonical implementation.
//   - Keep function names explicit and intention-revealing to improve discoverability.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.

package matrix

import (
	"github.com/katalvlaran/lvnum/array"
	"github.com/katalvlaran/lvnum/numeric"
)

// ---------- Constructors & Utilities ----------

// NewZeros returns a new zero-initialized rows×cols matrix.
// Thin alias of Zeros with an intention-revealing name.
func NewZeros[T numeric.Number](rows, cols int, opts ...Option) *Matrix[T] {
	return Zeros[T](rows, cols, opts...)
}

// NewIdentity returns I_n (ones on the diagonal, zeros elsewhere).
//
// AI-Hints: Use as a neutral element for MatMat / MatVec.
func NewIdentity[T numeric.Number](n int, opts ...Option) *Matrix[T] {
	return Identity[T](n, opts...)
}

// CloneMatrix returns a deep copy of m (same shape & order).
func CloneMatrix[T numeric.Number](m *Matrix[T]) *Matrix[T] { return m.Clone() }

// ZerosLike returns a new zero matrix with the same shape and order as m.
//
// AI-Hints: Useful for staging buffers or accumulating into fresh containers.
func ZerosLike[T numeric.Number](m *Matrix[T]) *Matrix[T] { return like(m) }

// IdentityLike returns I with dimension = m.Rows() in m's order; requires square shape.
// Panics with ErrNonSquare.
func IdentityLike[T numeric.Number](m *Matrix[T]) *Matrix[T] {
	if err := ValidateSquare(m); err != nil {
		panic(matrixErrorf("IdentityLike", err))
	}

	return Identity[T](m.rows, WithOrder(m.order))
}

// ---------- Linear Algebra (facades map 1:1 to kernels) ----------

// Product is an alias for a.MatMat(b).
// Complexity: O(r*k*c).
func Product[T numeric.Number](a, b *Matrix[T]) *Matrix[T] { return a.MatMat(b) }

// HadamardProd is an alias for a.Mul(b) (elementwise product).
func HadamardProd[T numeric.Number](a, b *Matrix[T]) *Matrix[T] { return a.Mul(b) }

// T is an alias for m.Transpose().
func T[E numeric.Number](m *Matrix[E]) *Matrix[E] { return m.Transpose() }

// ScaleBy returns alpha*m.
func ScaleBy[T numeric.Number](m *Matrix[T], alpha T) *Matrix[T] { return m.MulScalar(alpha) }

// MatVecMul is an alias for m.MatVec(x).
func MatVecMul[T numeric.Number](m *Matrix[T], x *array.Array[T]) *array.Array[T] {
	return m.MatVec(x)
}
