// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Reductions along rows and columns (sums, means).
//   - Common statistical transforms (centering, normalization, covariance,
//     correlation) as deterministic compositions over MatMat/Transpose and
//     the ew* micro-kernels.
//
// Exposed API:
//   - m.Sum(), m.RowSums(), m.ColSums(), m.RowMeans(), m.ColMeans()
//   - CenterColumns(X)   -> (Xc, means)         // subtract per-column mean
//   - CenterRows(X)      -> (Xc, means)         // subtract per-row mean
//   - NormalizeRowsL1(X) -> (Y, norms)          // L1 row normalization (degenerate rows unchanged)
//   - NormalizeRowsL2(X) -> (Y, norms)          // L2 row normalization (degenerate rows unchanged)
//   - Covariance(X)      -> (Cov, means)        // sample covariance of columns: (Xcᵀ Xc)/(r-1)
//   - Correlation(X)     -> (Corr, means, stds) // Pearson corr via z-scoring; std=0 → zeroed column
//
// Determinism & Performance:
//   - Fixed i→j traversal for all explicit loops.
//   - Zero-size matrices (0×N or N×0) yield zero-size results, never a panic,
//     except where a statistic needs observations (Covariance, Correlation).

package matrix

import (
	"math"

	"github.com/katalvlaran/lvnum/array"
	"github.com/katalvlaran/lvnum/numeric"
	"github.com/katalvlaran/lvnum/seq"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opRowMeans    = "Matrix.RowMeans"
	opColMeans    = "Matrix.ColMeans"
	opCovariance  = "Covariance"
	opCorrelation = "Correlation"
)

// Sum returns the sum of all elements (0 for an empty matrix).
func (m *Matrix[T]) Sum() T { return seq.Sum(m.data) }

// RowSums returns the per-row sums as an array of length Rows().
// Complexity: O(r*c).
func (m *Matrix[T]) RowSums() *array.Array[T] {
	out := make([]T, m.rows)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			out[i] += m.data[m.index(i, j)]
		}
	}

	return array.FromSlice(out)
}

// ColSums returns the per-column sums as an array of length Cols().
// Complexity: O(r*c).
func (m *Matrix[T]) ColSums() *array.Array[T] {
	out := make([]T, m.cols)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			out[j] += m.data[m.index(i, j)]
		}
	}

	return array.FromSlice(out)
}

// RowMeans returns the per-row means. Panics with ErrBadShape when Cols() == 0
// and Rows() > 0.
func (m *Matrix[T]) RowMeans() *array.Array[T] {
	if m.cols == 0 && m.rows > 0 {
		panic(matrixErrorf(opRowMeans, ErrBadShape))
	}

	return m.RowSums().DivScalarInPlace(numeric.FromInt[T](max(m.cols, 1)))
}

// ColMeans returns the per-column means. Panics with ErrBadShape when
// Rows() == 0 and Cols() > 0.
func (m *Matrix[T]) ColMeans() *array.Array[T] {
	if m.rows == 0 && m.cols > 0 {
		panic(matrixErrorf(opColMeans, ErrBadShape))
	}

	return m.ColSums().DivScalarInPlace(numeric.FromInt[T](max(m.rows, 1)))
}

// CenterColumns subtracts the per-column mean from every element.
// Implementation:
//   - Stage 1: zero-size input is returned as a copy with zero means.
//   - Stage 2: column means in one deterministic pass.
//   - Stage 3: ewBroadcastSubCols produces the centered copy.
//
// Returns:
//   - centered copy (same shape & order) and the column means (len = Cols()).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func CenterColumns[T numeric.Number](x *Matrix[T]) (*Matrix[T], []T) {
	if x.rows == 0 || x.cols == 0 {
		return x.Clone(), make([]T, x.cols)
	}
	means := x.ColMeans().MutData()

	return ewBroadcastSubCols(x, means), means
}

// CenterRows subtracts the per-row mean from every element.
// Same structure as CenterColumns; means has length Rows().
func CenterRows[T numeric.Number](x *Matrix[T]) (*Matrix[T], []T) {
	if x.rows == 0 || x.cols == 0 {
		return x.Clone(), make([]T, x.rows)
	}
	means := x.RowMeans().MutData()

	return ewBroadcastSubRows(x, means), means
}

// NormalizeRowsL1 scales each row to unit L1 norm (Σ|x_ij| == 1).
// Rows whose norm is zero are left unchanged. Returns the original norms.
// Complexity: O(r*c).
func NormalizeRowsL1[T numeric.Number](x *Matrix[T]) (*Matrix[T], []float64) {
	return normalizeRows(x, func(v T) float64 { return numeric.Norm(v) }, nil)
}

// NormalizeRowsL2 scales each row to unit L2 norm (sqrt(Σ|x_ij|²) == 1).
// Rows whose norm is zero are left unchanged. Returns the original norms.
//
// AI-Hints:
//   - Typical before cosine-similarity pipelines.
func NormalizeRowsL2[T numeric.Number](x *Matrix[T]) (*Matrix[T], []float64) {
	return normalizeRows(x, func(v T) float64 {
		a := numeric.Norm(v)

		return a * a
	}, math.Sqrt)
}

// normalizeRows accumulates term(v) per row, finishes with fin (if any), and
// scales every non-degenerate row by 1/norm.
func normalizeRows[T numeric.Number](x *Matrix[T], term func(T) float64, fin func(float64) float64) (*Matrix[T], []float64) {
	norms := make([]float64, x.rows)
	if x.rows == 0 || x.cols == 0 {
		return x.Clone(), norms
	}
	scale := make([]T, x.rows)
	for i := 0; i < x.rows; i++ {
		var s float64
		for v := range x.Row(i) {
			s += term(v)
		}
		if fin != nil {
			s = fin(s)
		}
		norms[i] = s
		scale[i] = numeric.One[T]()
		if s > 0 {
			scale[i] = numeric.FromFloat64[T](1 / s)
		}
	}

	return ewScaleRows(x, scale), norms
}

// Covariance returns the sample covariance of the columns of x:
// Cov = (Xcᵀ Xc)/(r-1) where Xc is x with centered columns.
// Implementation:
//   - Stage 1: c == 0 yields a 0×0 matrix; otherwise require r >= 2.
//   - Stage 2: center columns (CenterColumns).
//   - Stage 3: Xcᵀ·Xc via MatMat, scaled by 1/(r-1).
//
// Errors (panic):
//   - ErrTooFewRows when Rows() < 2 and Cols() > 0.
//
// Complexity:
//   - Time O(r*c²), Space O(c²).
func Covariance[T numeric.Ordered](x *Matrix[T]) (*Matrix[T], []T) {
	if x.cols == 0 {
		return Zeros[T](0, 0, WithOrder(x.order)), []T{}
	}
	if x.rows < 2 {
		panic(matrixErrorf(opCovariance, ErrTooFewRows))
	}
	xc, means := CenterColumns(x)
	cov := xc.Transpose().MatMat(xc).DivScalarInPlace(T(x.rows - 1))

	return cov, means
}

// Correlation returns the Pearson correlation of the columns of x via
// z-scoring: Corr = (Zᵀ Z)/(r-1), Z = Xc·diag(1/std).
// Columns with zero standard deviation become zero rows/columns of Corr.
//
// Returns:
//   - Corr (c×c), column means, column sample standard deviations.
//
// Errors (panic):
//   - ErrTooFewRows when Rows() < 2 and Cols() > 0.
//
// Complexity:
//   - Time O(r*c²), Space O(c²).
//
// AI-Hints:
//   - Scale-invariant: Correlation(α*X) == Correlation(X) for α>0.
func Correlation[T numeric.Ordered](x *Matrix[T]) (*Matrix[T], []T, []T) {
	if x.cols == 0 {
		return Zeros[T](0, 0, WithOrder(x.order)), []T{}, []T{}
	}
	if x.rows < 2 {
		panic(matrixErrorf(opCorrelation, ErrTooFewRows))
	}
	xc, means := CenterColumns(x)

	stds := make([]T, x.cols)
	invStd := make([]T, x.cols)
	inv := 1 / float64(x.rows-1)
	for j := 0; j < x.cols; j++ {
		var sumsq float64
		for v := range xc.Col(j) {
			sumsq += float64(v) * float64(v)
		}
		sd := math.Sqrt(sumsq * inv)
		stds[j] = T(sd)
		if sd > 0 {
			invStd[j] = T(1 / sd)
		}
	}

	z := ewScaleCols(xc, invStd)
	corr := z.Transpose().MatMat(z).DivScalarInPlace(T(x.rows - 1))

	return corr, means, stds
}
