// Package lvnum is a generic numeric toolkit: one-dimensional arrays and
// dense matrices over real and complex element types.
//
// 🚀 What is lvnum?
//
//	A small, allocation-explicit library that brings together:
//		• Element traits: identities, conversions, transcendental functions
//		  for float32, float64, complex64 and complex128
//		• Dense storage: row-major and column-major addressing with one formula
//		• Sequence algorithms: reductions, statistics, masks, sorting with
//		  permutation tracking
//		• Array[T]: arithmetic with scalars on either side, complex
//		  decomposition, random construction
//		• Matrix[T]: coordinate access, lazy row/column iteration,
//		  MatVec / MatMat across storage orders, column statistics
//
// ✨ Why choose lvnum?
//
//   - One code path for real and complex values
//   - Storage order is explicit and never flips behind your back
//   - Contract violations panic with errors you can match via errors.Is
//   - Pure Go; gonum supplies random distributions and test oracles
//
// Under the hood, everything is organized under five subpackages:
//
//	numeric/: element-type constraints and scalar capabilities
//	dense/  : flat-buffer indexing, formatting and product kernels
//	seq/    : slice-level algorithms shared by the containers
//	array/  : the Array[T] container
//	matrix/ : the Matrix[T] container
//
// Quick example:
//
//	m := matrix.Identity[float64](3).MulScalarInPlace(2)
//	y := m.MatVec(array.Ones[float64](3)) // 2 2 2
//
// The lvnum command (cmd/lvnum) exposes a few of these operations on the
// command line.
package lvnum
