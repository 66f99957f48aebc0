// Package array provides Array[T], an owned one-dimensional numeric buffer.
//
// 🚀 What is array?
//
//	A thin, explicit container over a contiguous []T. It bundles the seq
//	algorithms as methods, adds element maps, arithmetic with scalars and
//	other arrays, and complex decomposition.
//
// ✨ Key features:
//   - Element types: float32, float64, complex64, complex128.
//   - Explicit buffer access: Data (read view) and MutData (write view); the
//     container never pretends to be its buffer.
//   - Arithmetic per operator and operand kind:
//     a.Add(b), a.AddScalar(s), ScalarAdd(s, a), a.AddInPlace(b),
//     a.AddScalarInPlace(s) (likewise Sub, Mul, Div) plus Neg/NegInPlace.
//   - Ordered operations (Max, Min, ArgMax, ArgMin, Gt..Le, LessThan,
//     GreaterThan, Sort, ArgSort) are package functions: they need a real
//     element type and Go methods cannot tighten a constraint.
//   - Complex: FromParts, FromPolar, FromInterleaved build; Real, Imag, Norm,
//     Arg, ToPolar, Interleave decompose. Every result is a fresh allocation.
//   - Random fill (Rand, RandN) through gonum distuv with an injectable
//     math/rand/v2 source (WithSource).
//
// ⚙️ Usage:
//
//	a := array.FromSlice([]float64{3, 1, 2})
//	perm := array.Sort(a, false) // a == [1 2 3], perm == [1 2 0]
//	b := a.MulScalar(2).Add(array.Ones[float64](3))
//	fmt.Println(b) // 3 5 7
//
// Errors: shape and index contract violations panic with an error wrapping
// ErrLengthMismatch, ErrOutOfRange, ErrEmpty (see errors.go).
package array
