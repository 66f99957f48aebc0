// Package numeric defines the element-type contracts shared by lvnum containers.
//
// 🚀 What is numeric?
//
//	A small set of generic constraints and capability functions that let the
//	same reduction code run over real (float32, float64) and complex
//	(complex64, complex128) elements without duplicating loops.
//
// ✨ Capability groups (request only what you need):
//   - Identity:       Zero, One, IsZero, FromInt, FromFloat64,
//     FromComplex128, ToComplex128
//   - Ordering:       Ordered, MinValue, MaxValue (real types only)
//   - Transcendental: Ln, Exp, Sin, Cos, Asin, Acos, Sqrt, Abs, Round,
//     RoundTo, Pow, PowInt, IsNaN, Norm
//   - Complex:        Cmplx, FromPolar, Re, Im, Conj, Magnitude, Arg
//
// Every transcendental function dispatches once per call to math (real
// element) or math/cmplx (complex element). The type sets are exact (no ~),
// so the dispatch is total: a named type such as `type Celsius float64` must
// be converted before use.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvnum/numeric"
//
//	z := numeric.Cmplx[complex128](3.0, 4.0)
//	r := numeric.Magnitude[float64](z) // 5
//	s := numeric.Sqrt(2.0)             // 1.4142...
//
// Concurrency: all functions are pure and safe for concurrent use.
package numeric
