// SPDX-License-Identifier: MIT

// Package numeric: element-type constraints.
// Each constraint is an exact type set so that value-level dispatch between
// the real and the complex family never falls through.
package numeric

// Real is the set of real floating-point element types.
type Real interface {
	float32 | float64
}

// Complex is the set of complex element types.
type Complex interface {
	complex64 | complex128
}

// Number is any element type an lvnum container can hold.
// Arithmetic (+, -, *, /), equality and the identity capability are
// available for every Number.
type Number interface {
	Real | Complex
}

// Ordered is the ordering capability: element types supporting <, <=, >, >=
// and a defined minimum/maximum representable value.
// Complex numbers are deliberately excluded.
type Ordered interface {
	Real
}
