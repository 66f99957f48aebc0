// Package seq provides the sequence algorithms behind lvnum containers.
//
// 🚀 What is seq?
//
//	Free functions over plain slices ([]T). Array methods delegate here, so a
//	caller holding a bare slice gets the same reductions, masks and sorts
//	without wrapping it.
//
// ✨ Groups:
//   - Reductions:  Sum, Prod, CumSum, Mean, Var, Std, Norm2, NormInf, Dot,
//     Diff, Max, Min
//   - Search:      Any, All, Find, NonZero, ArgMax, ArgMin, IsNaN
//   - Masks:       Eq, Ne, Gt, Lt, Ge, Le, Equal, NotEqual, LessThan,
//     GreaterThan, And, Or, Not (0/1 values of the element type)
//   - Generation:  Range, Arange, Linspace, Full
//   - Selection:   Select, SetSlice, SetAll, Concat
//   - Ordering:    ArgSort, Sort, AllClose
//
// Inputs are borrowed and never retained; every result is a fresh slice.
// Zero means false and any other value means true, for every element type.
//
// Contract violations (empty input where one element is required, length
// mismatch, zero step, index out of range) panic with an error wrapping
// ErrEmpty, ErrLengthMismatch, ErrZeroStep or ErrOutOfRange.
package seq
