// SPDX-License-Identifier: MIT

package seq

import "github.com/katalvlaran/lvnum/numeric"

// AllClose reports whether |a[i]-b[i]| <= atol + rtol*|b[i]| for every i.
// Any NaN makes the result false. An infinity is close only to the same
// infinity. Slices of different length are never close.
func AllClose[T numeric.Number](a, b []T, rtol, atol float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i, v := range a {
		if v == b[i] { // equal infinities
			continue
		}
		if !numeric.IsFinite(v) || !numeric.IsFinite(b[i]) {
			return false
		}
		if !(numeric.Norm(v-b[i]) <= atol+rtol*numeric.Norm(b[i])) {
			return false
		}
	}

	return true
}
