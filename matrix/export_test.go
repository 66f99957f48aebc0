// SPDX-License-Identifier: MIT

package matrix

// White-box bridge: exposes private ew* kernels and the options snapshot to
// package matrix_test. Compiled only with the test binary.

var (
	ExportedBroadcastSubCols = ewBroadcastSubCols[float64]
	ExportedBroadcastSubRows = ewBroadcastSubRows[float64]
	ExportedScaleCols        = ewScaleCols[float64]
	ExportedScaleRows        = ewScaleRows[float64]
)

// OptionsSnapshot is a read-only view of the effective Options.
type OptionsSnapshot struct {
	Order    Order
	RandOpts int
}

// GatherOptionsSnapshot applies opts over the defaults and reports the result.
func GatherOptionsSnapshot(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{Order: o.order, RandOpts: len(o.rnd)}
}
