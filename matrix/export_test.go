// SPDX-License-Identifier: MIT

package matrix

// Test bridge for the private ew* kernels, visible to matrix_test only.
var (
	EwBroadcastSubCols = ewBroadcastSubCols
	EwScaleRows        = ewScaleRows
)
