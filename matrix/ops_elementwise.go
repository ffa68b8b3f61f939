// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide small, private broadcast kernels (ew*) shared by the statistics
//     transforms, so the tight loops live in one place.
//
// Determinism & Performance:
//   - Fixed i→j loop order over row views of a freshly allocated *mat.Dense.
//   - Inputs are never mutated; one output allocation per call.

package matrix

import "gonum.org/v1/gonum/mat"

// ewBroadcastSubCols computes out[i,j] = X[i,j] - v[j].
// Time: O(r*c). Space: O(r*c).
func ewBroadcastSubCols(X mat.Matrix, v []float64) (*mat.Dense, error) {
	r, c := X.Dims()
	if len(v) != c {
		return nil, matrixErrorf("broadcastSubCols", ErrDimensionMismatch)
	}

	out := mat.DenseCopyOf(X)
	var i, j int
	for i = 0; i < r; i++ {
		row := out.RawRowView(i) // aliases out's backing buffer
		for j = 0; j < c; j++ {
			row[j] -= v[j]
		}
	}

	return out, nil
}

// ewScaleRows computes out[i,j] = X[i,j] * s[i].
// Time: O(r*c). Space: O(r*c).
func ewScaleRows(X mat.Matrix, s []float64) (*mat.Dense, error) {
	r, c := X.Dims()
	if len(s) != r {
		return nil, matrixErrorf("scaleRows", ErrDimensionMismatch)
	}

	out := mat.DenseCopyOf(X)
	var i, j int
	for i = 0; i < r; i++ {
		row := out.RawRowView(i)
		for j = 0; j < c; j++ {
			row[j] *= s[i]
		}
	}

	return out, nil
}
