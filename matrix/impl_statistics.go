// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the statistical transforms the q4 pipeline is built on
//     (column means, centering, row L2 normalisation, row energies) as
//     deterministic compositions over the ew* broadcast kernels.
//
// Exposed API:
//   - ColumnMeans(X)            -> means              // per-column mean
//   - CenterColumns(X)          -> (Xc, means)        // subtract per-column mean
//   - SubtractColumnMeans(X, m) -> Xc                 // subtract a given centering vector
//   - NormalizeRowsL2(X, floor) -> (Y, norms)         // divide each row by max(‖row‖₂, floor)
//   - RowSquaredNorms(X)        -> energies           // ‖row‖₂² per row
//
// Determinism:
//   - Fixed i→j traversal for all explicit loops; no randomness.

package matrix

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Operation name constants for unified error wrapping.
const (
	opColumnMeans         = "ColumnMeans"
	opCenterColumns       = "CenterColumns"
	opSubtractColumnMeans = "SubtractColumnMeans"
	opNormalizeRowsL2     = "NormalizeRowsL2"
	opRowSquaredNorms     = "RowSquaredNorms"
)

// DefaultNormFloor is the lower bound applied to row norms by NormalizeRowsL2,
// so all-zero rows stay zero instead of dividing by zero.
const DefaultNormFloor = 1e-9

// ColumnMeans returns Σ_i X[i,j] / r for every column j.
//
// Errors: ErrNilMatrix, ErrEmpty.
// Complexity: Time O(r*c), Space O(c).
func ColumnMeans(X mat.Matrix) ([]float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opColumnMeans, err)
	}
	if err := ValidateNonEmpty(X); err != nil {
		return nil, matrixErrorf(opColumnMeans, err)
	}

	r, c := X.Dims()
	means := make([]float64, c)
	var i, j int
	for i = 0; i < r; i++ { // deterministic row order
		for j = 0; j < c; j++ {
			means[j] += X.At(i, j)
		}
	}
	floats.Scale(1/float64(r), means)

	return means, nil
}

// CenterColumns subtracts the per-column mean from every element.
// Implementation:
//   - Stage 1: compute column means.
//   - Stage 2: broadcast-subtract them into a fresh copy.
//
// Returns the centered copy (r×c) and the means (len c). X is not mutated.
// Complexity: Time O(r*c), Space O(r*c).
func CenterColumns(X mat.Matrix) (*mat.Dense, []float64, error) {
	means, err := ColumnMeans(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}

	Xc, err := ewBroadcastSubCols(X, means)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}

	return Xc, means, nil
}

// SubtractColumnMeans returns X - 1·muᵀ for a caller-supplied centering vector.
// Use it to re-apply a centering learned elsewhere (e.g. at fit time).
//
// Errors: ErrNilMatrix, ErrEmpty, ErrDimensionMismatch when len(mu) != cols.
// Complexity: Time O(r*c), Space O(r*c).
func SubtractColumnMeans(X mat.Matrix, mu []float64) (*mat.Dense, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opSubtractColumnMeans, err)
	}
	if err := ValidateNonEmpty(X); err != nil {
		return nil, matrixErrorf(opSubtractColumnMeans, err)
	}

	out, err := ewBroadcastSubCols(X, mu)
	if err != nil {
		return nil, matrixErrorf(opSubtractColumnMeans, err)
	}

	return out, nil
}

// NormalizeRowsL2 divides each row by max(‖row‖₂, floor).
// Implementation:
//   - Stage 1: per-row Euclidean norms.
//   - Stage 2: scale factors 1/max(norm, floor).
//   - Stage 3: ewScaleRows into a fresh copy.
//
// Behavior highlights:
//   - floor ≤ 0 falls back to DefaultNormFloor.
//   - Returned norms are the raw (unfloored) row norms.
//
// Complexity: Time O(r*c), Space O(r*c).
func NormalizeRowsL2(X mat.Matrix, floor float64) (*mat.Dense, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opNormalizeRowsL2, err)
	}
	if err := ValidateNonEmpty(X); err != nil {
		return nil, nil, matrixErrorf(opNormalizeRowsL2, err)
	}
	if floor <= 0 || isNonFinite(floor) {
		floor = DefaultNormFloor
	}

	r, c := X.Dims()
	norms := make([]float64, r)
	scale := make([]float64, r)
	row := make([]float64, c) // reused per row; mat.Row requires len == c
	var i int
	for i = 0; i < r; i++ {
		mat.Row(row, i, X)
		norms[i] = floats.Norm(row, 2)
		scale[i] = 1 / math.Max(norms[i], floor)
	}

	Y, err := ewScaleRows(X, scale)
	if err != nil {
		return nil, nil, matrixErrorf(opNormalizeRowsL2, err)
	}

	return Y, norms, nil
}

// RowSquaredNorms returns ‖X[i,:]‖₂² for every row.
// Complexity: Time O(r*c), Space O(r).
func RowSquaredNorms(X mat.Matrix) ([]float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opRowSquaredNorms, err)
	}

	r, c := X.Dims()
	out := make([]float64, r)
	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v = X.At(i, j)
			out[i] += v * v
		}
	}

	return out, nil
}
