// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for input validation.
//   - Keep kernels in projector/quadrant/energy/svdfit/qstudy minimal by
//     delegating nil/shape/finiteness/rank checks here.
//   - Return tagged sentinel errors so callers can match with errors.Is.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.
//   - Finiteness scans the flat backing buffer when the matrix exposes one.
//
// Note:
//   - Composite validators follow a fixed sequence: NotNil → NonEmpty → Finite.

package matrix

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// ValidateNotNil ensures the matrix reference is non-nil, including a typed nil *mat.Dense.
// Complexity: O(1).
func ValidateNotNil(m mat.Matrix) error {
	if m == nil {
		return matrixErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*mat.Dense); ok && d == nil {
		return matrixErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateNonEmpty ensures m has at least one row and one column.
// Assumes m is not nil.
// Complexity: O(1).
func ValidateNonEmpty(m mat.Matrix) error {
	if d, ok := m.(*mat.Dense); ok && d.IsEmpty() {
		return matrixErrorf("ValidateNonEmpty", ErrEmpty)
	}
	r, c := m.Dims()
	if r < 1 || c < 1 {
		return matrixErrorf("ValidateNonEmpty", ErrEmpty)
	}

	return nil
}

// ValidateFinite scans every element and rejects NaN or ±Inf.
// Assumes m is non-nil and non-empty.
// Complexity: O(r*c).
func ValidateFinite(m mat.Matrix) error {
	r, c := m.Dims()

	// Stage 1: flat fast-path over the raw row-major buffer.
	if rm, ok := m.(mat.RawMatrixer); ok {
		raw := rm.RawMatrix()
		var i, j int
		for i = 0; i < raw.Rows; i++ {
			row := raw.Data[i*raw.Stride : i*raw.Stride+raw.Cols]
			for j = range row {
				if isNonFinite(row[j]) {
					return matrixErrorf("ValidateFinite", ErrNaNInf)
				}
			}
		}
		return nil
	}

	// Stage 2: generic At fallback.
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if isNonFinite(m.At(i, j)) {
				return matrixErrorf("ValidateFinite", ErrNaNInf)
			}
		}
	}

	return nil
}

// ValidateInput is the composite guard used by every core entry point:
// NotNil → NonEmpty → Finite.
//
// Errors: ErrNilMatrix, ErrEmpty, ErrNaNInf (all match ErrInvalidInput).
// Complexity: O(r*c).
func ValidateInput(m mat.Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if err := ValidateNonEmpty(m); err != nil {
		return err
	}

	return ValidateFinite(m)
}

// ValidateSquare checks Rows == Cols. Assumes m is not nil.
// Complexity: O(1).
func ValidateSquare(m mat.Matrix) error {
	r, c := m.Dims()
	if r != c {
		return matrixErrorf("ValidateSquare", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
// Complexity: O(1).
func ValidateSameShape(a, b mat.Matrix) error {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ar != br {
		return matrixErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if ac != bc {
		return matrixErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateProjector checks that p is a non-nil d×d matrix, where d is the
// width of the data it will be applied to.
// Complexity: O(1).
func ValidateProjector(p mat.Matrix, d int) error {
	if err := ValidateNotNil(p); err != nil {
		return matrixErrorf("ValidateProjector", err)
	}
	r, c := p.Dims()
	if r != d || c != d {
		return matrixErrorf("ValidateProjector", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches n.
// Complexity: O(1).
func ValidateVecLen(x []float64, n int) error {
	if len(x) != n {
		return matrixErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateRank ensures 1 ≤ k ≤ min(rows, cols).
// Complexity: O(1).
func ValidateRank(k, rows, cols int) error {
	if k < 1 || k > min(rows, cols) {
		return matrixErrorf("ValidateRank", ErrInvalidRank)
	}

	return nil
}

// ValidateSymmetric checks |A[i,j] - A[j,i]| ≤ tol over the strict upper triangle.
//
// Returns ErrDimensionMismatch for non-square input and ErrConsistencyCheckFailed
// on violation.
// Complexity: O(n²).
func ValidateSymmetric(m mat.Matrix, tol float64) error {
	if err := ValidateSquare(m); err != nil {
		return matrixErrorf("ValidateSymmetric", err)
	}
	n, _ := m.Dims()
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if math.Abs(m.At(i, j)-m.At(j, i)) > tol {
				return matrixErrorf("ValidateSymmetric", ErrConsistencyCheckFailed)
			}
		}
	}

	return nil
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
