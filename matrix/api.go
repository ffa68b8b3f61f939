// SPDX-License-Identifier: MIT
// Package matrix: small public facades over gonum/mat used across q4.
//
// Purpose:
//   - Provide intention-revealing constructors and reductions (identity,
//     symmetrisation, squared Frobenius energy, tolerance comparison) so the
//     higher-level packages never repeat the same loops.
//
// Determinism & Policy:
//   - Every facade allocates its result; inputs are never mutated.
//   - Reductions traverse i→j in a fixed order.

package matrix

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// NewIdentity returns I_n. Panics through gonum for n ≤ 0, so callers validate first.
// Complexity: O(n²) zeroing + O(n) diagonal writes.
func NewIdentity(n int) *mat.Dense {
	I := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		I.Set(i, i, 1)
	}

	return I
}

// Symmetrize returns (m + mᵀ)/2, cancelling floating-point asymmetry.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch for non-square input.
// Complexity: O(n²).
func Symmetrize(m mat.Matrix) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("Symmetrize", err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf("Symmetrize", err)
	}

	var out mat.Dense
	out.Add(m, m.T())
	out.Scale(0.5, &out)

	return &out, nil
}

// FrobeniusSq returns Σ_ij m[i,j]², the "energy" of m.
// Complexity: O(r*c).
func FrobeniusSq(m mat.Matrix) float64 {
	r, c := m.Dims()
	var i, j int
	var v, sum float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v = m.At(i, j)
			sum += v * v
		}
	}

	return sum
}

// MaxAbsDiff returns max_ij |a[i,j] - b[i,j]|, or +Inf when shapes differ.
// Complexity: O(r*c).
func MaxAbsDiff(a, b mat.Matrix) float64 {
	if ValidateSameShape(a, b) != nil {
		return math.Inf(1)
	}
	r, c := a.Dims()
	var i, j int
	var worst float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			worst = math.Max(worst, math.Abs(a.At(i, j)-b.At(i, j)))
		}
	}

	return worst
}

// AllClose reports whether a and b have the same shape and every element
// differs by at most atol.
// Complexity: O(r*c).
func AllClose(a, b mat.Matrix, atol float64) bool {
	return MaxAbsDiff(a, b) <= atol
}

// MaxAbs returns max_ij |m[i,j]|.
// Complexity: O(r*c).
func MaxAbs(m mat.Matrix) float64 {
	r, c := m.Dims()
	var i, j int
	var worst float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			worst = math.Max(worst, math.Abs(m.At(i, j)))
		}
	}

	return worst
}
