// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Wrap gonum's thin SVD with the conventions every q4 fitter relies on:
//     right singular vectors in decreasing singular-value order and a
//     deterministic sign per vector.

package matrix

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

const opTopRightSingular = "TopRightSingularVectors"

// TopRightSingularVectors returns the leading r right singular vectors of M as
// the columns of a d×r matrix, together with all singular values (decreasing).
// Implementation:
//   - Stage 1: validate M and r ∈ [1, min(rows, cols)].
//   - Stage 2: thin SVD (V only) via gonum.
//   - Stage 3: copy the first r columns of V and flip signs with FlipColumnSigns.
//
// Errors: ErrInvalidInput family, ErrInvalidRank, ErrDecompositionFailed.
// Complexity: O(min(n,d)·n·d) for the factorisation.
func TopRightSingularVectors(M mat.Matrix, r int) (*mat.Dense, []float64, error) {
	if err := ValidateInput(M); err != nil {
		return nil, nil, matrixErrorf(opTopRightSingular, err)
	}
	n, d := M.Dims()
	if err := ValidateRank(r, n, d); err != nil {
		return nil, nil, matrixErrorf(opTopRightSingular, err)
	}

	var svd mat.SVD
	if ok := svd.Factorize(M, mat.SVDThinV); !ok {
		return nil, nil, matrixErrorf(opTopRightSingular, ErrDecompositionFailed)
	}
	var v mat.Dense
	svd.VTo(&v) // d×min(n,d), columns ordered by decreasing singular value

	B := mat.DenseCopyOf(v.Slice(0, d, 0, r))
	FlipColumnSigns(B)

	return B, svd.Values(nil), nil
}

// FlipColumnSigns makes the largest-magnitude entry of every column positive,
// in place. Singular vectors are defined only up to sign; this fixes one.
// Ties resolve to the first index. Complexity: O(r*c).
func FlipColumnSigns(B *mat.Dense) {
	r, c := B.Dims()
	var i, j, arg int
	var best float64
	for j = 0; j < c; j++ {
		arg, best = 0, -1.0
		for i = 0; i < r; i++ {
			if a := math.Abs(B.At(i, j)); a > best {
				arg, best = i, a
			}
		}
		if B.At(arg, j) < 0 {
			for i = 0; i < r; i++ {
				B.Set(i, j, -B.At(i, j))
			}
		}
	}
}
