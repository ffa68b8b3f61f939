// SPDX-License-Identifier: MIT

package quadrant

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/q4/matrix"
)

const opSplit = "Split"

// Split decomposes every row of X with the pair p.
// Implementation:
//   - Stage 1 (Validate): X non-empty and finite; Ps and Pv are d×d.
//   - Stage 2 (Execute): S = X·Psᵀ, V = X·Pvᵀ.
//   - Stage 3 (Finalize): MuV = colmean(V), Discard = V − MuV, Rate over Discard rows.
//
// Errors:
//   - ErrInvalidInput for nil/empty/non-finite X or a nil pair.
//   - ErrDimensionMismatch when the pair does not match the width of X.
//
// Complexity: O(n·d²).
func Split(X mat.Matrix, p matrix.Projectors) (*Result, error) {
	// Stage 1: validate.
	if err := matrix.ValidateInput(X); err != nil {
		return nil, quadrantErrorf(opSplit, err)
	}
	n, d := X.Dims()
	Ps, Pv, err := matrix.ProjectorMatrices(p, d)
	if err != nil {
		return nil, quadrantErrorf(opSplit, err)
	}

	// Stage 2: both projections.
	S := mat.NewDense(n, d, nil)
	S.Mul(X, Ps.T())
	V := mat.NewDense(n, d, nil)
	V.Mul(X, Pv.T())

	// Stage 3: center the variant part and count the rows that survive.
	muV, err := matrix.ColumnMeans(V)
	if err != nil {
		return nil, quadrantErrorf(opSplit, err)
	}
	D, err := matrix.SubtractColumnMeans(V, muV)
	if err != nil {
		return nil, quadrantErrorf(opSplit, err)
	}

	return &Result{
		keep:    S,
		variant: V,
		discard: D,
		study:   Study{MuV: muV, Rate: nonZeroRate(D)},
	}, nil
}

// nonZeroRate is the fraction of rows of D whose L2 norm exceeds RateThreshold.
func nonZeroRate(D *mat.Dense) float64 {
	n, _ := D.Dims()
	var hits int
	for i := 0; i < n; i++ {
		if floats.Norm(D.RawRowView(i), 2) > RateThreshold {
			hits++
		}
	}

	return float64(hits) / float64(n)
}
