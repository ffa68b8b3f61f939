// SPDX-License-Identifier: MIT

package qstudy

import (
	"fmt"

	"github.com/katalvlaran/q4/matrix"
)

var (
	// ErrInvalidInput is returned for nil, non-finite or too small inputs.
	ErrInvalidInput = fmt.Errorf("qstudy: %w", matrix.ErrInvalidInput)

	// ErrDimensionMismatch is returned when records passed to Embed have different schemas.
	ErrDimensionMismatch = fmt.Errorf("qstudy: %w", matrix.ErrDimensionMismatch)

	// ErrDecompositionFailed is returned when the embedding PCA does not converge.
	ErrDecompositionFailed = fmt.Errorf("qstudy: %w", matrix.ErrDecompositionFailed)
)

func qstudyErrorf(op string, err error) error {
	return matrix.WrapOp(op, err, ErrInvalidInput, ErrDimensionMismatch, ErrDecompositionFailed)
}
