// SPDX-License-Identifier: MIT

package svdfit

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/q4/matrix"
)

var (
	// ErrInvalidInput is returned for nil, empty or non-finite matrices and vectors.
	ErrInvalidInput = fmt.Errorf("svdfit: %w", matrix.ErrInvalidInput)

	// ErrInvalidRank is returned when k ∉ [1, min(rows, cols)].
	ErrInvalidRank = fmt.Errorf("svdfit: %w", matrix.ErrInvalidRank)

	// ErrDimensionMismatch is returned when mu, V or Z disagree with the model width.
	ErrDimensionMismatch = fmt.Errorf("svdfit: %w", matrix.ErrDimensionMismatch)

	// ErrSerialization is returned when model artifacts cannot be written, or
	// are missing, malformed or mutually inconsistent on load.
	ErrSerialization = fmt.Errorf("svdfit: %w", matrix.ErrSerialization)

	// ErrDecompositionFailed is returned when an SVD does not converge.
	ErrDecompositionFailed = fmt.Errorf("svdfit: %w", matrix.ErrDecompositionFailed)

	// ErrCenteringMismatch is returned by ProjectCentered when the data was
	// centered with a different vector or convention than the model.
	ErrCenteringMismatch = errors.New("svdfit: centering mismatch")

	// ErrUnknownMethod is returned by ParseMethod for an unrecognised name.
	ErrUnknownMethod = errors.New("svdfit: unknown method")

	// ErrUnknownCentering is returned by ParseCentering for an unrecognised name.
	ErrUnknownCentering = errors.New("svdfit: unknown centering")
)

func svdfitErrorf(op string, err error) error {
	return matrix.WrapOp(op, err,
		ErrInvalidInput, ErrInvalidRank, ErrDimensionMismatch, ErrSerialization, ErrDecompositionFailed)
}
