// SPDX-License-Identifier: MIT

package projector

import (
	"fmt"

	"github.com/katalvlaran/q4/matrix"
)

// Package sentinels. Each wraps the shared matrix taxonomy, so
// errors.Is(err, matrix.ErrInvalidRank) holds for ErrInvalidRank as well.
var (
	// ErrInvalidInput is returned for empty, nil or non-finite X.
	ErrInvalidInput = fmt.Errorf("projector: %w", matrix.ErrInvalidInput)

	// ErrInvalidRank is returned when rank ∉ [1, min(rows(M), d)].
	ErrInvalidRank = fmt.Errorf("projector: %w", matrix.ErrInvalidRank)

	// ErrDimensionMismatch is returned when len(labels) != rows(X).
	ErrDimensionMismatch = fmt.Errorf("projector: %w", matrix.ErrDimensionMismatch)

	// ErrConsistencyCheckFailed is returned by Pair.Check on a violated invariant.
	ErrConsistencyCheckFailed = fmt.Errorf("projector: %w", matrix.ErrConsistencyCheckFailed)
)

// projectorErrorf tags err with the operation and the matching package sentinel.
func projectorErrorf(op string, err error) error {
	return matrix.WrapOp(op, err, ErrInvalidInput, ErrInvalidRank, ErrDimensionMismatch, ErrConsistencyCheckFailed)
}
