// SPDX-License-Identifier: MIT

package quadrant

import (
	"fmt"

	"github.com/katalvlaran/q4/matrix"
)

// Package sentinels wrapping the shared matrix taxonomy.
var (
	// ErrInvalidInput is returned for nil, empty or non-finite X and for a nil pair.
	ErrInvalidInput = fmt.Errorf("quadrant: %w", matrix.ErrInvalidInput)

	// ErrDimensionMismatch is returned when Ps or Pv is not d×d for X of width d.
	ErrDimensionMismatch = fmt.Errorf("quadrant: %w", matrix.ErrDimensionMismatch)
)

func quadrantErrorf(op string, err error) error {
	return matrix.WrapOp(op, err, ErrInvalidInput, ErrDimensionMismatch)
}
