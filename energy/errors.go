// SPDX-License-Identifier: MIT

package energy

import (
	"fmt"

	"github.com/katalvlaran/q4/matrix"
)

var (
	// ErrInvalidInput is returned for nil, empty or non-finite X and for a nil pair.
	ErrInvalidInput = fmt.Errorf("energy: %w", matrix.ErrInvalidInput)

	// ErrDimensionMismatch is returned when the pair does not match the width of X.
	ErrDimensionMismatch = fmt.Errorf("energy: %w", matrix.ErrDimensionMismatch)

	// ErrConsistencyCheckFailed is returned by Check when the projected energy
	// deviates from ‖X‖²_F by more than the tolerance.
	ErrConsistencyCheckFailed = fmt.Errorf("energy: %w", matrix.ErrConsistencyCheckFailed)
)

func energyErrorf(op string, err error) error {
	return matrix.WrapOp(op, err, ErrInvalidInput, ErrDimensionMismatch, ErrConsistencyCheckFailed)
}
