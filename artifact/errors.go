// SPDX-License-Identifier: MIT

package artifact

import (
	"fmt"

	"github.com/katalvlaran/q4/matrix"
)

var (
	// ErrInvalidInput is returned for unreadable, empty or non-numeric tables.
	ErrInvalidInput = fmt.Errorf("artifact: %w", matrix.ErrInvalidInput)

	// ErrDimensionMismatch is returned when a header does not match the data width.
	ErrDimensionMismatch = fmt.Errorf("artifact: %w", matrix.ErrDimensionMismatch)

	// ErrSerialization is returned when a run file cannot be written.
	ErrSerialization = fmt.Errorf("artifact: %w", matrix.ErrSerialization)
)

func artifactErrorf(op string, err error) error {
	return matrix.WrapOp(op, err, ErrInvalidInput, ErrDimensionMismatch, ErrSerialization)
}
