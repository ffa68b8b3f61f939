// SPDX-License-Identifier: MIT

package pipeline

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/q4/matrix"
)

var (
	// ErrInvalidInput is returned for an unusable input matrix.
	ErrInvalidInput = fmt.Errorf("pipeline: %w", matrix.ErrInvalidInput)

	// ErrUnknownMode is returned by ParseMode for an unrecognised name.
	ErrUnknownMode = errors.New("pipeline: unknown mode")
)
