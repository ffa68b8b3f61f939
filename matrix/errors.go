// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set shared by every q4 package.
// This file defines ONLY package-level sentinel errors. Algorithms MUST return
// these sentinels (optionally wrapped with an op tag) and tests MUST check them
// via errors.Is. No algorithm should panic on user-triggered error conditions;
// panics are reserved for invalid option values (programmer error).

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "q4: ..." for easy grepping across logs.
// Packages re-export the taxonomy with their own prefix, e.g.
//
//	var ErrInvalidRank = fmt.Errorf("projector: %w", matrix.ErrInvalidRank)
//
// so errors.Is matches both the package sentinel and the shared one.

// Taxonomy roots.
var (
	// ErrInvalidInput marks an empty, nil or non-finite matrix or an invalid scalar argument.
	ErrInvalidInput = errors.New("q4: invalid input")

	// ErrInvalidRank marks a requested rank/k outside [1, min(rows, cols)].
	ErrInvalidRank = errors.New("q4: invalid rank")

	// ErrDimensionMismatch marks operands whose dimensionality disagrees
	// (projector or model width vs input width, label count vs rows).
	ErrDimensionMismatch = errors.New("q4: dimension mismatch")

	// ErrConsistencyCheckFailed marks a violated numerical self-check
	// (energy conservation, projector invariants). It is a hard failure.
	ErrConsistencyCheckFailed = errors.New("q4: consistency check failed")

	// ErrSerialization marks missing or malformed persisted artifacts.
	ErrSerialization = errors.New("q4: serialization error")

	// ErrDecompositionFailed indicates that a singular value decomposition
	// did not converge.
	ErrDecompositionFailed = errors.New("q4: decomposition failed")
)

// Refinements of ErrInvalidInput. errors.Is(err, ErrInvalidInput) holds for each.
var (
	// ErrNilMatrix indicates that a nil matrix argument was used.
	ErrNilMatrix = fmt.Errorf("%w: nil matrix", ErrInvalidInput)

	// ErrEmpty indicates a matrix with zero rows or zero columns.
	ErrEmpty = fmt.Errorf("%w: empty matrix", ErrInvalidInput)

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = fmt.Errorf("%w: NaN or Inf encountered", ErrInvalidInput)
)

// matrixErrorf wraps err with an operation tag ("<tag>: <err>").
// Callers must pass a non-nil err.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// WrapOp tags err with an operation name. When err belongs to a taxonomy root
// re-exported by one of the given package sentinels (built as
// fmt.Errorf("pkg: %w", root)), the package sentinel is wrapped as well, so
// errors.Is matches the package sentinel, the root and any refinement.
// Sentinels are tried in order; the first match wins.
func WrapOp(op string, err error, sentinels ...error) error {
	for _, s := range sentinels {
		if root := errors.Unwrap(s); root != nil && errors.Is(err, root) {
			return fmt.Errorf("%s: %w: %w", op, s, err)
		}
	}

	return matrixErrorf(op, err)
}
