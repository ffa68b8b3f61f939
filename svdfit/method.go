// SPDX-License-Identifier: MIT

package svdfit

import (
	"fmt"
	"strings"
)

// Method selects the SVD back-end used by Fit.
type Method int

const (
	// Auto picks a method from the input shape, see Thresholds.Select.
	Auto Method = iota
	// Truncated is the exact thin SVD.
	Truncated
	// Randomized is the Halko–Martinsson–Tropp range finder.
	Randomized
	// Incremental folds row batches into a running rank-k factorisation.
	Incremental
)

var methodNames = [...]string{
	Auto:        "auto",
	Truncated:   "truncated",
	Randomized:  "randomized",
	Incremental: "incremental",
}

// String implements fmt.Stringer.
func (m Method) String() string {
	if m < 0 || int(m) >= len(methodNames) {
		return fmt.Sprintf("Method(%d)", int(m))
	}

	return methodNames[m]
}

// ParseMethod maps "auto", "truncated", "randomized" or "incremental"
// (case-insensitive) to a Method.
func ParseMethod(s string) (Method, error) {
	for i, name := range methodNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return Method(i), nil
		}
	}

	return Auto, fmt.Errorf("%w: %q", ErrUnknownMethod, s)
}

// Auto-selection defaults.
const (
	// DefaultRandomizedRows: more rows than this selects Randomized.
	DefaultRandomizedRows = 10000

	// DefaultRandomizedCols: more columns than this selects Randomized.
	DefaultRandomizedCols = 1000

	// DefaultIncrementalRows: more rows than this (and not Randomized) selects Incremental.
	DefaultIncrementalRows = 2000

	// DefaultMaxBatch caps the Incremental batch size.
	DefaultMaxBatch = 1000
)

// Thresholds are the shape cut-offs used when the method is Auto.
type Thresholds struct {
	RandomizedRows  int
	RandomizedCols  int
	IncrementalRows int
	MaxBatch        int
}

// DefaultThresholds returns the documented defaults.
func DefaultThresholds() Thresholds {
	return Thresholds{
		RandomizedRows:  DefaultRandomizedRows,
		RandomizedCols:  DefaultRandomizedCols,
		IncrementalRows: DefaultIncrementalRows,
		MaxBatch:        DefaultMaxBatch,
	}
}

// Select returns the method Auto resolves to for an n×d input:
// Randomized when n > RandomizedRows or d > RandomizedCols, else Incremental
// when n > IncrementalRows, else Truncated.
func (t Thresholds) Select(n, d int) Method {
	switch {
	case n > t.RandomizedRows || d > t.RandomizedCols:
		return Randomized
	case n > t.IncrementalRows:
		return Incremental
	default:
		return Truncated
	}
}

// BatchSize returns the Incremental batch size for n rows and rank k:
// min(MaxBatch, n/4), raised to at least k so every batch update can hold
// the running rank-k factorisation.
func (t Thresholds) BatchSize(n, k int) int {
	return max(min(t.MaxBatch, n/4), k)
}

func (t Thresholds) validate() error {
	if t.RandomizedRows < 0 || t.RandomizedCols < 0 || t.IncrementalRows < 0 || t.MaxBatch < 1 {
		return fmt.Errorf("svdfit: invalid thresholds %+v", t)
	}

	return nil
}
