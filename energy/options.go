// SPDX-License-Identifier: MIT

package energy

import (
	"fmt"
	"math"
)

const (
	// DefaultTolerance is the accepted deviation of the projected energy from
	// ‖X‖²_F, relative to ‖X‖²_F, for Check.
	DefaultTolerance = 1e-2

	// MinTolerance is the tightest tolerance WithTolerance accepts.
	MinTolerance = 1e-8

	// DenominatorFloor is added to ‖X‖²_F so an all-zero X yields 0, not NaN.
	DenominatorFloor = 1e-12
)

// Option configures Check.
type Option func(*Options)

// Options holds the effective Check configuration.
type Options struct {
	tolerance float64
}

// WithTolerance sets the accepted relative energy deviation.
// Panics if tol is not finite or lies outside [MinTolerance, 1).
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || tol < MinTolerance || tol >= 1 {
		panic(fmt.Sprintf("energy: WithTolerance(%v): want %g ≤ tol < 1", tol, MinTolerance))
	}

	return func(o *Options) { o.tolerance = tol }
}

func gatherOptions(opts ...Option) Options {
	o := Options{tolerance: DefaultTolerance}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
