// SPDX-License-Identifier: MIT

package qstudy

import "fmt"

const (
	// DefaultTailQuantile is q in tau = quantile(|Z|, q).
	DefaultTailQuantile = 0.997

	// MaxReported caps the per-dimension entries of a record.
	MaxReported = 6
)

// Option configures Compute.
type Option func(*Options)

// Options holds the effective Compute configuration.
type Options struct {
	tailQuantile float64
}

// WithTailQuantile sets q. Panics unless 0 < q < 1.
func WithTailQuantile(q float64) Option {
	if !(q > 0 && q < 1) {
		panic(fmt.Sprintf("qstudy: WithTailQuantile(%v): need 0 < q < 1", q))
	}

	return func(o *Options) { o.tailQuantile = q }
}

func gatherOptions(opts ...Option) Options {
	o := Options{tailQuantile: DefaultTailQuantile}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
