// SPDX-License-Identifier: MIT

package projector

// Defaults: single source of truth for zero-value behavior.
const (
	// DefaultRank is the dimension r of the variant subspace.
	DefaultRank = 1

	// DefaultTolerance is the absolute tolerance used by Pair.Check.
	DefaultTolerance = 1e-8
)

// Option configures Learn.
type Option func(*Options)

// Options holds the effective configuration after applying Option setters.
type Options struct {
	rank       int      // DefaultRank; validated by Learn against the data shape
	supervised bool     // set by WithLabels
	labels     []string // one per row when supervised
}

// WithRank sets the variant-subspace rank r. Range checks happen in Learn
// against the data shape, surfacing ErrInvalidRank instead of panicking.
func WithRank(r int) Option {
	return func(o *Options) { o.rank = r }
}

// WithLabels switches Learn to supervised mode: one label per row of X.
// The slice is copied.
func WithLabels(labels []string) Option {
	cp := append([]string(nil), labels...)
	return func(o *Options) {
		o.supervised = true
		o.labels = cp
	}
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{rank: DefaultRank}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
