// SPDX-License-Identifier: MIT

package svdfit

import (
	"fmt"
	"io"
	"log/slog"
)

// Fit defaults.
const (
	// DefaultSeed seeds the randomized sketch and the incremental row permutation.
	DefaultSeed uint64 = 42

	// DefaultOversamples is the number of extra sketch columns for Randomized.
	DefaultOversamples = 10

	// DefaultPowerIters is the number of power iterations for Randomized.
	DefaultPowerIters = 5
)

// Option configures Fit.
type Option func(*Options)

// Options holds the effective Fit configuration.
type Options struct {
	method      Method
	seed        uint64
	thresholds  Thresholds
	oversamples int
	powerIters  int
	centering   Centering
	logger      *slog.Logger
}

// WithMethod forces a back-end; Auto (the default) selects by shape.
// Panics on an undefined Method.
func WithMethod(m Method) Option {
	if m < Auto || m > Incremental {
		panic(fmt.Sprintf("svdfit: WithMethod(%d): undefined method", int(m)))
	}

	return func(o *Options) { o.method = m }
}

// WithSeed sets the seed for Randomized and Incremental.
func WithSeed(seed uint64) Option {
	return func(o *Options) { o.seed = seed }
}

// WithThresholds overrides the Auto cut-offs. Panics on negative cut-offs or
// MaxBatch < 1.
func WithThresholds(t Thresholds) Option {
	if err := t.validate(); err != nil {
		panic(err.Error())
	}

	return func(o *Options) { o.thresholds = t }
}

// WithOversamples sets the Randomized oversampling p ≥ 0.
func WithOversamples(p int) Option {
	if p < 0 {
		panic(fmt.Sprintf("svdfit: WithOversamples(%d): need p ≥ 0", p))
	}

	return func(o *Options) { o.oversamples = p }
}

// WithPowerIters sets the Randomized power iteration count q ≥ 0.
func WithPowerIters(q int) Option {
	if q < 0 {
		panic(fmt.Sprintf("svdfit: WithPowerIters(%d): need q ≥ 0", q))
	}

	return func(o *Options) { o.powerIters = q }
}

// WithCentering records the convention the input to Fit was prepared with.
// FitCentered sets it from the token.
func WithCentering(c Centering) Option {
	if c != Center && c != CenterL2 {
		panic(fmt.Sprintf("svdfit: WithCentering(%d): undefined convention", int(c)))
	}

	return func(o *Options) { o.centering = c }
}

// WithLogger sets the logger for method selection and fit summaries (Debug
// level). A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}

func gatherOptions(opts ...Option) Options {
	o := Options{
		method:      Auto,
		seed:        DefaultSeed,
		thresholds:  DefaultThresholds(),
		oversamples: DefaultOversamples,
		powerIters:  DefaultPowerIters,
		centering:   Center,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
