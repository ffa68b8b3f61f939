// SPDX-License-Identifier: MIT

package pipeline

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/q4/energy"
	"github.com/katalvlaran/q4/projector"
	"github.com/katalvlaran/q4/qstudy"
	"github.com/katalvlaran/q4/svdfit"
)

// DefaultMaxK caps the automatic SVD rank: k = min(DefaultMaxK, rows, cols).
const DefaultMaxK = 50

// Option configures Run.
type Option func(*Options)

// Options holds the effective Run configuration.
type Options struct {
	mode            Mode
	rank            int
	labels          []string
	energyTolerance float64
	k               int // 0 selects min(DefaultMaxK, rows, cols)
	centering       svdfit.Centering
	svdOptions      []svdfit.Option
	tailQuantile    float64
	logger          *slog.Logger
	metrics         *Metrics
}

// WithMode selects Standard, Enhanced or Full. Panics on an undefined Mode.
func WithMode(m Mode) Option {
	if m < Standard || m > Full {
		panic(fmt.Sprintf("pipeline: WithMode(%d): undefined mode", int(m)))
	}

	return func(o *Options) { o.mode = m }
}

// WithRank sets the projector rank (validated by projector.Learn).
func WithRank(r int) Option {
	return func(o *Options) { o.rank = r }
}

// WithLabels learns the projector pair in supervised mode.
func WithLabels(labels []string) Option {
	cp := append([]string(nil), labels...)
	return func(o *Options) { o.labels = cp }
}

// WithEnergyTolerance sets the energy check tolerance (see energy.WithTolerance).
func WithEnergyTolerance(tol float64) Option {
	energy.WithTolerance(tol) // same range checks
	return func(o *Options) { o.energyTolerance = tol }
}

// WithK fixes the SVD rank; 0 restores the automatic choice. Panics on k < 0.
func WithK(k int) Option {
	if k < 0 {
		panic(fmt.Sprintf("pipeline: WithK(%d): need k ≥ 0", k))
	}

	return func(o *Options) { o.k = k }
}

// WithCentering sets the convention used to prepare the SVD input.
func WithCentering(c svdfit.Centering) Option {
	svdfit.WithCentering(c) // same range checks
	return func(o *Options) { o.centering = c }
}

// WithSVDOptions forwards options to svdfit.FitCentered.
func WithSVDOptions(opts ...svdfit.Option) Option {
	cp := append([]svdfit.Option(nil), opts...)
	return func(o *Options) { o.svdOptions = append(o.svdOptions, cp...) }
}

// WithTailQuantile sets the Q_study tail quantile (see qstudy.WithTailQuantile).
func WithTailQuantile(q float64) Option {
	qstudy.WithTailQuantile(q) // same range checks
	return func(o *Options) { o.tailQuantile = q }
}

// WithLogger sets the run logger; it is also handed to svdfit. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMetrics records run outcomes and stage timings into m.
func WithMetrics(m *Metrics) Option {
	return func(o *Options) { o.metrics = m }
}

func gatherOptions(opts ...Option) Options {
	o := Options{
		mode:            Standard,
		rank:            projector.DefaultRank,
		energyTolerance: energy.DefaultTolerance,
		centering:       svdfit.CenterL2,
		tailQuantile:    qstudy.DefaultTailQuantile,
		logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
