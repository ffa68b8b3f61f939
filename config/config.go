// SPDX-License-Identifier: MIT

// Package config loads the YAML run configuration of the q4 command and maps
// it onto pipeline options. Missing keys keep their defaults; unknown keys
// are rejected.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/q4/energy"
	"github.com/katalvlaran/q4/pipeline"
	"github.com/katalvlaran/q4/projector"
	"github.com/katalvlaran/q4/qstudy"
	"github.com/katalvlaran/q4/svdfit"
)

// ErrInvalidConfig is returned by Load and Validate for unreadable or
// out-of-range configuration.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// DefaultOutputDir is the run directory used when none is configured.
const DefaultOutputDir = "q4-out"

// Config is the YAML document.
type Config struct {
	Mode         string       `yaml:"mode"`
	Rank         int          `yaml:"rank"`
	LabelsColumn string       `yaml:"labels_column,omitempty"`
	Energy       EnergyConfig `yaml:"energy"`
	SVD          SVDConfig    `yaml:"svd"`
	QStudy       QStudyConfig `yaml:"qstudy"`
	Output       OutputConfig `yaml:"output"`
	LogLevel     string       `yaml:"log_level"`
}

// EnergyConfig configures the energy self-check.
type EnergyConfig struct {
	Tolerance float64 `yaml:"tolerance"`
}

// SVDConfig configures the SVD branch.
type SVDConfig struct {
	K           int              `yaml:"k"` // 0 selects min(50, rows, cols)
	Method      string           `yaml:"method"`
	Seed        uint64           `yaml:"seed"`
	Centering   string           `yaml:"centering"`
	Oversamples int              `yaml:"oversamples"`
	PowerIters  int              `yaml:"power_iters"`
	Thresholds  ThresholdsConfig `yaml:"thresholds"`
}

// ThresholdsConfig mirrors svdfit.Thresholds.
type ThresholdsConfig struct {
	RandomizedRows  int `yaml:"randomized_rows"`
	RandomizedCols  int `yaml:"randomized_cols"`
	IncrementalRows int `yaml:"incremental_rows"`
	MaxBatch        int `yaml:"max_batch"`
}

// QStudyConfig configures the Q_study features.
type QStudyConfig struct {
	TailQuantile float64 `yaml:"tail_quantile"`
}

// OutputConfig configures where runs are written.
type OutputConfig struct {
	Dir string `yaml:"dir"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	t := svdfit.DefaultThresholds()

	return Config{
		Mode:   pipeline.Standard.String(),
		Rank:   projector.DefaultRank,
		Energy: EnergyConfig{Tolerance: energy.DefaultTolerance},
		SVD: SVDConfig{
			Method:      svdfit.Auto.String(),
			Seed:        svdfit.DefaultSeed,
			Centering:   svdfit.CenterL2.String(),
			Oversamples: svdfit.DefaultOversamples,
			PowerIters:  svdfit.DefaultPowerIters,
			Thresholds: ThresholdsConfig{
				RandomizedRows:  t.RandomizedRows,
				RandomizedCols:  t.RandomizedCols,
				IncrementalRows: t.IncrementalRows,
				MaxBatch:        t.MaxBatch,
			},
		},
		QStudy:   QStudyConfig{TailQuantile: qstudy.DefaultTailQuantile},
		Output:   OutputConfig{Dir: DefaultOutputDir},
		LogLevel: "info",
	}
}

// Load reads path over Default and validates the result. An empty file
// yields the defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return Parse(data)
}

// Parse decodes a YAML document over Default and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Marshal renders c as YAML.
func (c Config) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Validate reports every out-of-range field, joined.
func (c Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}

	if _, err := pipeline.ParseMode(c.Mode); err != nil {
		bad("mode: %v", err)
	}
	if c.Rank < 1 {
		bad("rank %d: need rank ≥ 1", c.Rank)
	}
	if tol := c.Energy.Tolerance; !(tol >= energy.MinTolerance && tol < 1) {
		bad("energy.tolerance %g: need %g ≤ tol < 1", tol, energy.MinTolerance)
	}
	if c.SVD.K < 0 {
		bad("svd.k %d: need k ≥ 0", c.SVD.K)
	}
	if _, err := svdfit.ParseMethod(c.SVD.Method); err != nil {
		bad("svd.method: %v", err)
	}
	if _, err := svdfit.ParseCentering(c.SVD.Centering); err != nil {
		bad("svd.centering: %v", err)
	}
	if c.SVD.Oversamples < 0 {
		bad("svd.oversamples %d: need ≥ 0", c.SVD.Oversamples)
	}
	if c.SVD.PowerIters < 0 {
		bad("svd.power_iters %d: need ≥ 0", c.SVD.PowerIters)
	}
	if t := c.SVD.Thresholds; t.RandomizedRows < 0 || t.RandomizedCols < 0 || t.IncrementalRows < 0 || t.MaxBatch < 1 {
		bad("svd.thresholds %+v: need non-negative cut-offs and max_batch ≥ 1", t)
	}
	if q := c.QStudy.TailQuantile; !(q > 0 && q < 1) {
		bad("qstudy.tail_quantile %g: need 0 < q < 1", q)
	}
	if c.Output.Dir == "" {
		bad("output.dir: empty")
	}
	if _, err := c.Level(); err != nil {
		bad("log_level: %v", err)
	}

	return errors.Join(errs...)
}

// Level parses LogLevel ("debug", "info", "warn", "error").
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	err := l.UnmarshalText([]byte(c.LogLevel))

	return l, err
}

// PipelineOptions maps a valid c onto pipeline options. Labels are not part
// of the file; callers add pipeline.WithLabels when LabelsColumn is set.
func (c Config) PipelineOptions() ([]pipeline.Option, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	mode, _ := pipeline.ParseMode(c.Mode)
	method, _ := svdfit.ParseMethod(c.SVD.Method)
	centering, _ := svdfit.ParseCentering(c.SVD.Centering)
	t := c.SVD.Thresholds

	return []pipeline.Option{
		pipeline.WithMode(mode),
		pipeline.WithRank(c.Rank),
		pipeline.WithEnergyTolerance(c.Energy.Tolerance),
		pipeline.WithK(c.SVD.K),
		pipeline.WithCentering(centering),
		pipeline.WithTailQuantile(c.QStudy.TailQuantile),
		pipeline.WithSVDOptions(
			svdfit.WithMethod(method),
			svdfit.WithSeed(c.SVD.Seed),
			svdfit.WithOversamples(c.SVD.Oversamples),
			svdfit.WithPowerIters(c.SVD.PowerIters),
			svdfit.WithThresholds(svdfit.Thresholds{
				RandomizedRows:  t.RandomizedRows,
				RandomizedCols:  t.RandomizedCols,
				IncrementalRows: t.IncrementalRows,
				MaxBatch:        t.MaxBatch,
			}),
		),
	}, nil
}
