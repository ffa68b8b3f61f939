// SPDX-License-Identifier: MIT

package config_test

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/q4/config"
	"github.com/katalvlaran/q4/pipeline"
	"github.com/katalvlaran/q4/svdfit"
)

func TestDefault_IsValid(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "standard", cfg.Mode)
	assert.Equal(t, 1, cfg.Rank)
	assert.Equal(t, "center_l2", cfg.SVD.Centering)
	assert.Equal(t, "auto", cfg.SVD.Method)
	assert.Equal(t, uint64(42), cfg.SVD.Seed)
	assert.Equal(t, 0.997, cfg.QStudy.TailQuantile)
	assert.Equal(t, svdfit.DefaultMaxBatch, cfg.SVD.Thresholds.MaxBatch)

	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, lvl)
}

func TestParse_OverridesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.Parse([]byte(`
mode: full
rank: 2
svd:
  k: 5
  method: randomized
  thresholds:
    max_batch: 64
qstudy:
  tail_quantile: 0.99
log_level: debug
`))
	require.NoError(t, err)

	assert.Equal(t, "full", cfg.Mode)
	assert.Equal(t, 2, cfg.Rank)
	assert.Equal(t, 5, cfg.SVD.K)
	assert.Equal(t, "randomized", cfg.SVD.Method)
	assert.Equal(t, 64, cfg.SVD.Thresholds.MaxBatch)
	assert.Equal(t, svdfit.DefaultRandomizedRows, cfg.SVD.Thresholds.RandomizedRows, "unset keys keep defaults")
	assert.Equal(t, "center_l2", cfg.SVD.Centering)
	assert.Equal(t, 0.99, cfg.QStudy.TailQuantile)
}

func TestParse_Empty(t *testing.T) {
	t.Parallel()

	cfg, err := config.Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestParse_Rejects(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"unknown key": "colour: blue\n",
		"bad yaml":    "mode: [\n",
		"mode":        "mode: turbo\n",
		"rank":        "rank: 0\n",
		"tolerance":   "energy:\n  tolerance: 1.5\n",
		"k":           "svd:\n  k: -1\n",
		"method":      "svd:\n  method: qr\n",
		"centering":   "svd:\n  centering: zscore\n",
		"oversamples": "svd:\n  oversamples: -2\n",
		"power iters": "svd:\n  power_iters: -1\n",
		"thresholds":  "svd:\n  thresholds:\n    max_batch: 0\n",
		"quantile":    "qstudy:\n  tail_quantile: 1\n",
		"output dir":  "output:\n  dir: \"\"\n",
		"log level":   "log_level: loud\n",
	}
	for name, doc := range cases {
		_, err := config.Parse([]byte(doc))
		assert.ErrorIs(t, err, config.ErrInvalidConfig, name)
	}
}

func TestValidate_JoinsEveryProblem(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Rank = 0
	cfg.LogLevel = "loud"
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rank 0")
	assert.Contains(t, err.Error(), "log_level")
}

func TestLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "q4.yaml")
	require.NoError(t, os.WriteFile(path, []byte("mode: enhanced\noutput:\n  dir: runs\n"), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "enhanced", cfg.Mode)
	assert.Equal(t, "runs", cfg.Output.Dir)

	_, err = config.Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestMarshal_RoundTrip(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Mode = "full"
	cfg.LabelsColumn = "group"
	data, err := cfg.Marshal()
	require.NoError(t, err)

	back, err := config.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, cfg, back)
}

func TestPipelineOptions(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Mode = "enhanced"
	cfg.SVD.K = 2
	cfg.SVD.Method = "incremental"
	cfg.SVD.Centering = "center"
	opts, err := cfg.PipelineOptions()
	require.NoError(t, err)

	X := mat.NewDense(6, 3, []float64{
		1, 2, 0,
		2, 1, 1,
		3, 5, 2,
		4, 3, 1,
		5, 8, 0,
		6, 6, 2,
	})
	res, err := pipeline.Run(context.Background(), X, opts...)
	require.NoError(t, err)
	assert.Equal(t, pipeline.Enhanced, res.Mode)
	assert.Equal(t, 2, res.Model.K())
	assert.Equal(t, svdfit.Incremental, res.Model.Method())
	assert.Equal(t, svdfit.Center, res.Model.Centering())

	cfg.Rank = -3
	_, err = cfg.PipelineOptions()
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}
