// SPDX-License-Identifier: MIT

package pipeline

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/q4/energy"
	"github.com/katalvlaran/q4/matrix"
	"github.com/katalvlaran/q4/projector"
	"github.com/katalvlaran/q4/qstudy"
	"github.com/katalvlaran/q4/quadrant"
	"github.com/katalvlaran/q4/svdfit"
)

// Result is everything one run produced. Optional parts are nil when the
// mode skips them.
type Result struct {
	RunID     string
	Mode      Mode
	Rows      int
	Cols      int
	Pair      *projector.Pair
	Quadrants *quadrant.Result
	Energy    energy.Report
	Model     *svdfit.Model    // Enhanced, Full
	Scores    *mat.Dense       // Enhanced, Full: rows×k
	QStudy    *qstudy.Features // Full
	Started   time.Time
	Finished  time.Time
}

// Run executes one analysis of X.
// Implementation:
//   - Stage 1 (Validate): X non-empty and finite; assign a run id.
//   - Stage 2 (Branches, concurrent): projector → quadrant → energy check, and
//     in Enhanced/Full normalise → fit → centered projection.
//   - Stage 3 (Full only): Q_study features of the scores.
//
// The context is checked between stages. Any stage error aborts the run; an
// energy deviation beyond tolerance is such an error (energy.ErrConsistencyCheckFailed).
//
// Under svdfit.CenterL2 (the default) Scores, and so the QStudy energy and
// mean_absV features, are computed on the unit-norm rows Vn, not on X − mu.
func Run(ctx context.Context, X mat.Matrix, opts ...Option) (res *Result, err error) {
	o := gatherOptions(opts...)
	defer func() { o.metrics.observeRun(o.mode, err) }()

	// Stage 1: validate.
	if err = matrix.ValidateInput(X); err != nil {
		return nil, matrix.WrapOp("Run", err, ErrInvalidInput)
	}
	n, d := X.Dims()
	res = &Result{RunID: uuid.NewString(), Mode: o.mode, Rows: n, Cols: d, Started: time.Now().UTC()}
	log := o.logger.With("run_id", res.RunID, "mode", o.mode.String())
	log.Info("q4 run started", "rows", n, "cols", d)

	// Stage 2: branches.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return runProjectorBranch(gctx, X, o, res) })
	if o.mode.withSVD() {
		g.Go(func() error { return runSVDBranch(gctx, X, o, res) })
	}
	if err = g.Wait(); err != nil {
		log.Error("q4 run failed", "err", err)
		return nil, err
	}

	// Stage 3: Q_study.
	if o.mode.withQStudy() {
		if err = ctx.Err(); err != nil {
			return nil, err
		}
		start := time.Now()
		if res.QStudy, err = qstudy.Compute(res.Scores, qstudy.WithTailQuantile(o.tailQuantile)); err != nil {
			return nil, err
		}
		o.metrics.observeStage(StageQStudy, start)
	}

	res.Finished = time.Now().UTC()
	o.metrics.observeResult(res)
	log.Info("q4 run completed",
		"energy_split", res.Energy.EnergySplit,
		"rate", res.Quadrants.Study().Rate,
		"elapsed", res.Finished.Sub(res.Started))

	return res, nil
}

func runProjectorBranch(ctx context.Context, X mat.Matrix, o Options, res *Result) error {
	start := time.Now()
	popts := []projector.Option{projector.WithRank(o.rank)}
	if o.labels != nil {
		popts = append(popts, projector.WithLabels(o.labels))
	}
	pair, err := projector.Learn(X, popts...)
	if err != nil {
		return err
	}
	o.metrics.observeStage(StageProjector, start)

	if err = ctx.Err(); err != nil {
		return err
	}
	start = time.Now()
	quads, err := quadrant.Split(X, pair)
	if err != nil {
		return err
	}
	o.metrics.observeStage(StageQuadrant, start)

	if err = ctx.Err(); err != nil {
		return err
	}
	start = time.Now()
	rep, err := energy.Check(X, pair, energy.WithTolerance(o.energyTolerance))
	if err != nil {
		return err
	}
	o.metrics.observeStage(StageEnergy, start)

	res.Pair, res.Quadrants, res.Energy = pair, quads, rep

	return nil
}

func runSVDBranch(ctx context.Context, X mat.Matrix, o Options, res *Result) error {
	start := time.Now()
	c, err := svdfit.Normalize(X, o.centering)
	if err != nil {
		return err
	}
	n, d := X.Dims()
	k := o.k
	if k == 0 {
		k = min(DefaultMaxK, n, d)
	}
	sopts := append([]svdfit.Option{svdfit.WithLogger(o.logger)}, o.svdOptions...)
	model, err := svdfit.FitCentered(c, k, sopts...)
	if err != nil {
		return err
	}
	o.metrics.observeStage(StageSVD, start)

	if err = ctx.Err(); err != nil {
		return err
	}
	start = time.Now()
	Z, err := svdfit.ProjectCentered(c, model)
	if err != nil {
		return err
	}
	o.metrics.observeStage(StageProject, start)

	res.Model, res.Scores = model, Z

	return nil
}
