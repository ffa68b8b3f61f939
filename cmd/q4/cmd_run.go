// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/q4/artifact"
	"github.com/katalvlaran/q4/pipeline"
)

func runCmd(a *app) *cobra.Command {
	var (
		out         string
		mode        string
		rank        int
		k           int
		labelsCol   string
		metricsFile string
	)
	cmd := &cobra.Command{
		Use:   "run INPUT.csv",
		Short: "Analyse a CSV table and write a run directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if flags.Changed("out") {
				a.cfg.Output.Dir = out
			}
			if flags.Changed("mode") {
				a.cfg.Mode = mode
			}
			if flags.Changed("rank") {
				a.cfg.Rank = rank
			}
			if flags.Changed("k") {
				a.cfg.SVD.K = k
			}
			if flags.Changed("labels-column") {
				a.cfg.LabelsColumn = labelsCol
			}

			return a.run(cmd, args[0], metricsFile)
		},
	}
	f := cmd.Flags()
	f.StringVar(&out, "out", "", "run directory (default from config)")
	f.StringVar(&mode, "mode", "", "processing mode: standard, enhanced, full")
	f.IntVar(&rank, "rank", 0, "variant subspace rank")
	f.IntVar(&k, "k", 0, "SVD components (0 = min(50, rows, cols))")
	f.StringVar(&labelsCol, "labels-column", "", "CSV column holding class labels (supervised projectors)")
	f.StringVar(&metricsFile, "metrics-file", "", "write Prometheus metrics in text format to this file")

	return cmd
}

func (a *app) run(cmd *cobra.Command, input, metricsFile string) error {
	opts, err := a.cfg.PipelineOptions()
	if err != nil {
		return err
	}
	mode, _ := pipeline.ParseMode(a.cfg.Mode)
	dir := a.cfg.Output.Dir

	var readOpts []artifact.ReadOption
	if a.cfg.LabelsColumn != "" {
		readOpts = append(readOpts, artifact.WithLabelColumn(a.cfg.LabelsColumn))
	}
	tab, err := artifact.ReadCSVFile(input, readOpts...)
	if err != nil {
		return a.fail(dir, input, mode, err)
	}
	if tab.Labels != nil {
		opts = append(opts, pipeline.WithLabels(tab.Labels))
	}

	reg := prometheus.NewRegistry()
	metrics, err := pipeline.NewMetrics(reg)
	if err != nil {
		return err
	}
	opts = append(opts, pipeline.WithLogger(a.logger), pipeline.WithMetrics(metrics))

	res, runErr := pipeline.Run(cmd.Context(), tab.Data, opts...)
	if metricsFile != "" {
		if err = prometheus.WriteToTextfile(metricsFile, reg); err != nil {
			a.logger.Warn("metrics export failed", "file", metricsFile, "err", err)
		}
	}
	if runErr != nil {
		return a.fail(dir, input, mode, runErr)
	}

	man, err := artifact.WriteRun(dir, artifact.Run{Input: input, Header: tab.Header, Result: res})
	if err != nil {
		return a.fail(dir, input, mode, err)
	}
	a.logger.Info("run written", "dir", dir, "files", len(man.Files))
	fmt.Fprintf(cmd.OutOrStdout(), "run %s %s: energy_split=%.6f rate=%.4f dir=%s\n",
		man.RunID, man.Status, res.Energy.EnergySplit, res.Quadrants.Study().Rate, dir)

	return nil
}

// fail records cause as ERROR.json in dir and returns it.
func (a *app) fail(dir, input string, mode pipeline.Mode, cause error) error {
	if err := artifact.WriteError(dir, input, mode, cause); err != nil {
		a.logger.Error("cannot write error report", "dir", dir, "err", err)
	}

	return cause
}
