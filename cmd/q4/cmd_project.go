// SPDX-License-Identifier: MIT

package main

import (
	"io"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/q4/artifact"
	"github.com/katalvlaran/q4/internal/atomicio"
	"github.com/katalvlaran/q4/svdfit"
)

func projectCmd(a *app) *cobra.Command {
	var (
		out string
		raw bool
	)
	cmd := &cobra.Command{
		Use:   "project MODEL_DIR INPUT.csv",
		Short: "Project a CSV table onto a saved SVD model",
		Long: "Project normalises INPUT with the model's centering convention and " +
			"writes the k score columns z0..z{k-1}. With --raw only the model mean " +
			"is subtracted.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			model, err := svdfit.Load(args[0])
			if err != nil {
				return err
			}
			tab, err := artifact.ReadCSVFile(args[1])
			if err != nil {
				return err
			}

			var Z *mat.Dense
			if raw {
				Z, err = svdfit.Project(tab.Data, model)
			} else {
				var c *svdfit.Centered
				if c, err = model.Normalize(tab.Data); err == nil {
					Z, err = svdfit.ProjectCentered(c, model)
				}
			}
			if err != nil {
				return err
			}
			rows, _ := Z.Dims()
			a.logger.Debug("projected", "rows", rows, "k", model.K(), "raw", raw)

			header := scoreHeader(model.K())
			if out == "" {
				return artifact.WriteCSV(cmd.OutOrStdout(), header, Z)
			}

			return atomicio.Write(out, 0o644, func(w io.Writer) error {
				return artifact.WriteCSV(w, header, Z)
			})
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "output CSV (default stdout)")
	cmd.Flags().BoolVar(&raw, "raw", false, "subtract the model mean only, skipping the centering convention")

	return cmd
}

func scoreHeader(k int) []string {
	h := artifact.DefaultHeader(k)
	for i := range h {
		h[i] = "z" + h[i][1:]
	}

	return h
}
