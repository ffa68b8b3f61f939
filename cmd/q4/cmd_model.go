// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/q4/svdfit"
)

// modelSummary is printed by "model inspect".
type modelSummary struct {
	svdfit.Meta
	ExplainedVar      []float64 `json:"explained_var"`
	TotalExplainedVar float64   `json:"total_explained_var"`
}

func modelCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "model",
		Short: "Inspect saved SVD models",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "inspect MODEL_DIR",
		Short: "Print a saved model's metadata and explained variance as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			model, err := svdfit.Load(args[0])
			if err != nil {
				return err
			}
			ev := model.ExplainedVar()
			data, err := json.MarshalIndent(modelSummary{
				Meta:              model.Meta(),
				ExplainedVar:      ev,
				TotalExplainedVar: floats.Sum(ev),
			}, "", "  ")
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))

			return err
		},
	})

	return cmd
}
