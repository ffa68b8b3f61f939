// SPDX-License-Identifier: MIT

// Command q4 splits tabular data into stable and variant subspaces, fits an
// adaptive SVD model and writes the run artifacts.
//
//	q4 run data.csv --mode full --out runs/2024-01
//	q4 project runs/2024-01/svd_model new.csv --out scores.csv
//	q4 model inspect runs/2024-01/svd_model
//	q4 config print
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
