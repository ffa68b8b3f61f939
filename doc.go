// Package q4 splits tabular data into a stable ("semantic") subspace and a
// variant subspace, and summarises what lives in the variant part.
//
// 🚀 What is q4?
//
//	For X (n×d, rows = observations) it brings together:
//		• Projectors: learn Pv onto the dominant (or class-separating) directions, Ps = I − Pv
//		• Quadrants: split every row into Q_keep and the centered Q_discard, plus Q_study
//		• Energy: ‖X·Ps‖² + ‖X·Pv‖² ≈ ‖X‖², enforced as a hard self-check
//		• Adaptive SVD: truncated, randomized or incremental by data scale, persistable as .npy
//		• Q_study: anisotropy features of the SVD scores, PCA embedding and heatmaps
//
// ✨ Guarantees
//
//   - Pure functions over gonum matrices; inputs are never mutated
//   - Immutable results, safe to share between goroutines
//   - Deterministic given the input and the seed
//   - One error taxonomy (matrix/errors.go) checked with errors.Is
//
// Packages:
//
//	matrix/    validators, column statistics, projector plumbing, shared sentinels
//	projector/ Learn (unsupervised or supervised) and invariant checks
//	quadrant/  Split into Keep / Variant / Discard and Study {mu_V, rate}
//	energy/    Split ratio and Check against a tolerance
//	svdfit/    Fit, Project, ProjectCentered, Save / Load
//	qstudy/    Compute, Embed, NewHeatmap
//	pipeline/  Run: the modes standard, enhanced and full
//	artifact/  CSV tables and the run directory layout
//	config/    YAML run configuration
//	cmd/q4     command-line front end
//
// Quick example:
//
//	res, err := pipeline.Run(ctx, X, pipeline.WithMode(pipeline.Full))
//	if err != nil { ... }
//	_, err = artifact.WriteRun("runs/today", artifact.Run{Input: "data.csv", Result: res})
//
//	go install github.com/katalvlaran/q4/cmd/q4@latest
package q4
