// Package pipeline runs one complete q4 analysis over an in-memory matrix.
//
// Modes:
//
//	Standard  projector pair, quadrant split, energy check
//	Enhanced  Standard plus an SVD model on the CenterL2-normalised input and its scores
//	Full      Enhanced plus the Q_study feature record of the scores
//
// The projector branch and the SVD branch share only the read-only input and
// run concurrently under one errgroup; the first failure cancels the other.
// Run is stateless and safe to call from several goroutines; Metrics, when
// supplied, is the only shared sink.
package pipeline
