// Package quadrant applies a learned projector pair to data and splits every
// row into its kept (stable) and discarded (variant) parts.
//
// For X (n×d) and a pair (Ps, Pv):
//
//	S       = X·Psᵀ               kept part, "Q_keep"
//	V       = X·Pvᵀ               variant part
//	Discard = V − colmean(V)      centered variant part, "Q_discard"
//	Study   = {MuV: colmean(V), Rate: fraction of rows with ‖Discard row‖₂ > RateThreshold}
//
// Split is pure: inputs are never mutated and the returned Result is
// read-only, so it can be shared between goroutines.
//
// Complexity: O(n·d²) for the two products plus O(n·d) for the statistics.
package quadrant
