// Package energy verifies that a projector pair conserves signal energy.
//
// For an orthogonal pair (Ps, Pv) with Ps + Pv = I, Pythagoras gives
//
//	‖X·Ps‖²_F + ‖X·Pv‖²_F = ‖X‖²_F,
//
// so the ratio computed by Split is ≈ 1. Check compares the two sides relative
// to ‖X‖²_F; a deviation beyond the tolerance means the pair double counts or
// loses energy, and Check reports that as a hard failure
// (ErrConsistencyCheckFailed), never as a warning.
package energy
