// Package projector learns a complementary pair of orthogonal projectors
// (Ps, Pv) that split a feature space into a stable "semantic" subspace and a
// residual "variant" subspace.
//
// What & Why:
//
//	Given an n×d observation matrix X, the variant basis Bv (d×r) is taken from
//	the leading right singular vectors of either
//	  • the column-centered X (unsupervised: directions of largest variance), or
//	  • the matrix of class-mean differences (supervised: directions that best
//	    separate the labelled groups).
//	Then Pv = Bv·Bvᵀ (symmetrised) and Ps = I − Pv. Deriving Ps from Pv, never
//	independently, makes Ps + Pv = I hold exactly.
//
// Usage:
//
//	pair, err := projector.Learn(X, projector.WithRank(2))
//	if err != nil { ... }
//	if err := pair.Check(projector.DefaultTolerance); err != nil { ... }
//
// Complexity:
//
//	O(n·d·min(n,d)) for the SVD plus O(d²·r) to form Pv.
package projector
