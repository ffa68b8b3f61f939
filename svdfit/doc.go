// Package svdfit fits, persists and applies a low-rank linear model (mu,
// components, explained variance) to pre-centered data.
//
// Fitting picks one of three SVD back-ends:
//
//	Truncated   exact thin SVD (gonum), small and medium inputs;
//	Incremental batched rank-k updates over a seeded row permutation, bounded working set;
//	Randomized  Gaussian range finder with power iterations, large inputs.
//
// Auto selects by shape using Thresholds. Every method yields the same
// contract: k×d near-orthonormal component rows ordered by decreasing
// captured variance, a non-negative decreasing explained-variance vector and a
// deterministic sign per component.
//
// Centering is explicit. Fit takes the centering vector mu as a required
// argument, and Normalize returns a *Centered token that records both mu and
// the convention (Center or CenterL2). ProjectCentered refuses a token whose
// centering differs from the model's, where Project simply subtracts Mu.
//
// Models are immutable once built; Save writes mu.npy, components.npy,
// explained_var.npy and meta.json, each through a temp file and a rename.
package svdfit
