// Package matrix provides the shared numeric groundwork for q4: the error
// taxonomy, input validators and the statistical transforms every other
// package is built on.
//
// The package works on gonum matrices (gonum.org/v1/gonum/mat) and provides:
//
//   - Validators (ValidateInput, ValidateRank, ValidateProjector, ...) that
//     return tagged sentinel errors matchable with errors.Is.
//   - Statistics (ColumnMeans, CenterColumns, SubtractColumnMeans,
//     NormalizeRowsL2, RowSquaredNorms).
//   - Facades (NewIdentity, Symmetrize, FrobeniusSq, AllClose, MaxAbsDiff).
//
// All functions are pure: inputs are never mutated and every result is a
// fresh allocation, so values are safe to share across goroutines.
package matrix
