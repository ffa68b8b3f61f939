// Package artifact reads input tables and writes the on-disk record of a run.
//
// Input tables are CSV files whose first record is a header; every other
// column is parsed as float64, except an optional label column that is kept
// as strings for supervised projector learning.
//
// A run directory holds:
//
//	Q_keep.csv      kept part of every row, header = input columns
//	Q_discard.csv   centered variant part, header = input columns
//	Q_study.json    run metadata, projector shapes, q_study, energy_split
//	                and the optional svd_analysis / qstudy_analysis sections
//	er.json         energy report
//	qstudy.json     flat Q_study feature record (full mode)
//	svd_model/      persisted SVD model (enhanced and full modes)
//	MANIFEST.json   index of the files above, written last
//
// A failed run leaves ERROR.json instead of MANIFEST.json. Each file is
// written atomically; the directory as a whole is not.
package artifact
