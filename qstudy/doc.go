// Package qstudy summarises projected scores Z (n×k) into a small, fixed
// schema of anisotropy features, and lays a table of such records out in 2-D.
//
// Per score dimension j:
//
//	tau[j]       q-quantile of |Z[:,j]| (linear interpolation between order statistics)
//	frac_tail[j] fraction of rows with |Z[:,j]| > tau[j]
//
// On isotropic data frac_tail ≈ 1 − q; a systematic departure signals energy
// concentrated along a few directions. At most MaxReported dimensions are
// reported individually, so records from models of different rank stay
// comparable.
//
// Embed projects a table of records onto its two leading principal axes and
// Heatmap bins the embedding, averaging frac_tail_mean per cell.
package qstudy
