// Package sparsemat is a small toolkit for integer matrices in which almost
// every entry is zero.
//
// 🚀 What is sparsemat?
//
//	A dictionary-of-keys matrix plus a plain-text interchange format:
//		• sparse/     — the Matrix type: bounds-checked At/Set, Add, Sub, Mul
//		• sparsefmt/  — "rows=/cols=/(r, c, v)" reader & writer, optional zstd files
//		• cmd/sparsecalc — menu- or flag-driven front end over both packages
//
// ✨ Why sparse?
//
//   - Memory proportional to the number of non-zero entries, never rows·cols
//   - Add/Sub in O(nnz(A)+nnz(B)); Mul driven by the non-zeros of A
//   - A stored zero is impossible by construction: Set deletes on 0
//   - Deterministic text output (row asc, col asc) for byte-stable round trips
//
// Errors are package-level sentinels (sparse.ErrIndexOutOfBounds,
// sparse.ErrDimensionMismatch, sparsefmt.ErrMalformedInput, ...) matched with
// errors.Is. Library packages never log or print.
package sparsemat
