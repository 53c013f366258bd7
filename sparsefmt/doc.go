// SPDX-License-Identifier: MIT

// Package sparsefmt reads and writes sparse.Matrix values in the plain-text
// sparse format:
//
//	rows=<integer>
//	cols=<integer>
//	(<row>, <col>, <value>)
//	(<row>, <col>, <value>)
//	...
//
// The two header lines are mandatory, in this order, exactly once. Every
// further non-blank line is one integer triple in parentheses; whitespace
// around fields is tolerated, anything else (wrong field count, missing
// parentheses, decimals, non-numeric fields) is ErrMalformedInput. Blank
// lines between entries are skipped. Coordinates outside the header shape
// surface as sparse.ErrIndexOutOfBounds.
//
// Decoding is all-or-nothing: on any error no matrix is returned.
//
// Encode writes entries in canonical order (ascending row, then column) and
// never emits blank lines or zero values, so Encode∘Decode is byte-stable.
//
// ReadFile and WriteFile add transparent zstd compression for paths ending
// in ".zst".
package sparsefmt
