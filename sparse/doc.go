// SPDX-License-Identifier: MIT

// Package sparse implements two-dimensional integer matrices that store only
// their non-zero entries.
//
// 🚀 What is it?
//
//	A dictionary-of-keys matrix: a fixed rows×cols shape plus a map from
//	(row, col) to a non-zero int64. Every cell that is not in the map is 0.
//	Memory is proportional to the number of non-zero entries (nnz), never to
//	rows·cols.
//
// ✨ Key features:
//   - bounds-checked At/Set that return sentinel errors instead of panicking
//   - Set is the single writer: writing 0 deletes the entry, so a stored zero
//     can never exist
//   - Add/Sub over the union of non-zero keys, O(nnz(A) + nnz(B))
//   - Mul driven by the non-zeros of the left operand, with two strategies
//     (column scan or row-indexed right operand) selectable via options
//   - canonical entry order (row asc, then col asc) for deterministic output
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/sparsemat/sparse"
//
//	a, _ := sparse.New(2, 2)
//	_ = a.Set(0, 1, 5)
//	b, _ := sparse.New(2, 2)
//	_ = b.Set(0, 1, -5)
//	c, err := a.Add(b) // c.NNZ() == 0
//
// Concurrency:
//
//	A Matrix is not synchronized. Any number of goroutines may read the same
//	matrix (At, Add, Mul, Entries, ...) as long as nobody calls Set on it at
//	the same time. Arithmetic never mutates its operands.
//
// See example_test.go for runnable examples.
package sparse
