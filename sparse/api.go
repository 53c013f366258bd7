// SPDX-License-Identifier: MIT
// Package sparse — public API facades.
//
// Purpose:
//   - Thin, intention-revealing entry points; each delegates to the canonical kernel.
//   - No logic duplication: facades never change loop orders or validation.

package sparse

// MustNew is New for shapes known to be valid at compile time (tests,
// fixtures). It panics on a negative dimension.
func MustNew(rows, cols int) *Matrix {
	m, err := New(rows, cols)
	if err != nil {
		panic(err)
	}

	return m
}

// FromEntries builds a rows×cols matrix and applies every entry through Set,
// in order. Later entries overwrite earlier ones; zero values clear cells.
//
// Errors:
//   - ErrInvalidDimension, ErrIndexOutOfBounds (first offending entry).
//
// Complexity: O(len(entries)).
func FromEntries(rows, cols int, entries ...Entry) (*Matrix, error) {
	m, err := New(rows, cols)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		if err = m.Set(e.Row, e.Col, e.Value); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Identity returns the n×n identity matrix (n non-zero entries).
// Complexity: O(n).
func Identity(n int) (*Matrix, error) {
	m, err := New(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		_ = m.Set(i, i, 1) // in range by construction
	}

	return m, nil
}

// Sum is an alias for Add: element-wise a + b.
func Sum(a, b *Matrix) (*Matrix, error) { return Add(a, b) }

// Diff is an alias for Sub: element-wise a − b.
func Diff(a, b *Matrix) (*Matrix, error) { return Sub(a, b) }

// Product is an alias for Mul: matrix product a × b.
func Product(a, b *Matrix, opts ...Option) (*Matrix, error) { return Mul(a, b, opts...) }
