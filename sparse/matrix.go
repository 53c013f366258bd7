// SPDX-License-Identifier: MIT

// Package sparse - dictionary-of-keys storage & safe accessors.
//
// Purpose:
//   - Keep only non-zero cells in a map keyed by Coord.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Centralize the "no stored zero" invariant in Set.
//   - Offer a canonical (row, col) ordering for anything that must be deterministic.
//
// Complexity quicksheet:
//   - New: O(1); At/Set: O(1) average; NNZ: O(1); Clone: O(nnz);
//     Entries: O(nnz·log nnz); Equal: O(nnz); Render: O(rows·cols).
package sparse

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtCellSep = " "
	_fmtRowSep  = "\n"
)

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix)(nil)

// New creates an empty rows×cols matrix.
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrInvalidDimension.
//   - Stage 2: allocate an empty entry map.
//
// Behavior highlights:
//   - 0×0, 0×n and n×0 shapes are legal; every At/Set on them is out of bounds.
//   - No storage proportional to rows·cols is ever allocated.
//
// Errors:
//   - ErrInvalidDimension (negative rows or cols), wrapped with the "New" tag.
//
// Complexity:
//   - Time O(1), Space O(1).
func New(rows, cols int) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxNew, rows, cols, ErrInvalidDimension)
	}

	return &Matrix{
		rows:    rows,
		cols:    cols,
		entries: make(map[Coord]int64),
	}, nil
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.cols }

// NNZ returns the number of explicitly stored (non-zero) entries.
func (m *Matrix) NNZ() int { return len(m.entries) }

// At returns the value at (row, col), or 0 when no entry is stored there.
// Returns ErrIndexOutOfBounds if row∉[0,Rows()) or col∉[0,Cols()).
// Complexity: O(1) average.
func (m *Matrix) At(row, col int) (int64, error) {
	if !m.inBounds(row, col) {
		return 0, cellErrorf(ctxAt, row, col, ErrIndexOutOfBounds)
	}

	return m.entries[Coord{Row: row, Col: col}], nil
}

// Set assigns v at (row, col).
// Implementation:
//   - Stage 1: bounds check; ErrIndexOutOfBounds on failure (matrix untouched).
//   - Stage 2: v == 0 deletes the key (no-op if absent); otherwise insert/overwrite.
//
// Behavior highlights:
//   - This is the only writer of the entry map, so no code path can store a zero.
//
// Complexity:
//   - Time O(1) average.
func (m *Matrix) Set(row, col int, v int64) error {
	if !m.inBounds(row, col) {
		return cellErrorf(ctxSet, row, col, ErrIndexOutOfBounds)
	}
	key := Coord{Row: row, Col: col}
	if v == 0 {
		delete(m.entries, key)

		return nil
	}
	m.entries[key] = v

	return nil
}

// Entries returns all stored entries in canonical order: ascending row, then
// ascending column. The slice is freshly allocated; mutating it does not
// affect m.
// Complexity: O(nnz·log nnz).
func (m *Matrix) Entries() []Entry {
	out := make([]Entry, 0, len(m.entries))
	for k, v := range m.entries {
		out = append(out, Entry{Row: k.Row, Col: k.Col, Value: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}

		return out[i].Col < out[j].Col
	})

	return out
}

// Clone returns a deep copy of m. The copy shares no storage with m.
// Complexity: O(nnz).
func (m *Matrix) Clone() *Matrix {
	cp := make(map[Coord]int64, len(m.entries))
	for k, v := range m.entries {
		cp[k] = v
	}

	return &Matrix{rows: m.rows, cols: m.cols, entries: cp}
}

// Equal reports whether m and other have the same shape and exactly the same
// non-zero entries. Two nil matrices are equal; nil never equals a non-nil one.
// Complexity: O(nnz).
func (m *Matrix) Equal(other *Matrix) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.rows != other.rows || m.cols != other.cols {
		return false
	}
	if len(m.entries) != len(other.entries) {
		return false
	}
	for k, v := range m.entries {
		if ov, ok := other.entries[k]; !ok || ov != v {
			return false
		}
	}

	return true
}

// Render returns the dense textual grid of m: one line per row, cells
// separated by a single space, rows separated by "\n" (no trailing newline).
// This is a display format; sparsefmt owns the persisted one.
// Complexity: O(rows·cols) time, which is bounded by display needs only.
func (m *Matrix) Render() string {
	var (
		sb   strings.Builder
		i, j int
		v    int64
	)
	for i = 0; i < m.rows; i++ {
		if i > 0 {
			sb.WriteString(_fmtRowSep)
		}
		for j = 0; j < m.cols; j++ {
			if j > 0 {
				sb.WriteString(_fmtCellSep)
			}
			v, _ = m.At(i, j) // indices are in range by construction of the loops
			sb.WriteString(strconv.FormatInt(v, 10))
		}
	}

	return sb.String()
}

// String implements fmt.Stringer via Render.
func (m *Matrix) String() string { return m.Render() }
