// SPDX-License-Identifier: MIT

// Package sparse: domain types shared by the matrix, its operations and the
// text codec.
package sparse

// Coord is the key of the entry store. Equality and hashing are structural,
// so Coord can be used directly as a map key.
type Coord struct {
	Row int
	Col int
}

// Entry is one explicitly stored cell. Value is never 0 for entries obtained
// from a Matrix.
type Entry struct {
	Row   int
	Col   int
	Value int64
}

// Coord returns the key part of the entry.
func (e Entry) Coord() Coord { return Coord{Row: e.Row, Col: e.Col} }

// Matrix is a rows×cols integer matrix holding only its non-zero entries.
//   - rows, cols are fixed at construction.
//   - entries never contains a zero value and never a key outside the shape;
//     Set is the only code path that writes into it.
type Matrix struct {
	rows, cols int
	entries    map[Coord]int64
}
