// SPDX-License-Identifier: MIT

package sparsefmt

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/sparsemat/sparse"
)

const (
	headerRows = "rows="
	headerCols = "cols="

	entryOpen  = "("
	entryClose = ")"
	entrySep   = ","
	entryArity = 3

	maxLineBytes = 1 << 20
)

// decodeState is the position of the decoder in the grammar.
//
//	stateRowsHeader → stateColsHeader → stateEntries → stateDone
//
// Any validation failure moves to stateFailed, which is terminal.
type decodeState int

const (
	stateRowsHeader decodeState = iota
	stateColsHeader
	stateEntries
	stateDone
	stateFailed
)

// decoder holds the state of one Decode call. It is never shared.
type decoder struct {
	state decodeState
	line  int
	rows  int
	m     *sparse.Matrix
}

// Decode parses the sparse text format from r.
// Implementation:
//   - Stage 1: scan r line by line, feeding each line to the state machine.
//   - Stage 2: at EOF, require that both headers were seen.
//
// Errors:
//   - ErrMalformedInput for any grammar violation (including a missing header).
//   - sparse.ErrIndexOutOfBounds for an entry outside the declared shape.
//   - read errors from r, wrapped.
//
// On error the partially built matrix is discarded and nil is returned.
//
// Complexity: O(len(input)) time, O(nnz) space.
func Decode(r io.Reader) (*sparse.Matrix, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	d := &decoder{state: stateRowsHeader}
	for sc.Scan() {
		d.line++
		if err := d.feed(sc.Text()); err != nil {
			d.state = stateFailed

			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		d.state = stateFailed

		return nil, fmt.Errorf("sparsefmt: read: %w", err)
	}

	return d.finish()
}

// Unmarshal decodes data. See Decode.
func Unmarshal(data []byte) (*sparse.Matrix, error) { return Decode(bytes.NewReader(data)) }

// DecodeString decodes s. See Decode.
func DecodeString(s string) (*sparse.Matrix, error) { return Decode(strings.NewReader(s)) }

// feed advances the state machine by one raw line.
func (d *decoder) feed(raw string) error {
	text := strings.TrimSpace(raw)

	switch d.state {
	case stateRowsHeader:
		n, err := parseHeader(d.line, text, headerRows)
		if err != nil {
			return err
		}
		d.rows = n
		d.state = stateColsHeader

	case stateColsHeader:
		n, err := parseHeader(d.line, text, headerCols)
		if err != nil {
			return err
		}
		m, err := sparse.New(d.rows, n)
		if err != nil {
			return lineErrorf(d.line, err) // unreachable: parseHeader rejects negatives
		}
		d.m = m
		d.state = stateEntries

	case stateEntries:
		if text == "" {
			return nil
		}
		row, col, val, err := parseEntry(d.line, text)
		if err != nil {
			return err
		}
		if err = d.m.Set(row, col, val); err != nil {
			return lineErrorf(d.line, err)
		}

	default:
		return fmt.Errorf("sparsefmt: line %d: decoder in terminal state %d", d.line, d.state)
	}

	return nil
}

// finish validates the end-of-input state and hands out the matrix.
func (d *decoder) finish() (*sparse.Matrix, error) {
	switch d.state {
	case stateRowsHeader:
		d.state = stateFailed

		return nil, malformedf(d.line+1, "missing %q header", headerRows)
	case stateColsHeader:
		d.state = stateFailed

		return nil, malformedf(d.line+1, "missing %q header", headerCols)
	}
	d.state = stateDone

	return d.m, nil
}

// parseHeader parses "<key><non-negative integer>" with optional whitespace
// around the number.
func parseHeader(line int, text, key string) (int, error) {
	if !strings.HasPrefix(text, key) {
		return 0, malformedf(line, "expected %q header", key)
	}
	val := strings.TrimSpace(text[len(key):])
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, malformedf(line, "%s value %q is not an integer", strings.TrimSuffix(key, "="), val)
	}
	if n < 0 {
		return 0, malformedf(line, "%s value %d is negative", strings.TrimSuffix(key, "="), n)
	}

	return n, nil
}

// parseEntry parses "(<int>, <int>, <int>)". text is already trimmed.
func parseEntry(line int, text string) (row, col int, val int64, err error) {
	if len(text) < len(entryOpen)+len(entryClose) ||
		!strings.HasPrefix(text, entryOpen) || !strings.HasSuffix(text, entryClose) {
		return 0, 0, 0, malformedf(line, "entry %q is not enclosed in parentheses", text)
	}
	fields := strings.Split(text[len(entryOpen):len(text)-len(entryClose)], entrySep)
	if len(fields) != entryArity {
		return 0, 0, 0, malformedf(line, "expected %d fields, got %d", entryArity, len(fields))
	}

	var nums [entryArity]int64
	for i, f := range fields {
		f = strings.TrimSpace(f)
		switch {
		case f == "":
			return 0, 0, 0, malformedf(line, "field %d is empty", i+1)
		case strings.Contains(f, "."):
			return 0, 0, 0, malformedf(line, "field %d %q is not an integer (decimal point)", i+1, f)
		}
		bits := 64
		if i < 2 {
			bits = strconv.IntSize // row and col index into int
		}
		if nums[i], err = strconv.ParseInt(f, 10, bits); err != nil {
			return 0, 0, 0, malformedf(line, "field %d %q is not an integer", i+1, f)
		}
	}

	return int(nums[0]), int(nums[1]), nums[2], nil
}
