// SPDX-License-Identifier: MIT

package sparsefmt

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/katalvlaran/sparsemat/sparse"
)

// Encode writes m to w in the sparse text format.
// Implementation:
//   - Stage 1: write "rows=<r>" and "cols=<c>".
//   - Stage 2: write one "(<row>, <col>, <value>)" line per entry of
//     m.Entries(), i.e. ascending row then column.
//
// Behavior highlights:
//   - Output for a given matrix is byte-identical across calls and runs.
//   - Every line, including the last, ends with "\n"; no blank lines.
//
// Errors:
//   - sparse.ErrNilMatrix for a nil m; write errors from w.
//
// Complexity: O(nnz·log nnz) for the ordering, O(nnz) output.
func Encode(w io.Writer, m *sparse.Matrix) error {
	if err := sparse.ValidateNotNil(m); err != nil {
		return fmt.Errorf("sparsefmt: encode: %w", err)
	}

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%s%d\n%s%d\n", headerRows, m.Rows(), headerCols, m.Cols()); err != nil {
		return fmt.Errorf("sparsefmt: encode: %w", err)
	}
	for _, e := range m.Entries() {
		if _, err := fmt.Fprintf(bw, "%s%d%s %d%s %d%s\n",
			entryOpen, e.Row, entrySep, e.Col, entrySep, e.Value, entryClose); err != nil {
			return fmt.Errorf("sparsefmt: encode: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("sparsefmt: encode: %w", err)
	}

	return nil
}

// Marshal returns the encoding of m. See Encode.
func Marshal(m *sparse.Matrix) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, m); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
