// SPDX-License-Identifier: MIT

package sparsefmt

import (
	"errors"
	"fmt"
)

// ErrMalformedInput is returned when a header or entry line violates the
// text grammar. Errors returned by Decode wrap it together with the 1-based
// line number, e.g. "sparsefmt: line 4: expected 3 fields, got 2: sparsefmt: malformed input".
var ErrMalformedInput = errors.New("sparsefmt: malformed input")

// malformedf builds an ErrMalformedInput wrapped with line context and a reason.
func malformedf(line int, format string, args ...any) error {
	return fmt.Errorf("sparsefmt: line %d: %s: %w", line, fmt.Sprintf(format, args...), ErrMalformedInput)
}

// lineErrorf attaches line context to an error coming from the matrix itself
// (e.g. sparse.ErrIndexOutOfBounds), keeping it matchable with errors.Is.
func lineErrorf(line int, err error) error {
	return fmt.Errorf("sparsefmt: line %d: %w", line, err)
}
