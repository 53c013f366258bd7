// SPDX-License-Identifier: MIT
// Package: sparse
//
// Purpose:
//   - Single source of truth for nil/shape/index checks.
//   - Return plain sentinel errors; call sites wrap with their own tag.
//
// Determinism & Performance:
//   - All checks are pure, O(1) and allocate nothing.

package sparse

// ValidateNotNil returns ErrNilMatrix if m is nil.
func ValidateNotNil(m *Matrix) error {
	if m == nil {
		return ErrNilMatrix
	}

	return nil
}

// ValidateSameShape ensures a and b are non-nil and have identical dimensions,
// as required by Add and Sub.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func ValidateSameShape(a, b *Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.rows != b.rows || a.cols != b.cols {
		return ErrDimensionMismatch
	}

	return nil
}

// ValidateMulCompatible ensures a and b are non-nil and a.Cols() == b.Rows().
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func ValidateMulCompatible(a, b *Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.cols != b.rows {
		return ErrDimensionMismatch
	}

	return nil
}

// inBounds reports whether (row, col) addresses a cell of m.
func (m *Matrix) inBounds(row, col int) bool {
	return row >= 0 && row < m.rows && col >= 0 && col < m.cols
}
