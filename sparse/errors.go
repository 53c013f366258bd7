// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set.
// Every exported operation returns one of these sentinels, possibly wrapped
// with call-site context via fmt.Errorf("...: %w", ErrX). Callers match with
// errors.Is. User input never causes a panic.

package sparse

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimension is returned by New when rows or cols is negative.
	ErrInvalidDimension = errors.New("sparse: invalid dimension")

	// ErrIndexOutOfBounds indicates that a row or column index lies outside
	// [0,rows) × [0,cols). At and Set MUST return this, not panic.
	ErrIndexOutOfBounds = errors.New("sparse: index out of bounds")

	// ErrDimensionMismatch indicates incompatible operand shapes: Add/Sub with
	// different shapes, or Mul where a.Cols() != b.Rows().
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Matrix was passed as an operand.
	ErrNilMatrix = errors.New("sparse: nil matrix")
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"
	ctxSet = "Set"
	ctxNew = "New"

	opAdd = "Add"
	opSub = "Sub"
	opMul = "Mul"
)

// cellErrorf wraps err with the method tag and the offending coordinates,
// e.g. "Matrix.Set(5,0): sparse: index out of bounds".
func cellErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// opErrorf wraps err with an operation tag, e.g. "Mul: sparse: dimension mismatch".
func opErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
