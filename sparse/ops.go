// SPDX-License-Identifier: MIT

// Package sparse - arithmetic kernels.
//
// Purpose:
//   - Add/Sub over the union of non-zero keys of both operands.
//   - Mul driven by the non-zeros of the left operand.
//   - Never mutate operands; every result is a freshly allocated Matrix.
//   - Build every result exclusively through Set, so a result can never hold a zero.
//
// Determinism:
//   - Map iteration order is random, but integer + and * are associative and
//     commutative (including on int64 wrap-around), so results are identical
//     across runs. Use Entries() for an ordered view.
package sparse

import "fmt"

// addSub computes C = A + sign·B over the union of non-zero keys.
// Implementation:
//   - Stage 1: validate shapes (nil → ErrNilMatrix, shape → ErrDimensionMismatch).
//   - Stage 2: for every key of A, write A[k] + sign·B[k]; Set drops zero sums.
//   - Stage 3: for every key of B absent from A, write sign·B[k].
//
// Complexity:
//   - Time O(nnz(A) + nnz(B)), Space O(nnz(C)).
func addSub(a, b *Matrix, sign int64, opTag string) (*Matrix, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, opErrorf(opTag, err)
	}
	res, err := New(a.rows, a.cols)
	if err != nil {
		return nil, opErrorf(opTag, err)
	}

	var av, bv int64
	for k := range a.entries {
		if av, err = a.At(k.Row, k.Col); err != nil {
			return nil, opErrorf(opTag, err)
		}
		if bv, err = b.At(k.Row, k.Col); err != nil {
			return nil, opErrorf(opTag, err)
		}
		if err = res.Set(k.Row, k.Col, av+sign*bv); err != nil {
			return nil, opErrorf(opTag, err)
		}
	}
	for k, v := range b.entries {
		if _, seen := a.entries[k]; seen {
			continue // already combined above
		}
		if err = res.Set(k.Row, k.Col, sign*v); err != nil {
			return nil, opErrorf(opTag, err)
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Matrix.
//
// Errors:
//   - ErrNilMatrix (nil operand), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(nnz(A) + nnz(B)); never O(rows·cols).
func Add(a, b *Matrix) (*Matrix, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh Matrix.
//
// Errors:
//   - ErrNilMatrix (nil operand), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(nnz(A) + nnz(B)); never O(rows·cols).
func Sub(a, b *Matrix) (*Matrix, error) { return addSub(a, b, -1, opSub) }

// Mul computes the matrix product C = A × B, shape A.Rows() × B.Cols().
// Implementation:
//   - Stage 1: validate A,B non-nil and A.Cols() == B.Rows().
//   - Stage 2: for each non-zero A[i,k], find the non-zeros B[k,j] using the
//     configured MulStrategy and accumulate A[i,k]·B[k,j] into C[i,j] via At/Set.
//
// Behavior highlights:
//   - The numeric result equals the naive triple sum Σ_k A[i,k]·B[k,j].
//   - Cells whose partial sums cancel to 0 are removed by Set and re-added if a
//     later term makes them non-zero again.
//
// Errors:
//   - ErrNilMatrix (nil operand), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - MulColumnScan: Time O(nnz(A)·cols(B)).
//   - MulRowIndexed: Time O(nnz(B) + nnz(A)·avg-nnz-per-row(B)), Space O(nnz(B)).
func Mul(a, b *Matrix, opts ...Option) (*Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, opErrorf(opMul, err)
	}
	res, err := New(a.rows, b.cols)
	if err != nil {
		return nil, opErrorf(opMul, err)
	}

	o := gatherOptions(opts...)
	switch o.mulStrategy {
	case MulRowIndexed:
		err = mulRowIndexed(a, b, res)
	default:
		err = mulColumnScan(a, b, res)
	}
	if err != nil {
		return nil, opErrorf(opMul, err)
	}

	return res, nil
}

// mulColumnScan probes every column of B for each non-zero of A.
func mulColumnScan(a, b, res *Matrix) error {
	var (
		j   int
		bv  int64
		err error
	)
	for k, av := range a.entries {
		for j = 0; j < b.cols; j++ {
			if bv, err = b.At(k.Col, j); err != nil {
				return err
			}
			if bv == 0 {
				continue
			}
			if err = accumulate(res, k.Row, j, av*bv); err != nil {
				return err
			}
		}
	}

	return nil
}

// mulRowIndexed groups B's non-zeros by row once, then visits only row k of B
// for each non-zero A[i,k].
func mulRowIndexed(a, b, res *Matrix) error {
	byRow := make(map[int][]Entry)
	for k, v := range b.entries {
		byRow[k.Row] = append(byRow[k.Row], Entry{Row: k.Row, Col: k.Col, Value: v})
	}

	var err error
	for k, av := range a.entries {
		for _, e := range byRow[k.Col] {
			if err = accumulate(res, k.Row, e.Col, av*e.Value); err != nil {
				return err
			}
		}
	}

	return nil
}

// accumulate performs the read-accumulate-write res[i,j] += term through At/Set.
func accumulate(res *Matrix, i, j int, term int64) error {
	cur, err := res.At(i, j)
	if err != nil {
		return fmt.Errorf("accumulate: %w", err)
	}

	return res.Set(i, j, cur+term)
}

// Add returns m + other. See the package-level Add.
func (m *Matrix) Add(other *Matrix) (*Matrix, error) { return Add(m, other) }

// Sub returns m - other. See the package-level Sub.
func (m *Matrix) Sub(other *Matrix) (*Matrix, error) { return Sub(m, other) }

// Mul returns m × other. See the package-level Mul.
func (m *Matrix) Mul(other *Matrix, opts ...Option) (*Matrix, error) {
	return Mul(m, other, opts...)
}
