// SPDX-License-Identifier: MIT
// Package sparse_test contains test helpers.
//
// Purpose:
//   • Small deterministic fixtures for kernels and accessors.
//   • A dense reference product to check Mul against the textbook definition.

package sparse_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/sparsemat/sparse"
	"github.com/stretchr/testify/require"
)

// e is shorthand for an Entry literal in table-driven fixtures.
func e(r, c int, v int64) sparse.Entry { return sparse.Entry{Row: r, Col: c, Value: v} }

// mustFrom builds a matrix from entries or fails the test.
func mustFrom(t testing.TB, rows, cols int, entries ...sparse.Entry) *sparse.Matrix {
	t.Helper()
	m, err := sparse.FromEntries(rows, cols, entries...)
	require.NoError(t, err)

	return m
}

// randomMatrix fills roughly density·rows·cols cells with values in [-9, 9].
// Zero draws are passed to Set as well, which exercises the delete path.
func randomMatrix(t testing.TB, rng *rand.Rand, rows, cols int, density float64) *sparse.Matrix {
	t.Helper()
	m, err := sparse.New(rows, cols)
	require.NoError(t, err)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if rng.Float64() < density {
				require.NoError(t, m.Set(i, j, int64(rng.Intn(19)-9)))
			}
		}
	}

	return m
}

// denseProduct multiplies a and b with the naive i→j→k triple loop over At.
func denseProduct(t testing.TB, a, b *sparse.Matrix) *sparse.Matrix {
	t.Helper()
	res, err := sparse.New(a.Rows(), b.Cols())
	require.NoError(t, err)
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < b.Cols(); j++ {
			var sum int64
			for k := 0; k < a.Cols(); k++ {
				av, err := a.At(i, k)
				require.NoError(t, err)
				bv, err := b.At(k, j)
				require.NoError(t, err)
				sum += av * bv
			}
			require.NoError(t, res.Set(i, j, sum))
		}
	}

	return res
}

// assertNoStoredZero checks the core invariant through the public surface.
func assertNoStoredZero(t testing.TB, m *sparse.Matrix) {
	t.Helper()
	for _, en := range m.Entries() {
		require.NotZero(t, en.Value, "stored zero at (%d,%d)", en.Row, en.Col)
		require.True(t, en.Row >= 0 && en.Row < m.Rows(), "row %d out of shape", en.Row)
		require.True(t, en.Col >= 0 && en.Col < m.Cols(), "col %d out of shape", en.Col)
	}
}
