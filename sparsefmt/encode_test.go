// SPDX-License-Identifier: MIT

package sparsefmt_test

import (
	"bytes"
	"errors"
	"math/rand"
	"testing"

	"github.com/katalvlaran/sparsemat/sparse"
	"github.com/katalvlaran/sparsemat/sparsefmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode_CanonicalText(t *testing.T) {
	m, err := sparse.FromEntries(3, 3,
		sparse.Entry{Row: 2, Col: 1, Value: 8},
		sparse.Entry{Row: 0, Col: 2, Value: -3},
		sparse.Entry{Row: 0, Col: 0, Value: 1},
	)
	require.NoError(t, err)

	got, err := sparsefmt.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, "rows=3\ncols=3\n(0, 0, 1)\n(0, 2, -3)\n(2, 1, 8)\n", string(got))
}

func TestEncode_EmptyMatrix(t *testing.T) {
	got, err := sparsefmt.Marshal(sparse.MustNew(4, 0))
	require.NoError(t, err)
	assert.Equal(t, "rows=4\ncols=0\n", string(got))
}

func TestEncode_Nil(t *testing.T) {
	_, err := sparsefmt.Marshal(nil)
	require.ErrorIs(t, err, sparse.ErrNilMatrix)
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestEncode_WriteError(t *testing.T) {
	err := sparsefmt.Encode(failWriter{}, sparse.MustNew(1, 1))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestRoundTrip_RandomMatrices(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for n := 0; n < 30; n++ {
		rows, cols := rng.Intn(9), rng.Intn(9)
		m := sparse.MustNew(rows, cols)
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				if rng.Intn(3) == 0 {
					require.NoError(t, m.Set(i, j, rng.Int63n(2001)-1000))
				}
			}
		}

		first, err := sparsefmt.Marshal(m)
		require.NoError(t, err)
		second, err := sparsefmt.Marshal(m)
		require.NoError(t, err)
		require.True(t, bytes.Equal(first, second), "encode must be byte-stable")

		back, err := sparsefmt.Unmarshal(first)
		require.NoError(t, err)
		require.True(t, back.Equal(m), "decode(encode(M)) != M")

		again, err := sparsefmt.Marshal(back)
		require.NoError(t, err)
		require.Equal(t, string(first), string(again))
	}
}

func TestRoundTrip_ArithmeticResult(t *testing.T) {
	a, err := sparsefmt.DecodeString("rows=2\ncols=2\n(0, 0, 1)\n(0, 1, 2)\n(1, 0, 3)\n(1, 1, 4)\n")
	require.NoError(t, err)
	b, err := sparsefmt.DecodeString("rows=2\ncols=2\n(1, 1, 1)\n(0, 0, 1)\n")
	require.NoError(t, err)

	p, err := a.Mul(b)
	require.NoError(t, err)
	out, err := sparsefmt.Marshal(p)
	require.NoError(t, err)
	assert.Equal(t, "rows=2\ncols=2\n(0, 0, 1)\n(0, 1, 2)\n(1, 0, 3)\n(1, 1, 4)\n", string(out))
}
