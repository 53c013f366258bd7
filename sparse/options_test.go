// SPDX-License-Identifier: MIT

package sparse_test

import (
	"testing"

	"github.com/katalvlaran/sparsemat/sparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptions_Defaults(t *testing.T) {
	o := sparse.NewOptions()
	assert.Equal(t, sparse.DefaultMulStrategy, o.MulStrategy())
}

func TestOptions_LastWinsAndNilSkipped(t *testing.T) {
	o := sparse.NewOptions(sparse.WithRowIndexedMul(), nil, sparse.WithMulStrategy(sparse.MulColumnScan))
	assert.Equal(t, sparse.MulColumnScan, o.MulStrategy())

	o = sparse.NewOptions(nil, sparse.WithRowIndexedMul())
	assert.Equal(t, sparse.MulRowIndexed, o.MulStrategy())
}

func TestWithMulStrategy_PanicsOnUnknown(t *testing.T) {
	assert.Panics(t, func() { sparse.WithMulStrategy(sparse.MulStrategy(99)) })
}

func TestParseMulStrategy(t *testing.T) {
	cases := map[string]sparse.MulStrategy{
		"":            sparse.DefaultMulStrategy,
		"column_scan": sparse.MulColumnScan,
		"row_indexed": sparse.MulRowIndexed,
	}
	for in, want := range cases {
		got, err := sparse.ParseMulStrategy(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := sparse.ParseMulStrategy("strassen")
	require.Error(t, err)

	assert.Equal(t, "row_indexed", sparse.MulRowIndexed.String())
	assert.Equal(t, "MulStrategy(7)", sparse.MulStrategy(7).String())
}
