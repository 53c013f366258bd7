// SPDX-License-Identifier: MIT

package sparse_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/sparsemat/sparse"
)

func benchOperands(b *testing.B, n int, density float64) (*sparse.Matrix, *sparse.Matrix) {
	rng := rand.New(rand.NewSource(1))

	return randomMatrix(b, rng, n, n, density), randomMatrix(b, rng, n, n, density)
}

func BenchmarkAdd_1000_1pct(b *testing.B) {
	x, y := benchOperands(b, 1000, 0.01)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = x.Add(y)
	}
}

func BenchmarkMul_ColumnScan_500_1pct(b *testing.B) {
	x, y := benchOperands(b, 500, 0.01)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = x.Mul(y)
	}
}

func BenchmarkMul_RowIndexed_500_1pct(b *testing.B) {
	x, y := benchOperands(b, 500, 0.01)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = x.Mul(y, sparse.WithRowIndexedMul())
	}
}
