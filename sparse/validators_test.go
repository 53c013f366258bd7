// SPDX-License-Identifier: MIT

package sparse_test

import (
	"testing"

	"github.com/katalvlaran/sparsemat/sparse"
	"github.com/stretchr/testify/require"
)

func TestValidators(t *testing.T) {
	a23 := sparse.MustNew(2, 3)
	a32 := sparse.MustNew(3, 2)

	require.ErrorIs(t, sparse.ValidateNotNil(nil), sparse.ErrNilMatrix)
	require.NoError(t, sparse.ValidateNotNil(a23))

	require.NoError(t, sparse.ValidateSameShape(a23, sparse.MustNew(2, 3)))
	require.ErrorIs(t, sparse.ValidateSameShape(a23, a32), sparse.ErrDimensionMismatch)
	require.ErrorIs(t, sparse.ValidateSameShape(nil, a32), sparse.ErrNilMatrix)

	require.NoError(t, sparse.ValidateMulCompatible(a23, a32))
	require.ErrorIs(t, sparse.ValidateMulCompatible(a23, a23), sparse.ErrDimensionMismatch)
	require.ErrorIs(t, sparse.ValidateMulCompatible(a23, nil), sparse.ErrNilMatrix)
}
