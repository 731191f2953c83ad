// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/invert/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidateBinarySameShape covers nil inputs, matching and mismatched dimensions.
func TestValidateBinarySameShape(t *testing.T) {
	t.Parallel()

	dense := func(r, c int) *matrix.Dense[float64] {
		m, err := matrix.NewDense[float64](r, c)
		require.NoError(t, err)
		return m
	}

	tests := []struct {
		name    string
		a, b    *matrix.Dense[float64]
		wantErr error
	}{
		{"both nil", nil, nil, matrix.ErrNilMatrix},
		{"first nil", nil, dense(2, 2), matrix.ErrNilMatrix},
		{"second nil", dense(2, 2), nil, matrix.ErrNilMatrix},
		{"equal 2x3", dense(2, 3), dense(2, 3), nil},
		{"row mismatch", dense(2, 3), dense(3, 3), matrix.ErrDimensionMismatch},
		{"col mismatch", dense(2, 3), dense(2, 4), matrix.ErrDimensionMismatch},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateBinarySameShape(tc.a, tc.b)
			if tc.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				require.Truef(t, errors.Is(err, tc.wantErr),
					"expected errors.Is(%v, %v)", err, tc.wantErr)
			}
		})
	}
}

func TestValidateSquareNonNil(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, matrix.ValidateSquareNonNil[complex128](nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateSquareNonNil(MustDense[complex128](t, 2, 3)), matrix.ErrNonSquare)
	require.NoError(t, matrix.ValidateSquareNonNil(MustDense[complex128](t, 3, 3)))

	// A transposed view of a non-square matrix is still non-square.
	require.ErrorIs(t, matrix.ValidateSquare(MustDense[float32](t, 4, 1).T()), matrix.ErrNonSquare)
}

func TestValidateOutputShape(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, matrix.ValidateOutputShape[float64](nil, 2, 2), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateOutputShape(MustDense[float64](t, 2, 3), 2, 2), matrix.ErrDimensionMismatch)
	require.NoError(t, matrix.ValidateOutputShape(MustDense[float64](t, 2, 3), 2, 3))
}
