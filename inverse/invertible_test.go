// SPDX-License-Identifier: MIT
package inverse_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/invert/inverse"
	"github.com/katalvlaran/invert/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsInvertible(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rows [][]float64
		opts []inverse.Option
		want bool
	}{
		{name: "identity", rows: [][]float64{{1, 0}, {0, 1}}, want: true},
		{name: "rank one", rows: [][]float64{{1, 2}, {2, 4}}, want: false},
		{name: "zero", rows: [][]float64{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}}, want: false},
		{name: "near singular", rows: [][]float64{{1, 1}, {1, 1 + 1e-14}}, want: false},
		{
			name: "near singular, loose threshold",
			rows: [][]float64{{1, 1}, {1, 1 + 1e-14}},
			opts: []inverse.Option{inverse.WithPivotThreshold(1e-16)},
			want: true,
		},
		{
			name: "well conditioned, strict threshold",
			rows: [][]float64{{2, 1}, {1, 2}},
			opts: []inverse.Option{inverse.WithPivotThreshold(0.9)},
			want: false,
		},
		{name: "NaN entry", rows: [][]float64{{1, 0}, {0, math.NaN()}}, want: false},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			for _, o := range orders {
				got, err := inverse.IsInvertible(fromRows(t, tc.rows, o), tc.opts...)
				require.NoError(t, err)
				assert.Equal(t, tc.want, got, "%s", o)
			}
		})
	}
}

// IsInvertible never changes what Inverse returns.
func TestIsInvertible_Independent(t *testing.T) {
	t.Parallel()

	a := fromRows(t, [][]complex64{{1, 2}, {2, 4}}, matrix.ColMajor)
	ok, err := inverse.IsInvertible(a)
	require.NoError(t, err)
	assert.False(t, ok)

	got, err := inverse.Inverse(a)
	require.NoError(t, err)
	assert.True(t, matrix.HasNonFinite(got))
}

func TestIsInvertible_Errors(t *testing.T) {
	t.Parallel()

	_, err := inverse.IsInvertible[float32](nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	rect, err := matrix.NewDense[float32](1, 2)
	require.NoError(t, err)
	_, err = inverse.IsInvertible(rect)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}
