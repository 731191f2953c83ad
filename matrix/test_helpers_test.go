// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for Dense tests.
//   • Keep all data finite and well-formed.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/invert/matrix"
	"github.com/katalvlaran/invert/scalar"
	"github.com/stretchr/testify/require"
)

// orders lists both storage orders for table-driven tests.
var orders = []matrix.Order{matrix.RowMajor, matrix.ColMajor}

// MustDense ALLOCATES an r×c Dense or fails the test.
func MustDense[T scalar.Scalar](t testing.TB, r, c int, opts ...matrix.Option) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.NewDense[T](r, c, opts...)
	require.NoError(t, err, "NewDense(%d,%d)", r, c)

	return m
}

// NewFilledDense builds an r×c matrix from row-major literal values,
// stored in the given order.
func NewFilledDense[T scalar.Scalar](t testing.TB, r, c int, vals []T, o matrix.Order) *matrix.Dense[T] {
	t.Helper()
	require.Len(t, vals, r*c, "NewFilledDense: want %d values", r*c)
	d := MustDense[T](t, r, c, matrix.WithOrder(o))
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			MustSet(t, d, i, j, vals[i*c+j])
		}
	}

	return d
}

// MustSet WRITES m[i,j]=v or fails the test.
func MustSet[T scalar.Scalar](t testing.TB, m *matrix.Dense[T], i, j int, v T) {
	t.Helper()
	require.NoError(t, m.Set(i, j, v), "Set(%d,%d)", i, j)
}

// MustAt READS m[i,j] or fails the test.
func MustAt[T scalar.Scalar](t testing.TB, m *matrix.Dense[T], i, j int) T {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err, "At(%d,%d)", i, j)

	return v
}

// CompareExact ASSERTS strict logical equality between m and a 2D literal.
func CompareExact[T scalar.Scalar](t testing.TB, m *matrix.Dense[T], want [][]T) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "rows")
	require.Equal(t, len(want[0]), m.Cols(), "cols")
	for i := range want {
		for j := range want[i] {
			require.Equal(t, want[i][j], MustAt(t, m, i, j), "[%d,%d]", i, j)
		}
	}
}
