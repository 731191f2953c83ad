// SPDX-License-Identifier: MIT
// Package inverse_test contains shared fixtures.
//
// Purpose:
//   • Deterministic, well-conditioned random inputs for every scalar type.
//   • Small assertion helpers built on testify.

package inverse_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/invert/matrix"
	"github.com/katalvlaran/invert/scalar"
	"github.com/stretchr/testify/require"
)

// orders lists both storage orders for table-driven tests.
var orders = []matrix.Order{matrix.RowMajor, matrix.ColMajor}

// dims covers every closed-form size plus two LU sizes.
var dims = []int{1, 2, 3, 4, 7, 8}

// invertibleRandom returns a random n×n matrix far from singular.
// The diagonal is shifted by 3n; for float32-based types the matrix is
// further replaced by M + M·Mᴴ + a·aᴴ, which keeps it well conditioned
// while exercising large, dense entries.
func invertibleRandom[T scalar.Scalar](t testing.TB, n int, seed int64, o matrix.Order) *matrix.Dense[T] {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m, err := matrix.NewRandom[T](n, n, rng, matrix.WithOrder(o))
	require.NoError(t, err)
	shift := scalar.FromFloat[T](float64(3 * n))
	for i := 0; i < n; i++ {
		m.RawSet(i, i, m.RawAt(i, i)+shift)
	}
	if !scalar.RealIs[T](scalar.Float32) {
		return m
	}

	mh, err := matrix.Adjoint(m)
	require.NoError(t, err)
	mmh, err := matrix.Mul(m, mh)
	require.NoError(t, err)
	a, err := matrix.NewRandom[T](n, n, rng, matrix.WithOrder(o))
	require.NoError(t, err)
	ah, err := matrix.Adjoint(a)
	require.NoError(t, err)
	aah, err := matrix.Mul(a, ah)
	require.NoError(t, err)

	m, err = matrix.Add(m, mmh)
	require.NoError(t, err)
	m, err = matrix.Add(m, aah)
	require.NoError(t, err)

	return m
}

// requireApprox asserts ‖got − want‖_F ≤ prec·min(‖got‖, ‖want‖).
func requireApprox[T scalar.Scalar](t testing.TB, got, want *matrix.Dense[T], prec float64, msgAndArgs ...interface{}) {
	t.Helper()
	ok, err := matrix.IsApprox(got, want, prec)
	require.NoError(t, err)
	require.True(t, ok, msgAndArgs...)
}

// mustMul returns a·b or fails the test.
func mustMul[T scalar.Scalar](t testing.TB, a, b *matrix.Dense[T]) *matrix.Dense[T] {
	t.Helper()
	p, err := matrix.Mul(a, b)
	require.NoError(t, err)

	return p
}

// identity returns I_n in order o.
func identity[T scalar.Scalar](t testing.TB, n int, o matrix.Order) *matrix.Dense[T] {
	t.Helper()
	id, err := matrix.NewIdentity[T](n, matrix.WithOrder(o))
	require.NoError(t, err)

	return id
}

// fromRows builds a matrix from row literals in order o.
func fromRows[T scalar.Scalar](t testing.TB, rows [][]T, o matrix.Order) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.FromRows(rows, matrix.WithOrder(o))
	require.NoError(t, err)

	return m
}

// permutation returns the n×n matrix P with P[i][perm[i]] = 1.
func permutation[T scalar.Scalar](t testing.TB, perm []int, o matrix.Order) *matrix.Dense[T] {
	t.Helper()
	n := len(perm)
	p, err := matrix.NewZeros[T](n, n, matrix.WithOrder(o))
	require.NoError(t, err)
	for i, j := range perm {
		p.RawSet(i, j, 1)
	}

	return p
}
