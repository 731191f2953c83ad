// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/invert/matrix"
	"github.com/stretchr/testify/require"
)

// ---------- 1. Add / Sub ----------

func TestAddSub_MixedOrders(t *testing.T) {
	t.Parallel()

	for _, oa := range orders {
		for _, ob := range orders {
			a := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6}, oa)
			b := NewFilledDense(t, 2, 3, []float64{6, 5, 4, 3, 2, 1}, ob)

			sum, err := matrix.Add(a, b)
			require.NoError(t, err)
			require.Equal(t, oa, sum.Order())
			CompareExact(t, sum, [][]float64{{7, 7, 7}, {7, 7, 7}})

			diff, err := matrix.Sub(a, b)
			require.NoError(t, err)
			CompareExact(t, diff, [][]float64{{-5, -3, -1}, {1, 3, 5}})
		}
	}
}

func TestAddSub_Errors(t *testing.T) {
	t.Parallel()

	_, err := matrix.Add(nil, MustDense[float32](t, 1, 1))
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.Sub(MustDense[float32](t, 2, 1), MustDense[float32](t, 1, 2))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// ---------- 2. Mul ----------

func TestMul_Known(t *testing.T) {
	t.Parallel()

	for _, oa := range orders {
		for _, ob := range orders {
			a := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6}, oa)
			b := NewFilledDense(t, 3, 2, []float64{7, 8, 9, 10, 11, 12}, ob)

			c, err := matrix.Mul(a, b)
			require.NoError(t, err)
			require.Equal(t, oa, c.Order())
			CompareExact(t, c, [][]float64{{58, 64}, {139, 154}})
		}
	}
}

func TestMul_Complex(t *testing.T) {
	t.Parallel()

	a := NewFilledDense(t, 2, 2, []complex128{1i, 1, 0, 2}, matrix.RowMajor)
	b := NewFilledDense(t, 2, 2, []complex128{1i, 0, 1, 1 - 1i}, matrix.ColMajor)

	c, err := matrix.Mul(a, b)
	require.NoError(t, err)
	// row0: [i·i + 1·1, i·0 + 1·(1-i)] = [0, 1-i]; row1: [2, 2-2i]
	CompareExact(t, c, [][]complex128{{0, 1 - 1i}, {2, 2 - 2i}})
}

func TestMul_Errors(t *testing.T) {
	t.Parallel()

	_, err := matrix.Mul(MustDense[float64](t, 2, 3), MustDense[float64](t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Mul(MustDense[float64](t, 2, 3), nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMul_Identity(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(11))
	for _, o := range orders {
		a, err := matrix.NewRandom[complex64](5, 5, rng, matrix.WithOrder(o))
		require.NoError(t, err)
		id, err := matrix.IdentityLike(a)
		require.NoError(t, err)

		left, err := matrix.Mul(id, a)
		require.NoError(t, err)
		right, err := matrix.Mul(a, id)
		require.NoError(t, err)
		require.True(t, matrix.Equal(a, left))
		require.True(t, matrix.Equal(a, right))
	}
}

// ---------- 3. Transpose / Adjoint ----------

// The materialized transpose keeps the backing buffer byte-for-byte and flips the order.
func TestTranspose_BufferIdentity(t *testing.T) {
	t.Parallel()

	for _, o := range orders {
		m := NewFilledDense(t, 2, 3, []float32{1, 2, 3, 4, 5, 6}, o)
		tr, err := matrix.Transpose(m)
		require.NoError(t, err)

		require.Equal(t, o.Flip(), tr.Order())
		require.Equal(t, m.RawData(), tr.RawData())
		require.True(t, matrix.Equal(m.T(), tr))
		CompareExact(t, tr, [][]float32{{1, 4}, {2, 5}, {3, 6}})
	}

	_, err := matrix.Transpose[float32](nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestTranspose_OfView(t *testing.T) {
	t.Parallel()

	m := NewFilledDense(t, 3, 3, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}, matrix.RowMajor)
	v, err := m.View(0, 1, 2, 2)
	require.NoError(t, err)

	tr, err := matrix.Transpose(v)
	require.NoError(t, err)
	require.True(t, tr.IsContiguous())
	CompareExact(t, tr, [][]float64{{2, 5}, {3, 6}})
}

func TestAdjoint(t *testing.T) {
	t.Parallel()

	m := NewFilledDense(t, 2, 2, []complex128{1 + 1i, 2, 3i, 4 - 2i}, matrix.RowMajor)
	h, err := matrix.Adjoint(m)
	require.NoError(t, err)
	CompareExact(t, h, [][]complex128{{1 - 1i, -3i}, {2, 4 + 2i}})

	r := NewFilledDense(t, 1, 2, []float64{1, 2}, matrix.ColMajor)
	rh, err := matrix.Adjoint(r)
	require.NoError(t, err)
	CompareExact(t, rh, [][]float64{{1}, {2}})
}

// ---------- 4. Scale ----------

func TestScale(t *testing.T) {
	t.Parallel()

	m := NewFilledDense(t, 2, 2, []complex64{1, 2i, -1, 0}, matrix.ColMajor)
	s, err := matrix.Scale(m, 2i)
	require.NoError(t, err)
	require.Equal(t, matrix.ColMajor, s.Order())
	CompareExact(t, s, [][]complex64{{2i, -4}, {-2i, 0}})

	// input untouched
	require.Equal(t, complex64(1), MustAt(t, m, 0, 0))

	_, err = matrix.Scale[float64](nil, 2)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// ---------- 5. Constructors ----------

func TestNewIdentity(t *testing.T) {
	t.Parallel()

	for _, o := range orders {
		id, err := matrix.NewIdentity[complex128](3, matrix.WithOrder(o))
		require.NoError(t, err)
		CompareExact(t, id, [][]complex128{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}})
	}

	_, err := matrix.NewIdentity[float64](0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.IdentityLike(MustDense[float64](t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestZerosLike(t *testing.T) {
	t.Parallel()

	z, err := matrix.ZerosLike(MustDense[float32](t, 2, 4, matrix.WithColMajor()))
	require.NoError(t, err)
	require.Equal(t, 2, z.Rows())
	require.Equal(t, 4, z.Cols())
	require.Equal(t, matrix.ColMajor, z.Order())

	z2, err := matrix.NewZeros[float32](1, 1)
	require.NoError(t, err)
	require.Equal(t, float32(0), MustAt(t, z2, 0, 0))
}

// Equal seeds give logically equal matrices whatever the order.
func TestNewRandom_Deterministic(t *testing.T) {
	t.Parallel()

	a, err := matrix.NewRandom[complex128](4, 3, rand.New(rand.NewSource(5)))
	require.NoError(t, err)
	b, err := matrix.NewRandom[complex128](4, 3, rand.New(rand.NewSource(5)), matrix.WithColMajor())
	require.NoError(t, err)
	require.True(t, matrix.Equal(a, b))
	require.False(t, matrix.HasNonFinite(a))
}
