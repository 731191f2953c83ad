// SPDX-License-Identifier: MIT
// Package matrix: constructors for common shapes.
//
// Purpose:
//   - Provide thin, intention-revealing entry points (identity, zeros, random).
//   - Every constructor accepts the same ...Option as NewDense, so callers pick
//     the storage order once.

package matrix

import (
	"math/rand"

	"github.com/katalvlaran/invert/scalar"
)

// NewZeros returns a new zero-initialized Dense of size rows×cols.
// Thin alias of NewDense with an intention-revealing name.
func NewZeros[T scalar.Scalar](rows, cols int, opts ...Option) (*Dense[T], error) {
	return NewDense[T](rows, cols, opts...)
}

// NewIdentity returns I_n (ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity[T scalar.Scalar](n int, opts ...Option) (*Dense[T], error) {
	id, err := NewDense[T](n, n, opts...)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	for i := 0; i < n; i++ {
		id.data[id.offset(i, i)] = 1
	}

	return id, nil
}

// ZerosLike returns a new zero matrix with the same shape and order as m.
func ZerosLike[T scalar.Scalar](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	return NewDense[T](m.r, m.c, WithOrder(m.order))
}

// IdentityLike returns I with dimension = Rows(m) and m's order; requires square m.
func IdentityLike[T scalar.Scalar](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}

	return NewIdentity[T](m.r, WithOrder(m.order))
}

// NewRandom returns a rows×cols matrix whose components are drawn uniformly
// from [-1, 1] using rng. Elements are drawn in logical i→j order, so two
// matrices built from equal seeds are logically equal whatever their order.
func NewRandom[T scalar.Scalar](rows, cols int, rng *rand.Rand, opts ...Option) (*Dense[T], error) {
	m, err := NewDense[T](rows, cols, opts...)
	if err != nil {
		return nil, matrixErrorf(opRandom, err)
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			m.data[m.offset(i, j)] = scalar.Random[T](rng)
		}
	}

	return m, nil
}
