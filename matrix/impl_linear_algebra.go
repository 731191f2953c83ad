// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on Dense matrices of any
// scalar type: element-wise addition and subtraction, matrix multiplication,
// transpose, adjoint and scalar scaling. All functions perform strict
// fail-fast validation and return clear errors on dimension mismatches.
//
// Notes:
//   - Results are freshly allocated and packed; operands are never mutated.
//   - Unless stated otherwise the result uses the storage order of the first
//     operand, and loops run in the fixed logical order i→j(→k).

package matrix

import (
	"fmt"

	"github.com/katalvlaran/invert/scalar"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opAdjoint   = "Adjoint"
	opScale     = "Scale"
	opIdentity  = "Identity"
	opRandom    = "Random"
	opAllClose  = "AllClose"
	opIsApprox  = "IsApprox"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Fast path: both operands packed with the same order → single flat loop.
func addSub[T scalar.Scalar](a, b *Dense[T], sign T, opTag string) (*Dense[T], error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	res, err := NewDense[T](a.r, a.c, WithOrder(a.order))
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	if a.order == b.order && a.IsContiguous() && b.IsContiguous() {
		n := a.r * a.c
		for idx := 0; idx < n; idx++ {
			res.data[idx] = a.data[idx] + sign*b.data[idx]
		}

		return res, nil
	}

	var i, j int
	for i = 0; i < a.r; i++ {
		for j = 0; j < a.c; j++ {
			res.data[res.offset(i, j)] = a.data[a.offset(i, j)] + sign*b.data[b.offset(i, j)]
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Add[T scalar.Scalar](a, b *Dense[T]) (*Dense[T], error) { return addSub(a, b, 1, opAdd) }

// Sub computes the element-wise difference C = A - B.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Sub[T scalar.Scalar](a, b *Dense[T]) (*Dense[T], error) { return addSub(a, b, -1, opSub) }

// Mul performs standard matrix multiplication C = A × B.
// The inner product for each (i,j) accumulates k = 0..n-1 in order.
// Errors: ErrNilMatrix, ErrDimensionMismatch (a.Cols != b.Rows).
// Complexity: O(r*n*c).
func Mul[T scalar.Scalar](a, b *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if a.c != b.r {
		return nil, matrixErrorf(opMul, fmt.Errorf("%dx%d · %dx%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch))
	}
	res, err := NewDense[T](a.r, b.c, WithOrder(a.order))
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var (
		i, j, k int
		sum     T
	)
	for i = 0; i < a.r; i++ {
		for j = 0; j < b.c; j++ {
			sum = 0
			for k = 0; k < a.c; k++ {
				sum += a.data[a.offset(i, k)] * b.data[b.offset(k, j)]
			}
			res.data[res.offset(i, j)] = sum
		}
	}

	return res, nil
}

// Transpose returns a packed copy of mᵀ.
// The copy flips the storage order, so for a packed m the backing slice of
// the result is element-for-element identical to m's. This makes Transpose
// the materialized form of the zero-copy view m.T().
func Transpose[T scalar.Scalar](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	out, err := NewDense[T](m.c, m.r, WithOrder(m.order.Flip()))
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	if err = out.CopyFrom(m.T()); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	return out, nil
}

// Adjoint returns the conjugate transpose mᴴ (equal to Transpose for real T).
// Same storage convention as Transpose.
func Adjoint[T scalar.Scalar](m *Dense[T]) (*Dense[T], error) {
	out, err := Transpose(m)
	if err != nil {
		return nil, matrixErrorf(opAdjoint, err)
	}
	if !scalar.IsComplex[T]() {
		return out, nil
	}
	for idx := range out.data {
		out.data[idx] = scalar.Conj(out.data[idx])
	}

	return out, nil
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
func Scale[T scalar.Scalar](m *Dense[T], alpha T) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	out := m.Clone()
	for idx := range out.data {
		out.data[idx] *= alpha
	}

	return out, nil
}
