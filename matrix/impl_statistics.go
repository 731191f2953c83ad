// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the statistical transforms whose results are typically inverted
//     downstream: column centering and sample covariance (its inverse is the
//     precision / information matrix).
//
// Exposed API:
//   - CenterColumns(X) -> (Xc, means)   // subtract per-column mean
//   - Covariance(X)    -> (Cov, means)  // sample covariance of columns: (Xcᴴ Xc)/(r-1)
//
// Determinism:
//   - Fixed i→j traversal for all explicit loops.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/invert/scalar"
)

// Operation name constants for unified error wrapping.
const (
	opCenterColumns = "CenterColumns"
	opCovariance    = "Covariance"
)

// CenterColumns subtracts the per-column mean from every element.
// Implementation:
//   - Stage 1: Validate X (non-nil).
//   - Stage 2: Accumulate column sums in a deterministic pass, then divide by r.
//   - Stage 3: Build the centered copy in X's storage order.
//
// Returns the centered copy and the column means (len = cols).
// Errors: ErrNilMatrix.
// Complexity: O(r*c) time and memory.
func CenterColumns[T scalar.Scalar](X *Dense[T]) (*Dense[T], []T, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}
	r, c := X.r, X.c

	means := make([]T, c)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			means[j] += X.data[X.offset(i, j)]
		}
	}
	rT := scalar.FromFloat[T](float64(r))
	for j = 0; j < c; j++ {
		means[j] /= rT
	}

	Xc, err := NewDense[T](r, c, WithOrder(X.order))
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			Xc.data[Xc.offset(i, j)] = X.data[X.offset(i, j)] - means[j]
		}
	}

	return Xc, means, nil
}

// Covariance returns the sample covariance of the columns of X,
// Cov = (Xcᴴ·Xc)/(r-1), where Xc is X with its column means removed.
// For real T, Xcᴴ is the plain transpose. The result is c×c and Hermitian.
//
// Errors:
//   - ErrNilMatrix.
//   - ErrDimensionMismatch when X has fewer than two rows (observations).
//
// Complexity: O(r*c²).
func Covariance[T scalar.Scalar](X *Dense[T]) (*Dense[T], []T, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	if X.r < 2 {
		return nil, nil, matrixErrorf(opCovariance,
			fmt.Errorf("need at least 2 observations, have %d: %w", X.r, ErrDimensionMismatch))
	}

	Xc, means, err := CenterColumns(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	Xh, err := Adjoint(Xc)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	G, err := Mul(Xh, Xc)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	Cov, err := Scale(G, scalar.FromFloat[T](1/float64(X.r-1)))
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}

	return Cov, means, nil
}
