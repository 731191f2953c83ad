// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Element-wise comparisons and norms used to verify numeric results:
//     exact Equal, element-wise AllClose, and the relative IsApprox.
//
// Determinism & Performance:
//   - Fixed logical loop order i→j; no allocations.
//   - Comparisons are logical, so operands may have different storage orders.

package matrix

import (
	"math"

	"github.com/katalvlaran/invert/scalar"
)

// Equal reports whether a and b have the same shape and bit-for-bit equal
// logical elements (+0 and -0 compare equal; NaN never does).
// nil matrices are never equal.
func Equal[T scalar.Scalar](a, b *Dense[T]) bool {
	if a == nil || b == nil || a.r != b.r || a.c != b.c {
		return false
	}
	for i := 0; i < a.r; i++ {
		for j := 0; j < a.c; j++ {
			if a.data[a.offset(i, j)] != b.data[b.offset(i, j)] {
				return false
			}
		}
	}

	return true
}

// FrobeniusNorm returns sqrt(Σ |m[i,j]|²).
func FrobeniusNorm[T scalar.Scalar](m *Dense[T]) float64 {
	var sum, v float64
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			v = scalar.Abs(m.data[m.offset(i, j)])
			sum += v * v
		}
	}

	return math.Sqrt(sum)
}

// HasNonFinite reports whether any element of m has a NaN or ±Inf component.
func HasNonFinite[T scalar.Scalar](m *Dense[T]) bool {
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			if !scalar.IsFinite(m.data[m.offset(i, j)]) {
				return true
			}
		}
	}

	return false
}

// validTolerance rejects NaN/Inf and normalizes negative tolerances.
func validTolerance(tol float64) (float64, error) {
	if math.IsNaN(tol) || math.IsInf(tol, 0) {
		return 0, ErrNaNInf
	}

	return math.Abs(tol), nil
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if every element satisfies the relation; (false,nil) otherwise.
// NaN never matches. Negative tolerances are normalized to their absolute value.
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf (bad tolerance).
func AllClose[T scalar.Scalar](a, b *Dense[T], rtol, atol float64) (bool, error) {
	var err error
	if rtol, err = validTolerance(rtol); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if atol, err = validTolerance(atol); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err = ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	var av, bv T
	for i := 0; i < a.r; i++ {
		for j := 0; j < a.c; j++ {
			av, bv = a.data[a.offset(i, j)], b.data[b.offset(i, j)]
			if !(scalar.Abs(av-bv) <= atol+rtol*scalar.Abs(bv)) {
				return false, nil
			}
		}
	}

	return true, nil
}

// IsApprox reports whether ‖a − b‖_F ≤ prec · min(‖a‖_F, ‖b‖_F), the relative
// fuzzy comparison used to verify results whose scale is unknown.
// Two zero matrices are approximately equal only if they are exactly equal.
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf (bad prec).
func IsApprox[T scalar.Scalar](a, b *Dense[T], prec float64) (bool, error) {
	var err error
	if prec, err = validTolerance(prec); err != nil {
		return false, matrixErrorf(opIsApprox, err)
	}
	if err = ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opIsApprox, err)
	}

	var sum, d float64
	for i := 0; i < a.r; i++ {
		for j := 0; j < a.c; j++ {
			d = scalar.Abs(a.data[a.offset(i, j)] - b.data[b.offset(i, j)])
			sum += d * d
		}
	}
	diff := math.Sqrt(sum)
	bound := prec * math.Min(FrobeniusNorm(a), FrobeniusNorm(b))

	return diff <= bound, nil
}
