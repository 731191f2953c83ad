// SPDX-License-Identifier: MIT

package inverse

import (
	"github.com/katalvlaran/invert/lu"
	"github.com/katalvlaran/invert/matrix"
	"github.com/katalvlaran/invert/scalar"
)

// IsInvertible reports whether A is numerically invertible.
// It is a separate query: Inverse never calls it.
//
// A is reported singular when it contains NaN/Inf, when LU meets an exactly
// zero pivot, or when min|U[k,k]| <= t·max|U[k,k]| with t the pivot
// threshold (WithPivotThreshold, default scalar.Precision[T]()).
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare.
func (inv *Inverter[T]) IsInvertible(a *matrix.Dense[T]) (bool, error) {
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return false, inverseErrorf(opIsInvertible, err)
	}
	if matrix.HasNonFinite(a) {
		return false, nil
	}
	fac, err := lu.Factorize(frameOf(a))
	if err != nil {
		return false, inverseErrorf(opIsInvertible, err)
	}
	if fac.IsSingular() {
		return false, nil
	}

	t := inv.opts.pivotThreshold
	if t == DefaultPivotThreshold {
		t = scalar.Precision[T]()
	}
	minAbs, maxAbs := fac.PivotMagnitudes()

	return minAbs > t*maxAbs, nil
}

// IsInvertible reports whether A is numerically invertible.
func IsInvertible[T scalar.Scalar](a *matrix.Dense[T], opts ...Option) (bool, error) {
	return New[T](opts...).IsInvertible(a)
}
