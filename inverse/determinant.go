// SPDX-License-Identifier: MIT

package inverse

import (
	"github.com/katalvlaran/invert/lu"
	"github.com/katalvlaran/invert/matrix"
	"github.com/katalvlaran/invert/scalar"
)

// Determinant returns det(A). Sizes 1..4 use the same closed forms as the
// cofactor inverse under StrategyAuto; other sizes use LU.
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare.
func (inv *Inverter[T]) Determinant(a *matrix.Dense[T]) (T, error) {
	var zero T
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return zero, inverseErrorf(opDeterminant, err)
	}
	f := frameOf(a) // det(Aᵀ) = det(A)
	class := ClassOf(a.Rows())
	if class.Fixed() && inv.opts.strategy == StrategyAuto {
		return detFrame(f, class), nil
	}
	fac, err := lu.Factorize(f)
	if err != nil {
		return zero, inverseErrorf(opDeterminant, err)
	}

	return fac.Det(), nil
}

// Determinant returns det(A) using the default options.
func Determinant[T scalar.Scalar](a *matrix.Dense[T]) (T, error) {
	return New[T]().Determinant(a)
}
