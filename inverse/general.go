// SPDX-License-Identifier: MIT
// Package inverse: the general path, any n ≥ 1.
//
// The frame is factorized once (PA = LU, partial pivoting) and all n columns
// of the identity are solved in one batched substitution. Zero pivots are not
// trapped; they surface as ±Inf/NaN in the result.

package inverse

import (
	"github.com/katalvlaran/invert/lu"
	"github.com/katalvlaran/invert/matrix"
	"github.com/katalvlaran/invert/scalar"
)

// luFrame inverts f by solving F·X = I through a partial-pivoting LU.
func luFrame[T scalar.Scalar](f *matrix.Dense[T]) (*matrix.Dense[T], error) {
	fac, err := lu.Factorize(f)
	if err != nil {
		return nil, err
	}
	id, err := matrix.NewIdentity[T](fac.Dim(), matrix.WithColMajor())
	if err != nil {
		return nil, err
	}

	return fac.Solve(id)
}
