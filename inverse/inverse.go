// SPDX-License-Identifier: MIT
// Package inverse: entry points.
//
// Two ways to obtain A⁻¹, with bit-identical results:
//   - Inverse(A) returns a new packed matrix in A's storage order.
//   - ComputeInverse(A, out) writes into a caller-supplied n×n matrix of any
//     order or stride. out may be A itself or overlap it: the result is
//     computed in scratch storage before it is copied.
//
// Neither entry point checks for singularity; see IsInvertible.

package inverse

import (
	"context"
	"fmt"

	"github.com/katalvlaran/invert/matrix"
	"github.com/katalvlaran/invert/scalar"
)

// Inverter carries the options of an inversion. It holds no per-call state
// and is safe for concurrent use.
type Inverter[T scalar.Scalar] struct {
	opts Options
}

// New builds an Inverter for element type T.
func New[T scalar.Scalar](opts ...Option) *Inverter[T] {
	return &Inverter[T]{opts: gatherOptions(opts...)}
}

// Strategy returns the configured kernel selection.
func (inv *Inverter[T]) Strategy() Strategy { return inv.opts.strategy }

// Inverse returns A⁻¹ as a new packed matrix with A's storage order.
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare.
func (inv *Inverter[T]) Inverse(a *matrix.Dense[T]) (*matrix.Dense[T], error) {
	return inv.inverse(context.Background(), a)
}

func (inv *Inverter[T]) inverse(ctx context.Context, a *matrix.Dense[T]) (*matrix.Dense[T], error) {
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		err = inverseErrorf(opInverse, err)
		inv.opts.logger.LogInverse(ctx, 0, SizeDynamic, inv.opts.strategy, err)

		return nil, err
	}
	n := a.Rows()
	class := ClassOf(n)

	x, err := invertFrame(frameOf(a), class, inv.opts.strategy)
	if err != nil {
		err = inverseErrorf(opInverse, err)
		inv.opts.logger.LogInverse(ctx, n, class, inv.opts.strategy, err)

		return nil, err
	}
	inv.opts.logger.LogInverse(ctx, n, class, inv.opts.strategy, nil)

	return unframe(x, a.Order()), nil
}

// ComputeInverse writes A⁻¹ into out.
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare, ErrNilOutput,
// matrix.ErrDimensionMismatch (out is not n×n). On error out is untouched.
func (inv *Inverter[T]) ComputeInverse(a, out *matrix.Dense[T]) error {
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return inverseErrorf(opComputeInverse, err)
	}
	if out == nil {
		return inverseErrorf(opComputeInverse, ErrNilOutput)
	}
	if out.Rows() != a.Rows() || out.Cols() != a.Cols() {
		return inverseErrorf(opComputeInverse, fmt.Errorf("output is %dx%d, want %dx%d: %w",
			out.Rows(), out.Cols(), a.Rows(), a.Cols(), matrix.ErrDimensionMismatch))
	}

	res, err := inv.inverse(context.Background(), a)
	if err != nil {
		return inverseErrorf(opComputeInverse, err)
	}

	return out.CopyFrom(res)
}

// Inverse returns A⁻¹ using the default options.
func Inverse[T scalar.Scalar](a *matrix.Dense[T]) (*matrix.Dense[T], error) {
	return New[T]().Inverse(a)
}

// ComputeInverse writes A⁻¹ into out using the default options.
func ComputeInverse[T scalar.Scalar](a, out *matrix.Dense[T]) error {
	return New[T]().ComputeInverse(a, out)
}
