// SPDX-License-Identifier: MIT

package inverse

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/invert/matrix"
	"github.com/katalvlaran/invert/scalar"
)

// Batch inverts every matrix of ms concurrently, at most WithConcurrency at a
// time. out[i] is the inverse of ms[i]. The first failure cancels the rest
// and is returned with the index of the failing item; a cancelled ctx stops
// items that have not started yet.
// Errors: ErrNilItem, matrix.ErrNonSquare, ctx.Err().
func (inv *Inverter[T]) Batch(ctx context.Context, ms []*matrix.Dense[T]) ([]*matrix.Dense[T], error) {
	out := make([]*matrix.Dense[T], len(ms))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(inv.opts.concurrency)
	for i, m := range ms {
		i, m := i, m
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if m == nil {
				return fmt.Errorf("item %d: %w", i, ErrNilItem)
			}
			r, err := inv.inverse(gctx, m)
			if err != nil {
				return fmt.Errorf("item %d: %w", i, err)
			}
			out[i] = r

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		err = inverseErrorf(opBatch, err)
		inv.opts.logger.LogBatch(ctx, len(ms), err)

		return nil, err
	}
	inv.opts.logger.LogBatch(ctx, len(ms), nil)

	return out, nil
}

// Batch inverts ms with the given options.
func Batch[T scalar.Scalar](ctx context.Context, ms []*matrix.Dense[T], opts ...Option) ([]*matrix.Dense[T], error) {
	return New[T](opts...).Batch(ctx, ms)
}
