// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for Dense constructors.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves the effective settings.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Shape-dependent checks (stride vs. dimensions) are NOT done here; the
//     constructors validate them and return ErrBadStride.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultOrder is the storage order of matrices built without WithOrder.
	DefaultOrder = RowMajor

	// DefaultStride of 0 means "contiguous": cols for RowMajor, rows for ColMajor.
	DefaultStride = 0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicOrderInvalid  = "matrix: WithOrder: order must be RowMajor or ColMajor"
	panicStrideInvalid = "matrix: WithStride: stride must be positive"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	order  Order // DefaultOrder
	stride int   // DefaultStride (0 = contiguous)
}

// WithOrder selects the storage order of the constructed matrix.
// Panics if o is not RowMajor or ColMajor.
func WithOrder(o Order) Option {
	if o != RowMajor && o != ColMajor {
		panic(panicOrderInvalid)
	}

	return func(opt *Options) { opt.order = o }
}

// WithRowMajor is shorthand for WithOrder(RowMajor).
func WithRowMajor() Option { return WithOrder(RowMajor) }

// WithColMajor is shorthand for WithOrder(ColMajor).
func WithColMajor() Option { return WithOrder(ColMajor) }

// WithStride sets the leading dimension used by NewDenseFrom.
// The stride must be at least the contiguous dimension (cols for RowMajor,
// rows for ColMajor); the constructor enforces that with ErrBadStride.
// Panics if stride <= 0.
func WithStride(stride int) Option {
	if stride <= 0 {
		panic(panicStrideInvalid)
	}

	return func(opt *Options) { opt.stride = stride }
}

// gatherOptions applies opts on top of the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{order: DefaultOrder, stride: DefaultStride}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
