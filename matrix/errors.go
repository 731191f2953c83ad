// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix,
// lu and inverse packages. Kernels return these sentinels (optionally wrapped
// with an operation tag) and tests match them via errors.Is. User-triggered
// error conditions never panic.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Wrap with
// fmt.Errorf("Op: %w", ErrX) at the call boundary when context matters;
// callers still match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape/stride -> square -> dimension mismatch -> index.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates that a row or column index is outside valid range.
	// Public indexers (At/Set/View) return this, not panic.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Add with different shapes, Mul where a.Cols != b.Rows, or an output
	// buffer whose shape differs from the result.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrBadStride indicates a stride smaller than the contiguous dimension
	// of the requested storage order.
	ErrBadStride = errors.New("matrix: invalid stride")

	// ErrDataLength indicates that a backing slice is too short for the
	// requested shape and stride.
	ErrDataLength = errors.New("matrix: data length does not match shape")

	// ErrNaNInf signals a NaN or ±Inf where a finite value is required
	// (tolerances of fuzzy comparisons).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)
