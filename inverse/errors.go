// SPDX-License-Identifier: MIT
// Package inverse: sentinel errors owned by the inversion layer.
// Shape and nil-input failures reuse the matrix sentinels (ErrNilMatrix,
// ErrNonSquare, ErrDimensionMismatch); callers match all of them via errors.Is.

package inverse

import (
	"errors"
	"fmt"
)

var (
	// ErrNilOutput indicates that ComputeInverse was given a nil destination.
	ErrNilOutput = errors.New("inverse: nil output matrix")

	// ErrNilItem indicates a nil matrix inside a Batch input slice.
	ErrNilItem = errors.New("inverse: nil batch item")
)

// Operation tags for error wrapping.
const (
	opInverse        = "Inverse"
	opComputeInverse = "ComputeInverse"
	opDeterminant    = "Determinant"
	opIsInvertible   = "IsInvertible"
	opBatch          = "Batch"
)

// inverseErrorf wraps err with an operation tag. Use only when err != nil.
func inverseErrorf(tag string, err error) error {
	return fmt.Errorf("inverse.%s: %w", tag, err)
}
