// SPDX-License-Identifier: MIT
// Package inverse: run-time dispatch and storage-order handling.
//
// Kernels never see storage order. They work on the storage frame of the
// input: the column-major reading of its backing buffer. For a ColMajor A
// that is A itself, for a RowMajor A it is the zero-copy view Aᵀ. The frame
// is inverted into a packed ColMajor result X, and X (or the view Xᵀ) is
// handed back in A's order. Since inverse(Aᵀ) = inverse(A)ᵀ, this returns
// A⁻¹ in both cases, and transposing A before or after inversion produces
// the same backing buffer bit for bit.

package inverse

import (
	"fmt"

	"github.com/katalvlaran/invert/matrix"
	"github.com/katalvlaran/invert/scalar"
)

// SizeClass is the dimension tag the dispatcher switches on.
type SizeClass uint8

const (
	// SizeDynamic marks a size served by the LU path.
	SizeDynamic SizeClass = iota
	Size1
	Size2
	Size3
	Size4
)

// ClassOf maps a dimension to its class: 1..4 are fixed, everything else dynamic.
func ClassOf(n int) SizeClass {
	if n >= 1 && n <= 4 {
		return SizeClass(n)
	}

	return SizeDynamic
}

// Fixed reports whether c has a closed-form kernel.
func (c SizeClass) Fixed() bool { return c != SizeDynamic }

// String implements fmt.Stringer.
func (c SizeClass) String() string {
	switch c {
	case SizeDynamic:
		return "dynamic"
	case Size1, Size2, Size3, Size4:
		return fmt.Sprintf("%dx%d", int(c), int(c))
	default:
		return fmt.Sprintf("SizeClass(%d)", uint8(c))
	}
}

// frameOf returns the column-major reading of a's storage.
func frameOf[T scalar.Scalar](a *matrix.Dense[T]) *matrix.Dense[T] {
	if a.Order() == matrix.ColMajor {
		return a
	}

	return a.T()
}

// unframe returns x (packed ColMajor, inverse of the frame) in order o.
func unframe[T scalar.Scalar](x *matrix.Dense[T], o matrix.Order) *matrix.Dense[T] {
	if o == matrix.ColMajor {
		return x
	}

	return x.T()
}

// invertFrame inverts the frame f with the kernel picked by class and strategy.
// The result is packed ColMajor.
func invertFrame[T scalar.Scalar](f *matrix.Dense[T], class SizeClass, s Strategy) (*matrix.Dense[T], error) {
	if class.Fixed() && s == StrategyAuto {
		return cofactorFrame(f, class)
	}

	return luFrame(f)
}

// cofactorFrame runs the closed-form kernel of the given class on f.
func cofactorFrame[T scalar.Scalar](f *matrix.Dense[T], class SizeClass) (*matrix.Dense[T], error) {
	n := int(class)
	x, err := matrix.NewDense[T](n, n, matrix.WithColMajor())
	if err != nil {
		return nil, err
	}
	switch class {
	case Size1:
		var a Mat1[T]
		loadRows(f, n, func(i int) []T { return a[i][:] })
		b := a.Inverse()
		storeRows(x, n, func(i int) []T { return b[i][:] })
	case Size2:
		var a Mat2[T]
		loadRows(f, n, func(i int) []T { return a[i][:] })
		b := a.Inverse()
		storeRows(x, n, func(i int) []T { return b[i][:] })
	case Size3:
		var a Mat3[T]
		loadRows(f, n, func(i int) []T { return a[i][:] })
		b := a.Inverse()
		storeRows(x, n, func(i int) []T { return b[i][:] })
	case Size4:
		var a Mat4[T]
		loadRows(f, n, func(i int) []T { return a[i][:] })
		b := a.Inverse()
		storeRows(x, n, func(i int) []T { return b[i][:] })
	default:
		return nil, fmt.Errorf("no closed form for class %s: %w", class, matrix.ErrInvalidDimensions)
	}

	return x, nil
}

// detFrame evaluates the closed-form determinant of the given class on f.
func detFrame[T scalar.Scalar](f *matrix.Dense[T], class SizeClass) T {
	n := int(class)
	switch class {
	case Size1:
		var a Mat1[T]
		loadRows(f, n, func(i int) []T { return a[i][:] })
		return a.Det()
	case Size2:
		var a Mat2[T]
		loadRows(f, n, func(i int) []T { return a[i][:] })
		return a.Det()
	case Size3:
		var a Mat3[T]
		loadRows(f, n, func(i int) []T { return a[i][:] })
		return a.Det()
	default:
		var a Mat4[T]
		loadRows(f, n, func(i int) []T { return a[i][:] })
		return a.Det()
	}
}

// loadRows copies the n×n matrix f into the rows returned by row.
func loadRows[T scalar.Scalar](f *matrix.Dense[T], n int, row func(i int) []T) {
	for i := 0; i < n; i++ {
		r := row(i)
		for j := range r {
			r[j] = f.RawAt(i, j)
		}
	}
}

// storeRows writes the rows returned by row into x.
func storeRows[T scalar.Scalar](x *matrix.Dense[T], n int, row func(i int) []T) {
	for i := 0; i < n; i++ {
		for j, v := range row(i) {
			x.RawSet(i, j, v)
		}
	}
}
