// SPDX-License-Identifier: MIT
// Package matrix provides converters between Dense and gonum's mat types,
// so results can be fed to (or checked against) gonum's BLAS/LAPACK-backed
// routines. Conversions always copy.

package matrix

import (
	"gonum.org/v1/gonum/mat"
)

// FromGonum copies any gonum real matrix into a packed Dense[float64].
// Errors: ErrNilMatrix, ErrInvalidDimensions (empty matrix).
func FromGonum(m mat.Matrix, opts ...Option) (*Dense[float64], error) {
	if m == nil {
		return nil, matrixErrorf("FromGonum", ErrNilMatrix)
	}
	r, c := m.Dims()
	out, err := NewDense[float64](r, c, opts...)
	if err != nil {
		return nil, matrixErrorf("FromGonum", err)
	}

	// Fast path: row-major gonum storage maps onto RowMajor runs.
	if g, ok := m.(mat.RawMatrixer); ok && out.order == RowMajor {
		raw := g.RawMatrix()
		for i := 0; i < r; i++ {
			copy(out.data[i*c:(i+1)*c], raw.Data[i*raw.Stride:i*raw.Stride+c])
		}

		return out, nil
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.data[out.offset(i, j)] = m.At(i, j)
		}
	}

	return out, nil
}

// ToGonum copies d into a new *mat.Dense (gonum is always row-major).
func ToGonum(d *Dense[float64]) (*mat.Dense, error) {
	if err := ValidateNotNil(d); err != nil {
		return nil, matrixErrorf("ToGonum", err)
	}
	data := make([]float64, d.r*d.c)
	for i := 0; i < d.r; i++ {
		for j := 0; j < d.c; j++ {
			data[i*d.c+j] = d.data[d.offset(i, j)]
		}
	}

	return mat.NewDense(d.r, d.c, data), nil
}

// FromGonumC copies any gonum complex matrix into a packed Dense[complex128].
func FromGonumC(m mat.CMatrix, opts ...Option) (*Dense[complex128], error) {
	if m == nil {
		return nil, matrixErrorf("FromGonumC", ErrNilMatrix)
	}
	r, c := m.Dims()
	out, err := NewDense[complex128](r, c, opts...)
	if err != nil {
		return nil, matrixErrorf("FromGonumC", err)
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.data[out.offset(i, j)] = m.At(i, j)
		}
	}

	return out, nil
}

// ToGonumC copies d into a new *mat.CDense.
func ToGonumC(d *Dense[complex128]) (*mat.CDense, error) {
	if err := ValidateNotNil(d); err != nil {
		return nil, matrixErrorf("ToGonumC", err)
	}
	data := make([]complex128, d.r*d.c)
	for i := 0; i < d.r; i++ {
		for j := 0; j < d.c; j++ {
			data[i*d.c+j] = d.data[d.offset(i, j)]
		}
	}

	return mat.NewCDense(d.r, d.c, data), nil
}
