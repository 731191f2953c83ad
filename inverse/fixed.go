// SPDX-License-Identifier: MIT
// Package inverse: compile-time sized matrices.
//
// Mat1..Mat4 are plain value arrays indexed m[row][col]. Their methods bind
// statically to the closed-form kernel of their size; nothing is decided at
// run time. The Dense path loads its storage frame into the same types, so
// both entry families share one set of formulas.

package inverse

import (
	"fmt"

	"github.com/katalvlaran/invert/matrix"
	"github.com/katalvlaran/invert/scalar"
)

// Mat1 is a 1×1 matrix.
type Mat1[T scalar.Scalar] [1][1]T

// Mat2 is a 2×2 matrix.
type Mat2[T scalar.Scalar] [2][2]T

// Mat3 is a 3×3 matrix.
type Mat3[T scalar.Scalar] [3][3]T

// Mat4 is a 4×4 matrix.
type Mat4[T scalar.Scalar] [4][4]T

// Inverse returns m⁻¹. A singular m yields ±Inf/NaN entries.
func (m Mat1[T]) Inverse() Mat1[T] { return inv1((*[1][1]T)(&m)) }

// Inverse returns m⁻¹. A singular m yields ±Inf/NaN entries.
func (m Mat2[T]) Inverse() Mat2[T] { return inv2((*[2][2]T)(&m)) }

// Inverse returns m⁻¹. A singular m yields ±Inf/NaN entries.
func (m Mat3[T]) Inverse() Mat3[T] { return inv3((*[3][3]T)(&m)) }

// Inverse returns m⁻¹. A singular m yields ±Inf/NaN entries.
func (m Mat4[T]) Inverse() Mat4[T] { return inv4((*[4][4]T)(&m)) }

// InverseInto stores m⁻¹ in out; out may point at m.
func (m *Mat1[T]) InverseInto(out *Mat1[T]) { *out = m.Inverse() }

// InverseInto stores m⁻¹ in out; out may point at m.
func (m *Mat2[T]) InverseInto(out *Mat2[T]) { *out = m.Inverse() }

// InverseInto stores m⁻¹ in out; out may point at m.
func (m *Mat3[T]) InverseInto(out *Mat3[T]) { *out = m.Inverse() }

// InverseInto stores m⁻¹ in out; out may point at m.
func (m *Mat4[T]) InverseInto(out *Mat4[T]) { *out = m.Inverse() }

// Det returns the determinant of m.
func (m Mat1[T]) Det() T { return det1((*[1][1]T)(&m)) }

// Det returns the determinant of m.
func (m Mat2[T]) Det() T { return det2((*[2][2]T)(&m)) }

// Det returns the determinant of m.
func (m Mat3[T]) Det() T { return det3((*[3][3]T)(&m)) }

// Det returns the determinant of m.
func (m Mat4[T]) Det() T { return det4((*[4][4]T)(&m)) }

// T returns the transpose of m.
func (m Mat1[T]) T() Mat1[T] { return m }

// T returns the transpose of m.
func (m Mat2[T]) T() (t Mat2[T]) {
	for i := range m {
		for j := range m[i] {
			t[j][i] = m[i][j]
		}
	}

	return t
}

// T returns the transpose of m.
func (m Mat3[T]) T() (t Mat3[T]) {
	for i := range m {
		for j := range m[i] {
			t[j][i] = m[i][j]
		}
	}

	return t
}

// T returns the transpose of m.
func (m Mat4[T]) T() (t Mat4[T]) {
	for i := range m {
		for j := range m[i] {
			t[j][i] = m[i][j]
		}
	}

	return t
}

// Mul returns m·o.
func (m Mat1[T]) Mul(o Mat1[T]) Mat1[T] { return Mat1[T]{{m[0][0] * o[0][0]}} }

// Mul returns m·o.
func (m Mat2[T]) Mul(o Mat2[T]) (p Mat2[T]) {
	for i := range m {
		for j := range o[0] {
			var sum T
			for k := range o {
				sum += m[i][k] * o[k][j]
			}
			p[i][j] = sum
		}
	}

	return p
}

// Mul returns m·o.
func (m Mat3[T]) Mul(o Mat3[T]) (p Mat3[T]) {
	for i := range m {
		for j := range o[0] {
			var sum T
			for k := range o {
				sum += m[i][k] * o[k][j]
			}
			p[i][j] = sum
		}
	}

	return p
}

// Mul returns m·o.
func (m Mat4[T]) Mul(o Mat4[T]) (p Mat4[T]) {
	for i := range m {
		for j := range o[0] {
			var sum T
			for k := range o {
				sum += m[i][k] * o[k][j]
			}
			p[i][j] = sum
		}
	}

	return p
}

// Dense copies m into a new packed matrix.
func (m Mat4[T]) Dense(opts ...matrix.Option) (*matrix.Dense[T], error) {
	rows := make([][]T, len(m))
	for i := range m {
		rows[i] = m[i][:]
	}

	return matrix.FromRows(rows, opts...)
}

// Dense copies m into a new packed matrix.
func (m Mat3[T]) Dense(opts ...matrix.Option) (*matrix.Dense[T], error) {
	rows := make([][]T, len(m))
	for i := range m {
		rows[i] = m[i][:]
	}

	return matrix.FromRows(rows, opts...)
}

// Dense copies m into a new packed matrix.
func (m Mat2[T]) Dense(opts ...matrix.Option) (*matrix.Dense[T], error) {
	return matrix.FromRows([][]T{m[0][:], m[1][:]}, opts...)
}

// Dense copies m into a new packed matrix.
func (m Mat1[T]) Dense(opts ...matrix.Option) (*matrix.Dense[T], error) {
	return matrix.FromRows([][]T{m[0][:]}, opts...)
}

// checkFixed validates that d is a non-nil n×n matrix.
func checkFixed[T scalar.Scalar](d *matrix.Dense[T], n int) error {
	if err := matrix.ValidateNotNil(d); err != nil {
		return err
	}
	if d.Rows() != n || d.Cols() != n {
		return fmt.Errorf("have %dx%d, want %dx%d: %w", d.Rows(), d.Cols(), n, n, matrix.ErrDimensionMismatch)
	}

	return nil
}

// Mat4From copies a 4×4 Dense (any order) into a Mat4.
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch.
func Mat4From[T scalar.Scalar](d *matrix.Dense[T]) (m Mat4[T], err error) {
	if err = checkFixed(d, 4); err != nil {
		return m, fmt.Errorf("inverse.Mat4From: %w", err)
	}
	for i := range m {
		for j := range m[i] {
			m[i][j] = d.RawAt(i, j)
		}
	}

	return m, nil
}

// Mat3From copies a 3×3 Dense (any order) into a Mat3.
func Mat3From[T scalar.Scalar](d *matrix.Dense[T]) (m Mat3[T], err error) {
	if err = checkFixed(d, 3); err != nil {
		return m, fmt.Errorf("inverse.Mat3From: %w", err)
	}
	for i := range m {
		for j := range m[i] {
			m[i][j] = d.RawAt(i, j)
		}
	}

	return m, nil
}

// Mat2From copies a 2×2 Dense (any order) into a Mat2.
func Mat2From[T scalar.Scalar](d *matrix.Dense[T]) (m Mat2[T], err error) {
	if err = checkFixed(d, 2); err != nil {
		return m, fmt.Errorf("inverse.Mat2From: %w", err)
	}
	for i := range m {
		for j := range m[i] {
			m[i][j] = d.RawAt(i, j)
		}
	}

	return m, nil
}

// Mat1From copies a 1×1 Dense into a Mat1.
func Mat1From[T scalar.Scalar](d *matrix.Dense[T]) (m Mat1[T], err error) {
	if err = checkFixed(d, 1); err != nil {
		return m, fmt.Errorf("inverse.Mat1From: %w", err)
	}
	m[0][0] = d.RawAt(0, 0)

	return m, nil
}
