// SPDX-License-Identifier: MIT
// Package lu implements LU decomposition with partial (row) pivoting,
// PA = LU, for dense matrices over any scalar.Scalar type.
//
// Purpose:
//   - Factorize once, then solve A·X = B for any number of right-hand sides.
//   - Provide the determinant as a by-product of the factorization.
//
// Numeric policy:
//   - Pivot choice: largest modulus in the current column (ties: lowest row).
//   - Singular input is NOT an error. A column whose candidates are all exactly
//     zero is skipped and IsSingular reports true; Solve then divides by the
//     zero pivot and returns ±Inf/NaN entries, which callers may inspect.
//
// Determinism:
//   - Fixed loop orders; identical inputs give bit-identical factors.
package lu

import (
	"fmt"

	"github.com/katalvlaran/invert/matrix"
	"github.com/katalvlaran/invert/scalar"
)

// Operation tags for error wrapping.
const (
	opFactorize = "lu.Factorize"
	opSolve     = "lu.Solve"
	opSolveInto = "lu.SolveInto"
)

func luErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// LU holds the packed factors of PA = LU.
// The strictly lower triangle of lu is L (unit diagonal implied) and the
// upper triangle including the diagonal is U. lu is packed ColMajor so every
// column is a contiguous run.
type LU[T scalar.Scalar] struct {
	n        int
	lu       []T   // packed column-major n×n factors
	piv      []int // piv[i] = row of A that ended up in row i
	swaps    int   // number of row transpositions
	singular bool  // an exactly-zero pivot column was met
}

// Factorize computes the partial-pivoting LU factorization of the square matrix a.
// a is copied; it is never modified.
//
// Implementation:
//   - Stage 1: Validate a (non-nil, square); copy it into a packed column-major buffer.
//   - Stage 2: For each column k: choose the pivot row, swap rows, scale the
//     multipliers, and apply the rank-1 update to the trailing columns.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare.
// Complexity: O(n³) time, O(n²) memory.
func Factorize[T scalar.Scalar](a *matrix.Dense[T]) (*LU[T], error) {
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return nil, luErrorf(opFactorize, err)
	}
	n := a.Rows()

	work, err := matrix.NewDense[T](n, n, matrix.WithColMajor())
	if err != nil {
		return nil, luErrorf(opFactorize, err)
	}
	if err = work.CopyFrom(a); err != nil {
		return nil, luErrorf(opFactorize, err)
	}

	f := &LU[T]{n: n, lu: work.RawData(), piv: make([]int, n)}
	for i := range f.piv {
		f.piv[i] = i
	}
	f.decompose()

	return f, nil
}

// decompose runs the right-looking elimination in place on f.lu.
func (f *LU[T]) decompose() {
	var (
		n           = f.n
		d           = f.lu
		i, j, k, p  int
		best, v     float64
		pivot, ukj  T
		colK, colJ  int
		multipliers []T
	)
	for k = 0; k < n; k++ {
		colK = k * n

		// Stage 1: pivot search in column k, rows k..n-1.
		p, best = k, scalar.Abs(d[colK+k])
		for i = k + 1; i < n; i++ {
			if v = scalar.Abs(d[colK+i]); v > best {
				p, best = i, v
			}
		}

		// Stage 2: swap rows k and p across every column.
		if p != k {
			for j = 0; j < n; j++ {
				colJ = j * n
				d[colJ+k], d[colJ+p] = d[colJ+p], d[colJ+k]
			}
			f.piv[k], f.piv[p] = f.piv[p], f.piv[k]
			f.swaps++
		}

		pivot = d[colK+k]
		if pivot == 0 {
			// Whole sub-column is zero: nothing to eliminate.
			f.singular = true
			continue
		}

		// Stage 3: multipliers L[i,k] = A[i,k] / pivot.
		multipliers = d[colK+k+1 : colK+n]
		for i = range multipliers {
			multipliers[i] /= pivot
		}

		// Stage 4: trailing update A[i,j] -= L[i,k]·U[k,j].
		for j = k + 1; j < n; j++ {
			colJ = j * n
			ukj = d[colJ+k]
			if ukj == 0 {
				continue
			}
			for i = k + 1; i < n; i++ {
				d[colJ+i] -= d[colK+i] * ukj
			}
		}
	}
}

// Dim returns the order n of the factorized matrix.
func (f *LU[T]) Dim() int { return f.n }

// IsSingular reports whether an exactly-zero pivot was met.
func (f *LU[T]) IsSingular() bool { return f.singular }

// Pivots returns a copy of the row permutation: row i of PA is row Pivots()[i] of A.
func (f *LU[T]) Pivots() []int {
	out := make([]int, f.n)
	copy(out, f.piv)

	return out
}

// PivotMagnitudes returns the smallest and largest |U[k,k]|.
func (f *LU[T]) PivotMagnitudes() (minAbs, maxAbs float64) {
	minAbs = scalar.Abs(f.lu[0])
	maxAbs = minAbs
	for k := 1; k < f.n; k++ {
		v := scalar.Abs(f.lu[k*f.n+k])
		if v < minAbs {
			minAbs = v
		}
		if v > maxAbs {
			maxAbs = v
		}
	}

	return minAbs, maxAbs
}

// Det returns det(A) = (-1)^swaps · Π U[k,k].
func (f *LU[T]) Det() T {
	var det T = 1
	if f.swaps%2 == 1 {
		det = -1
	}
	for k := 0; k < f.n; k++ {
		det *= f.lu[k*f.n+k]
	}

	return det
}

// L returns the unit lower-triangular factor as a new ColMajor matrix.
func (f *LU[T]) L() *matrix.Dense[T] {
	out, _ := matrix.NewDense[T](f.n, f.n, matrix.WithColMajor())
	for j := 0; j < f.n; j++ {
		out.RawSet(j, j, 1)
		for i := j + 1; i < f.n; i++ {
			out.RawSet(i, j, f.lu[j*f.n+i])
		}
	}

	return out
}

// U returns the upper-triangular factor as a new ColMajor matrix.
func (f *LU[T]) U() *matrix.Dense[T] {
	out, _ := matrix.NewDense[T](f.n, f.n, matrix.WithColMajor())
	for j := 0; j < f.n; j++ {
		for i := 0; i <= j; i++ {
			out.RawSet(i, j, f.lu[j*f.n+i])
		}
	}

	return out
}

// Solve returns X with A·X = B as a new packed ColMajor matrix.
// B may have any order and any number of columns.
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch (B.Rows != n).
// Complexity: O(n²·m) for m right-hand sides.
func (f *LU[T]) Solve(b *matrix.Dense[T]) (*matrix.Dense[T], error) {
	if err := matrix.ValidateNotNil(b); err != nil {
		return nil, luErrorf(opSolve, err)
	}
	if b.Rows() != f.n {
		return nil, luErrorf(opSolve, fmt.Errorf("rhs has %d rows, want %d: %w", b.Rows(), f.n, matrix.ErrDimensionMismatch))
	}
	x, err := matrix.NewDense[T](f.n, b.Cols(), matrix.WithColMajor())
	if err != nil {
		return nil, luErrorf(opSolve, err)
	}
	data := x.RawData()
	for c := 0; c < b.Cols(); c++ {
		col := data[c*f.n : (c+1)*f.n]
		for i := 0; i < f.n; i++ {
			col[i] = b.RawAt(f.piv[i], c)
		}
		f.substitute(col)
	}

	return x, nil
}

// SolveInto writes the solution of A·X = B into x (any order, shape n×m).
// x may be b itself: every column of b is read before the same column of x
// is written.
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch.
func (f *LU[T]) SolveInto(b, x *matrix.Dense[T]) error {
	if err := matrix.ValidateNotNil(b); err != nil {
		return luErrorf(opSolveInto, err)
	}
	if b.Rows() != f.n {
		return luErrorf(opSolveInto, fmt.Errorf("rhs has %d rows, want %d: %w", b.Rows(), f.n, matrix.ErrDimensionMismatch))
	}
	if err := matrix.ValidateOutputShape(x, f.n, b.Cols()); err != nil {
		return luErrorf(opSolveInto, err)
	}
	col := make([]T, f.n)
	for c := 0; c < b.Cols(); c++ {
		for i := 0; i < f.n; i++ {
			col[i] = b.RawAt(f.piv[i], c)
		}
		f.substitute(col)
		for i := 0; i < f.n; i++ {
			x.RawSet(i, c, col[i])
		}
	}

	return nil
}

// substitute overwrites y (already permuted, y = P·b) with U⁻¹·L⁻¹·y.
// No pivot checks: a zero U[k,k] yields ±Inf/NaN.
func (f *LU[T]) substitute(y []T) {
	var (
		n    = f.n
		d    = f.lu
		i, k int
		yk   T
		colK int
	)
	// Forward: L·z = y (unit diagonal), column-oriented.
	for k = 0; k < n; k++ {
		yk = y[k]
		if yk == 0 {
			continue
		}
		colK = k * n
		for i = k + 1; i < n; i++ {
			y[i] -= d[colK+i] * yk
		}
	}
	// Backward: U·x = z, column-oriented.
	for k = n - 1; k >= 0; k-- {
		colK = k * n
		y[k] /= d[colK+k]
		yk = y[k]
		for i = 0; i < k; i++ {
			y[i] -= d[colK+i] * yk
		}
	}
}
