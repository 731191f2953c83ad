// Package matrix provides core linear algebra primitives for array-based computations.
// Dense is a concrete matrix of any scalar.Scalar type, storing elements in a
// flat slice with an explicit storage order and stride (leading dimension).
package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/invert/scalar"
)

// Order is the storage convention of a Dense backing slice.
type Order uint8

const (
	// RowMajor stores element (i,j) at data[i*stride+j].
	RowMajor Order = iota
	// ColMajor stores element (i,j) at data[j*stride+i].
	ColMajor
)

// String returns "RowMajor" or "ColMajor".
func (o Order) String() string {
	if o == ColMajor {
		return "ColMajor"
	}

	return "RowMajor"
}

// Flip returns the opposite order.
func (o Order) Flip() Order {
	if o == ColMajor {
		return RowMajor
	}

	return ColMajor
}

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a strided matrix of T values.
// r is rows, c is columns; element (i,j) lives at data[offset(i,j)].
// Views created by View and T share data with their parent.
type Dense[T scalar.Scalar] struct {
	r, c   int   // number of rows and columns
	stride int   // leading dimension (distance between consecutive rows/columns)
	order  Order // storage order of data
	data   []T   // backing storage
}

// contiguousStride returns the stride of a packed rows×cols matrix in order o.
func contiguousStride(rows, cols int, o Order) int {
	if o == ColMajor {
		return rows
	}

	return cols
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): resolve the storage order and allocate a packed slice.
// Complexity: O(r*c) time and memory.
func NewDense[T scalar.Scalar](rows, cols int, opts ...Option) (*Dense[T], error) {
	// Validate dimensions
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	o := gatherOptions(opts...)

	return &Dense[T]{
		r:      rows,
		c:      cols,
		stride: contiguousStride(rows, cols, o.order),
		order:  o.order,
		data:   make([]T, rows*cols),
	}, nil
}

// NewDenseFrom wraps data as an r×c matrix WITHOUT copying it.
// data is interpreted in the order given by WithOrder (default RowMajor) with
// the stride given by WithStride (default packed).
// Errors: ErrInvalidDimensions, ErrBadStride, ErrDataLength.
func NewDenseFrom[T scalar.Scalar](rows, cols int, data []T, opts ...Option) (*Dense[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	o := gatherOptions(opts...)

	minor, major := cols, rows // RowMajor: rows are contiguous runs of cols
	if o.order == ColMajor {
		minor, major = rows, cols
	}
	stride := o.stride
	if stride == DefaultStride {
		stride = minor
	}
	if stride < minor {
		return nil, ErrBadStride
	}
	if len(data) < (major-1)*stride+minor {
		return nil, ErrDataLength
	}

	return &Dense[T]{r: rows, c: cols, stride: stride, order: o.order, data: data}, nil
}

// FromRows builds a packed matrix from a rectangular row slice (copied).
// The storage order is taken from opts.
func FromRows[T scalar.Scalar](rows [][]T, opts ...Option) (*Dense[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	m, err := NewDense[T](len(rows), len(rows[0]), opts...)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != m.c {
			return nil, fmt.Errorf("FromRows: row %d has %d values, want %d: %w", i, len(row), m.c, ErrDimensionMismatch)
		}
		for j, v := range row {
			m.data[m.offset(i, j)] = v
		}
	}

	return m, nil
}

// Rows returns the number of rows in the matrix.
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Dense[T]) Cols() int { return m.c }

// Order returns the storage order of the backing slice.
func (m *Dense[T]) Order() Order { return m.order }

// Stride returns the leading dimension of the backing slice.
func (m *Dense[T]) Stride() int { return m.stride }

// IsSquare reports whether Rows() == Cols().
func (m *Dense[T]) IsSquare() bool { return m.r == m.c }

// IsContiguous reports whether the backing slice is packed (no gaps between
// rows or columns).
func (m *Dense[T]) IsContiguous() bool {
	return m.stride == contiguousStride(m.r, m.c, m.order)
}

// RawData returns the backing slice. Writes through it are visible in m
// and in every view sharing the same storage.
func (m *Dense[T]) RawData() []T { return m.data }

// offset computes the flat index of (row, col) without validation.
func (m *Dense[T]) offset(row, col int) int {
	if m.order == ColMajor {
		return col*m.stride + row
	}

	return row*m.stride + col
}

// indexOf computes the flat index for (row, col) or returns ErrIndexOutOfBounds.
// Complexity: O(1).
func (m *Dense[T]) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrIndexOutOfBounds)
	}

	return m.offset(row, col), nil
}

// At retrieves the element at (row, col).
// Returns ErrIndexOutOfBounds on invalid indices.
func (m *Dense[T]) At(row, col int) (T, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		var zero T
		return zero, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Returns ErrIndexOutOfBounds on invalid indices.
func (m *Dense[T]) Set(row, col int, v T) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// RawAt reads (row, col) with no shape validation. It is meant for kernels
// that have already validated their bounds; an index beyond the backing
// slice panics like any slice access.
func (m *Dense[T]) RawAt(row, col int) T { return m.data[m.offset(row, col)] }

// RawSet writes (row, col) with no shape validation (see RawAt).
func (m *Dense[T]) RawSet(row, col int, v T) { m.data[m.offset(row, col)] = v }

// T returns the transpose of m as a view sharing m's storage.
// The view has swapped dimensions and the opposite storage order, so the
// backing slice is read exactly as before. Complexity: O(1).
func (m *Dense[T]) T() *Dense[T] {
	return &Dense[T]{r: m.c, c: m.r, stride: m.stride, order: m.order.Flip(), data: m.data}
}

// View returns the rows×cols sub-matrix starting at (i, j), sharing storage.
// Errors: ErrInvalidDimensions, ErrIndexOutOfBounds.
func (m *Dense[T]) View(i, j, rows, cols int) (*Dense[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	if i < 0 || j < 0 || i+rows > m.r || j+cols > m.c {
		return nil, denseErrorf("View", i, j, ErrIndexOutOfBounds)
	}
	start := m.offset(i, j)
	end := m.offset(i+rows-1, j+cols-1) + 1

	return &Dense[T]{r: rows, c: cols, stride: m.stride, order: m.order, data: m.data[start:end:end]}, nil
}

// Clone returns a packed deep copy of m in the same storage order.
// Complexity: O(r*c) time and memory.
func (m *Dense[T]) Clone() *Dense[T] {
	out := &Dense[T]{
		r:      m.r,
		c:      m.c,
		stride: contiguousStride(m.r, m.c, m.order),
		order:  m.order,
		data:   make([]T, m.r*m.c),
	}
	if m.IsContiguous() {
		copy(out.data, m.data[:m.r*m.c])
		return out
	}
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			out.data[out.offset(i, j)] = m.data[m.offset(i, j)]
		}
	}

	return out
}

// CopyFrom overwrites m with the logical contents of src (orders may differ).
// src and m must have the same shape. Overlapping storage between two
// distinct views is not supported; copy through a Clone in that case.
func (m *Dense[T]) CopyFrom(src *Dense[T]) error {
	if src == nil {
		return denseErrorf("CopyFrom", 0, 0, ErrNilMatrix)
	}
	if src.r != m.r || src.c != m.c {
		return fmt.Errorf("Dense.CopyFrom(%dx%d <- %dx%d): %w", m.r, m.c, src.r, src.c, ErrDimensionMismatch)
	}
	if src == m {
		return nil
	}
	// Fast path: identical layouts copy run by run.
	if src.order == m.order {
		major, minor := m.r, m.c
		if m.order == ColMajor {
			major, minor = m.c, m.r
		}
		for k := 0; k < major; k++ {
			copy(m.data[k*m.stride:k*m.stride+minor], src.data[k*src.stride:k*src.stride+minor])
		}

		return nil
	}
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			m.data[m.offset(i, j)] = src.data[src.offset(i, j)]
		}
	}

	return nil
}

// String implements fmt.Stringer for easy debugging (logical row order).
func (m *Dense[T]) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString("[")
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", m.data[m.offset(i, j)])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
