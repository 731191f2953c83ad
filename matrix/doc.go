// Package matrix provides the generic dense container used by the lu and
// inverse packages.
//
// The matrix package provides:
//
//   - Dense[T], a strided matrix over float32, float64, complex64 or complex128
//     stored either RowMajor or ColMajor.
//   - Zero-copy views: T() (transpose by flipping the storage order) and
//     View (sub-matrix sharing the parent's storage).
//   - Element-wise Add/Sub/Scale, Mul, Transpose, Adjoint.
//   - Constructors for identity, zero and random matrices.
//   - Exact (Equal) and fuzzy (AllClose, IsApprox) comparisons.
//   - Column centering and sample covariance (CenterColumns, Covariance).
//   - Copying converters to and from gonum's mat.Dense and mat.CDense.
//
// All public indexers validate bounds and return ErrIndexOutOfBounds; the
// RawAt/RawSet pair skips validation for kernels that already checked shape.
package matrix
