// Package invert inverts dense square matrices of real and complex scalars.
//
// 🚀 What is invert?
//
//	A small, dependency-light toolkit that brings together:
//		• scalar/  – the scalar types (float32, float64, complex64, complex128),
//		             their real type, modulus, conjugate and working precision
//		• matrix/  – a generic Dense[T] with RowMajor / ColMajor storage,
//		             strides, zero-copy views and transposes, Mul, Adjoint,
//		             IsApprox, gonum interop
//		• lu/      – partial-pivoting LU: Factorize, Solve, Det
//		• inverse/ – closed-form inverses for 1×1…4×4, LU for everything
//		             else, determinant, IsInvertible, concurrent Batch
//
// ✨ Guarantees
//
//   - Inverse(A) keeps A's storage order, and
//     Inverse(Transpose(A)) == Transpose(Inverse(A)) bit for bit.
//   - Inverse(A) and ComputeInverse(A, out) produce identical bits;
//     out may alias A.
//   - No singularity checks on the hot path. Ask IsInvertible instead.
//
// Quick start:
//
//	a, _ := matrix.FromRows([][]float64{{4, 7}, {2, 4}})
//	inv, _ := inverse.Inverse(a)     // [[2, -3.5], [-1, 2]]
//
//	m := inverse.Mat4[float32]{...}  // size fixed at compile time
//	mi := m.Inverse()
//
// See examples/ for a runnable demo.
package invert
