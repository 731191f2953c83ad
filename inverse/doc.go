// SPDX-License-Identifier: MIT

// Package inverse computes the inverse of square dense matrices over
// float32, float64, complex64 and complex128.
//
// What & Why:
//   - Sizes 1..4 are inverted with closed-form adjugate formulas (no loops,
//     no allocation beyond the result). The 4×4 kernel builds the twelve
//     2×2 minors of the top and bottom row pairs once and derives the
//     determinant and all sixteen cofactors from them.
//   - Every other size goes through a partial-pivoting LU (package lu) and
//     solves A·X = I.
//   - StrategyDecomposition routes every size through LU.
//
// Entry points:
//
//	Inverse(A)              → new matrix, same storage order as A
//	ComputeInverse(A, out)  → writes into out (aliasing allowed)
//	Mat4[T]{...}.Inverse()  → compile-time sized, statically bound kernel
//	Determinant(A), IsInvertible(A), Batch(ctx, ms)
//
// Storage order:
//
//	Kernels work on the column-major reading of the input buffer and hand
//	the result back in the input's order. Consequently
//	Inverse(Transpose(A)) equals Transpose(Inverse(A)) exactly, not just
//	approximately.
//
// Singularity:
//
//	Inversion never checks for it. Singular input returns ±Inf/NaN entries
//	and no error. Use IsInvertible when a decision is needed.
//
// Concurrency:
//
//	All functions are reentrant; Inverter is immutable after New. Batch
//	fans out with golang.org/x/sync/errgroup.
//
// Logging:
//
//	WithLogger accepts a *Logger (log/slog). The default discards everything.
package inverse
