// Package scalar resolves scalar-type traits for the dense matrix kernels.
//
// Given a type parameter T it answers: which concrete kind T is, what its
// associated real type is (float32 for complex64, float64 for complex128,
// T itself otherwise), and which tolerances are meaningful for T.
// Verification code uses RealIs to decide whether a random matrix needs
// preconditioning before inversion.
package scalar
