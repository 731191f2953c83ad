// SPDX-License-Identifier: MIT
// Package scalar: the scalar fields understood by the dense kernels.
//
// Purpose:
//   - Declare the Scalar constraint (real and complex IEEE types).
//   - Resolve, per scalar type, its associated real type (Kind.Real) and a few
//     pure numeric queries (modulus, conjugate, finiteness, precision).
//
// Notes:
//   - Constraints use exact types, not ~T, so that the type switches below
//     always resolve. Named scalar types are not supported.
//   - Everything here is a pure type-level or value-level query; no state.

package scalar

import (
	"math"
	"math/cmplx"
)

// Scalar is any field element the matrix kernels operate on.
type Scalar interface {
	float32 | float64 | complex64 | complex128
}

// Real is the subset of Scalar without an imaginary part.
type Real interface {
	float32 | float64
}

// Kind enumerates the concrete scalar types.
type Kind uint8

const (
	Float32 Kind = iota
	Float64
	Complex64
	Complex128
)

// String returns the Go type name of k.
func (k Kind) String() string {
	switch k {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Complex64:
		return "complex64"
	case Complex128:
		return "complex128"
	}

	return "unknown"
}

// Real returns the kind of the real part: itself for real kinds,
// Float32 for Complex64 and Float64 for Complex128.
func (k Kind) Real() Kind {
	switch k {
	case Complex64:
		return Float32
	case Complex128:
		return Float64
	}

	return k
}

// IsComplex reports whether k has an imaginary part.
func (k Kind) IsComplex() bool {
	return k == Complex64 || k == Complex128
}

// KindOf returns the Kind of the type parameter T.
func KindOf[T Scalar]() Kind {
	var zero T
	switch any(zero).(type) {
	case float32:
		return Float32
	case complex64:
		return Complex64
	case complex128:
		return Complex128
	}

	return Float64
}

// RealKind returns the kind of T's associated real type.
func RealKind[T Scalar]() Kind { return KindOf[T]().Real() }

// IsComplex reports whether T is a complex type.
func IsComplex[T Scalar]() bool { return KindOf[T]().IsComplex() }

// RealIs reports whether the real type associated with T is exactly k.
// RealIs[complex64](Float32) and RealIs[float32](Float32) are both true.
func RealIs[T Scalar](k Kind) bool { return RealKind[T]() == k }

// Abs returns the modulus of v as float64.
func Abs[T Scalar](v T) float64 {
	switch x := any(v).(type) {
	case float32:
		return math.Abs(float64(x))
	case float64:
		return math.Abs(x)
	case complex64:
		return cmplx.Abs(complex128(x))
	case complex128:
		return cmplx.Abs(x)
	}

	return 0
}

// Conj returns the complex conjugate of v; real values are returned unchanged.
func Conj[T Scalar](v T) T {
	switch x := any(v).(type) {
	case complex64:
		return any(complex64(cmplx.Conj(complex128(x)))).(T)
	case complex128:
		return any(cmplx.Conj(x)).(T)
	}

	return v
}

// RealPart returns the real component of v as float64.
func RealPart[T Scalar](v T) float64 {
	switch x := any(v).(type) {
	case float32:
		return float64(x)
	case float64:
		return x
	case complex64:
		return float64(real(x))
	case complex128:
		return real(x)
	}

	return 0
}

// ImagPart returns the imaginary component of v (0 for real types).
func ImagPart[T Scalar](v T) float64 {
	switch x := any(v).(type) {
	case complex64:
		return float64(imag(x))
	case complex128:
		return imag(x)
	}

	return 0
}

// FromFloat converts a real number into T.
func FromFloat[T Scalar](re float64) T {
	return FromParts[T](re, 0)
}

// FromParts builds a T from its real and imaginary components.
// The imaginary component is dropped for real types.
func FromParts[T Scalar](re, im float64) T {
	var zero T
	switch any(zero).(type) {
	case float32:
		return any(float32(re)).(T)
	case complex64:
		return any(complex(float32(re), float32(im))).(T)
	case complex128:
		return any(complex(re, im)).(T)
	}

	return any(re).(T)
}

// IsFinite reports whether every component of v is neither NaN nor ±Inf.
func IsFinite[T Scalar](v T) bool {
	re, im := RealPart(v), ImagPart(v)

	return !math.IsNaN(re) && !math.IsInf(re, 0) && !math.IsNaN(im) && !math.IsInf(im, 0)
}

// Precision is the default relative tolerance for fuzzy comparisons in T's
// real type: 1e-5 for float32-based types and 1e-12 for float64-based types.
func Precision[T Scalar]() float64 {
	if RealIs[T](Float32) {
		return 1e-5
	}

	return 1e-12
}

// TestPrecision is the looser tolerance used when verifying results that went
// through O(n³) arithmetic: 1e-3 for float32-based types and 1e-6 otherwise.
func TestPrecision[T Scalar]() float64 {
	if RealIs[T](Float32) {
		return 1e-3
	}

	return 1e-6
}

// Epsilon returns the machine epsilon of T's real type.
func Epsilon[T Scalar]() float64 {
	if RealIs[T](Float32) {
		return 0x1p-23
	}

	return 0x1p-52
}
