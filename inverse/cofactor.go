// SPDX-License-Identifier: MIT
// Package inverse: closed-form (adjugate / determinant) kernels for n ≤ 4.
//
// Every kernel reads a[i][j] = A(i,j) and returns adj(A)·(1/det A).
// No singularity check is made: det = 0 yields ±Inf/NaN entries.
// Loop-free and allocation-free; results depend only on the input values.

package inverse

import "github.com/katalvlaran/invert/scalar"

func det1[T scalar.Scalar](a *[1][1]T) T { return a[0][0] }

func inv1[T scalar.Scalar](a *[1][1]T) (b [1][1]T) {
	b[0][0] = 1 / a[0][0]

	return b
}

func det2[T scalar.Scalar](a *[2][2]T) T {
	return a[0][0]*a[1][1] - a[0][1]*a[1][0]
}

func inv2[T scalar.Scalar](a *[2][2]T) (b [2][2]T) {
	invdet := 1 / det2(a)
	b[0][0] = a[1][1] * invdet
	b[0][1] = -a[0][1] * invdet
	b[1][0] = -a[1][0] * invdet
	b[1][1] = a[0][0] * invdet

	return b
}

// cof3 returns the cofactor matrix C (C[i][j] = (-1)^(i+j)·M_ij).
func cof3[T scalar.Scalar](a *[3][3]T) (c [3][3]T) {
	c[0][0] = a[1][1]*a[2][2] - a[1][2]*a[2][1]
	c[0][1] = a[1][2]*a[2][0] - a[1][0]*a[2][2]
	c[0][2] = a[1][0]*a[2][1] - a[1][1]*a[2][0]
	c[1][0] = a[0][2]*a[2][1] - a[0][1]*a[2][2]
	c[1][1] = a[0][0]*a[2][2] - a[0][2]*a[2][0]
	c[1][2] = a[0][1]*a[2][0] - a[0][0]*a[2][1]
	c[2][0] = a[0][1]*a[1][2] - a[0][2]*a[1][1]
	c[2][1] = a[0][2]*a[1][0] - a[0][0]*a[1][2]
	c[2][2] = a[0][0]*a[1][1] - a[0][1]*a[1][0]

	return c
}

// det3 expands along the first row.
func det3[T scalar.Scalar](a *[3][3]T) T {
	return a[0][0]*(a[1][1]*a[2][2]-a[1][2]*a[2][1]) +
		a[0][1]*(a[1][2]*a[2][0]-a[1][0]*a[2][2]) +
		a[0][2]*(a[1][0]*a[2][1]-a[1][1]*a[2][0])
}

func inv3[T scalar.Scalar](a *[3][3]T) (b [3][3]T) {
	c := cof3(a)
	invdet := 1 / (a[0][0]*c[0][0] + a[0][1]*c[0][1] + a[0][2]*c[0][2])
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			b[i][j] = c[j][i] * invdet
		}
	}

	return b
}

// minors4 holds the 2×2 minors of the top row pair (s) and bottom row pair (c).
// s[k] and c[5-k] cover complementary column pairs.
type minors4[T scalar.Scalar] struct {
	s, c [6]T
}

func newMinors4[T scalar.Scalar](a *[4][4]T) (m minors4[T]) {
	m.s[0] = a[0][0]*a[1][1] - a[1][0]*a[0][1]
	m.s[1] = a[0][0]*a[1][2] - a[1][0]*a[0][2]
	m.s[2] = a[0][0]*a[1][3] - a[1][0]*a[0][3]
	m.s[3] = a[0][1]*a[1][2] - a[1][1]*a[0][2]
	m.s[4] = a[0][1]*a[1][3] - a[1][1]*a[0][3]
	m.s[5] = a[0][2]*a[1][3] - a[1][2]*a[0][3]

	m.c[5] = a[2][2]*a[3][3] - a[3][2]*a[2][3]
	m.c[4] = a[2][1]*a[3][3] - a[3][1]*a[2][3]
	m.c[3] = a[2][1]*a[3][2] - a[3][1]*a[2][2]
	m.c[2] = a[2][0]*a[3][3] - a[3][0]*a[2][3]
	m.c[1] = a[2][0]*a[3][2] - a[3][0]*a[2][2]
	m.c[0] = a[2][0]*a[3][1] - a[3][0]*a[2][1]

	return m
}

// det is the Laplace expansion over the top two rows.
func (m *minors4[T]) det() T {
	s, c := &m.s, &m.c
	return s[0]*c[5] - s[1]*c[4] + s[2]*c[3] + s[3]*c[2] - s[4]*c[1] + s[5]*c[0]
}

func det4[T scalar.Scalar](a *[4][4]T) T {
	m := newMinors4(a)
	return m.det()
}

func inv4[T scalar.Scalar](a *[4][4]T) (b [4][4]T) {
	m := newMinors4(a)
	s, c := &m.s, &m.c
	invdet := 1 / m.det()

	b[0][0] = (a[1][1]*c[5] - a[1][2]*c[4] + a[1][3]*c[3]) * invdet
	b[0][1] = (-a[0][1]*c[5] + a[0][2]*c[4] - a[0][3]*c[3]) * invdet
	b[0][2] = (a[3][1]*s[5] - a[3][2]*s[4] + a[3][3]*s[3]) * invdet
	b[0][3] = (-a[2][1]*s[5] + a[2][2]*s[4] - a[2][3]*s[3]) * invdet

	b[1][0] = (-a[1][0]*c[5] + a[1][2]*c[2] - a[1][3]*c[1]) * invdet
	b[1][1] = (a[0][0]*c[5] - a[0][2]*c[2] + a[0][3]*c[1]) * invdet
	b[1][2] = (-a[3][0]*s[5] + a[3][2]*s[2] - a[3][3]*s[1]) * invdet
	b[1][3] = (a[2][0]*s[5] - a[2][2]*s[2] + a[2][3]*s[1]) * invdet

	b[2][0] = (a[1][0]*c[4] - a[1][1]*c[2] + a[1][3]*c[0]) * invdet
	b[2][1] = (-a[0][0]*c[4] + a[0][1]*c[2] - a[0][3]*c[0]) * invdet
	b[2][2] = (a[3][0]*s[4] - a[3][1]*s[2] + a[3][3]*s[0]) * invdet
	b[2][3] = (-a[2][0]*s[4] + a[2][1]*s[2] - a[2][3]*s[0]) * invdet

	b[3][0] = (-a[1][0]*c[3] + a[1][1]*c[1] - a[1][2]*c[0]) * invdet
	b[3][1] = (a[0][0]*c[3] - a[0][1]*c[1] + a[0][2]*c[0]) * invdet
	b[3][2] = (-a[3][0]*s[3] + a[3][1]*s[1] - a[3][2]*s[0]) * invdet
	b[3][3] = (a[2][0]*s[3] - a[2][1]*s[1] + a[2][2]*s[0]) * invdet

	return b
}
