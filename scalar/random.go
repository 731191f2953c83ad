package scalar

import "math/rand"

// Random draws a value uniformly from [-1, 1] for every component of T.
// The caller owns rng; Random is not safe for concurrent use of the same rng.
func Random[T Scalar](rng *rand.Rand) T {
	re := rng.Float64()*2 - 1
	if !IsComplex[T]() {
		return FromFloat[T](re)
	}

	return FromParts[T](re, rng.Float64()*2-1)
}
