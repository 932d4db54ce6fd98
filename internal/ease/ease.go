package ease

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Approach moves current toward target by the fraction k (one step of a first-order low-pass filter).
// For 0 < k < 1 the distance to target shrinks every call but never reaches zero.
func Approach[T constraints.Float](current, target, k T) T {
	return current + (target-current)*k
}

// Lerp returns a + (b-a)*p. p is not clamped.
func Lerp[T constraints.Float](a, b, p T) T {
	return a + (b-a)*p
}

// Clamp01 limits p to [0, 1].
func Clamp01[T constraints.Float](p T) T {
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// CosInOut is the cosine S-curve 0.5 - 0.5*cos(pi*p) on a clamped p.
// Zero slope at both ends; CosInOut(0) == 0 and CosInOut(1) == 1.
func CosInOut(p float64) float64 {
	p = Clamp01(p)
	if p == 1 {
		return 1
	}
	return 0.5 - 0.5*math.Cos(math.Pi*p)
}
