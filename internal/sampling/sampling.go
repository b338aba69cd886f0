// Package sampling holds small random-sampling helpers shared by the
// kernels and the density mixture.
package sampling

import "math/rand/v2"

// TwoSmallest returns the two smallest of its three arguments.
func TwoSmallest(x1, x2, x3 float64) (float64, float64) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	// x1 is one of the two smallest; pick the smaller of the other two.
	if x2 > x3 {
		x2 = x3
	}
	return x1, x2
}

// WeightedIndex picks an index with probability proportional to its weight.
// Weights must be non-negative and sum to a positive value.
func WeightedIndex(rng *rand.Rand, weights []float64) int {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	threshold := rng.Float64() * total

	acc := 0.0
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		acc += w
		if acc >= threshold {
			return i
		}
	}
	// Floating-point drift can leave the threshold unreached; fall back to
	// the last positive weight.
	for i := len(weights) - 1; i >= 0; i-- {
		if weights[i] > 0 {
			return i
		}
	}
	return len(weights) - 1
}
