// Package kernel provides the probability kernels used to model parameter
// distributions. Every shape satisfies the same two-operation contract:
// evaluate the density at a point, and draw one random sample. Unscaled
// shapes are standardized to unit standard deviation, so the bandwidth is a
// direct multiplier of spread and shapes stay interchangeable under a shared
// bandwidth rule.
package kernel

import (
	"errors"
	"math/rand/v2"

	"golang.org/x/exp/constraints"
)

// ErrInvalidBandwidth reports a zero or negative bandwidth. It indicates a
// misconfigured bandwidth rule rather than a transient condition.
var ErrInvalidBandwidth = errors.New("bandwidth must be positive")

// Value is the set of scalar parameter types a kernel can model: continuous
// shapes instantiate over floats, discrete shapes over signed integers.
type Value interface {
	constraints.Signed | constraints.Float
}

// Kernel is a normalized probability density anchored at a location.
type Kernel[P Value] interface {
	// Density evaluates the kernel at the given point. The result is
	// non-negative.
	Density(at P) float64

	// Sample draws one random value from the kernel.
	Sample(rng *rand.Rand) P
}

// Builder constructs a kernel of a fixed shape centered at a trial's
// parameter value. Discrete builders are bound to the domain so their
// samples can be clamped to it. A non-positive bandwidth yields
// ErrInvalidBandwidth.
type Builder[P Value] func(location P, bandwidth float64) (Kernel[P], error)

// Clamp restricts v to [lo, hi].
func Clamp[P Value](v, lo, hi P) P {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
