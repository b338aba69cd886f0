package kernel

import (
	"math/rand/v2"

	"golang.org/x/exp/constraints"
)

const (
	sqrt3       = 1.7320508075688772
	doubleSqrt3 = 2 * sqrt3
)

// Uniform is the continuous boxcar kernel. Its density is flat over
// location ± √3·bandwidth and zero elsewhere.
type Uniform[F constraints.Float] struct {
	Location  F
	Bandwidth float64
}

// NewUniform returns a builder that anchors uniform kernels at trial
// locations.
func NewUniform[F constraints.Float]() Builder[F] {
	return func(location F, bandwidth float64) (Kernel[F], error) {
		if bandwidth <= 0 {
			return nil, ErrInvalidBandwidth
		}
		return Uniform[F]{Location: location, Bandwidth: bandwidth}, nil
	}
}

// Density evaluates the kernel at the given point.
func (k Uniform[F]) Density(at F) float64 {
	normalized := (float64(at) - float64(k.Location)) / k.Bandwidth / sqrt3
	if normalized < -1 || normalized > 1 {
		return 0
	}
	return 0.5 / sqrt3 / k.Bandwidth
}

// Sample draws a uniform value from the kernel's window.
func (k Uniform[F]) Sample(rng *rand.Rand) F {
	normalized := rng.Float64()*doubleSqrt3 - sqrt3
	return k.Location + F(k.Bandwidth*normalized)
}

// Boxcar is a flat density over [Min, Max]. It is the usual data-free prior
// for continuous domains.
type Boxcar[F constraints.Float] struct {
	Min, Max F
}

// Density is 1/(Max−Min) inside the bounds and zero outside.
func (k Boxcar[F]) Density(at F) float64 {
	if at < k.Min || at > k.Max {
		return 0
	}
	return 1 / (float64(k.Max) - float64(k.Min))
}

// Sample draws a uniform value from [Min, Max].
func (k Boxcar[F]) Sample(rng *rand.Rand) F {
	return k.Min + F(rng.Float64()*(float64(k.Max)-float64(k.Min)))
}
