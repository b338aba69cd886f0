package kernel

import (
	"math/rand/v2"

	"golang.org/x/exp/constraints"

	"github.com/parzenlabs/parzen/internal/sampling"
)

const sqrt5 = 2.23606797749979

// Epanechnikov is the standardized parabolic kernel. Its density is zero
// outside location ± √5·bandwidth.
type Epanechnikov[F constraints.Float] struct {
	Location  F
	Bandwidth float64
}

// NewEpanechnikov returns a builder that anchors Epanechnikov kernels at
// trial locations.
func NewEpanechnikov[F constraints.Float]() Builder[F] {
	return func(location F, bandwidth float64) (Kernel[F], error) {
		if bandwidth <= 0 {
			return nil, ErrInvalidBandwidth
		}
		return Epanechnikov[F]{Location: location, Bandwidth: bandwidth}, nil
	}
}

// Density evaluates the kernel at the given point.
func (k Epanechnikov[F]) Density(at F) float64 {
	normalized := (float64(at) - float64(k.Location)) / k.Bandwidth / sqrt5
	if normalized < -1 || normalized > 1 {
		return 0
	}
	return 0.75 / sqrt5 * (1 - normalized*normalized) / k.Bandwidth
}

// Sample draws from the kernel: take three uniform variates, keep one of
// the two smallest at random, and attach a random sign.
func (k Epanechnikov[F]) Sample(rng *rand.Rand) F {
	x1, x2 := sampling.TwoSmallest(rng.Float64(), rng.Float64(), rng.Float64())

	normalized := x1
	if rng.IntN(2) == 0 {
		normalized = x2
	}
	if rng.IntN(2) == 0 {
		normalized = -normalized
	}

	return k.Location + F(k.Bandwidth*normalized*sqrt5)
}
