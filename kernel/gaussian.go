package kernel

import (
	"math/rand/v2"

	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/stat/distuv"
)

// Gaussian is the normal-density kernel.
type Gaussian[F constraints.Float] struct {
	Location  F
	Bandwidth float64
}

// NewGaussian returns a builder that anchors Gaussian kernels at trial
// locations.
func NewGaussian[F constraints.Float]() Builder[F] {
	return func(location F, bandwidth float64) (Kernel[F], error) {
		if bandwidth <= 0 {
			return nil, ErrInvalidBandwidth
		}
		return Gaussian[F]{Location: location, Bandwidth: bandwidth}, nil
	}
}

// Density evaluates the kernel at the given point.
func (k Gaussian[F]) Density(at F) float64 {
	n := distuv.Normal{Mu: float64(k.Location), Sigma: k.Bandwidth}
	return n.Prob(float64(at))
}

// Sample draws a normal value centered at the location.
func (k Gaussian[F]) Sample(rng *rand.Rand) F {
	n := distuv.Normal{Mu: float64(k.Location), Sigma: k.Bandwidth, Src: rng}
	return F(n.Rand())
}
