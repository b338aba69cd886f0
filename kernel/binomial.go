package kernel

import (
	"math"
	"math/rand/v2"

	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/stat/distuv"
)

// Binomial is a symmetric discrete kernel for integral domains. A draw is
// location + X − n/2 with X ~ B(n, ½), where the even trial count n is
// chosen so that the spread matches the bandwidth (σ = √n/2). Samples are
// clamped to [Min, Max]. The probability mass is normalized by the standard
// deviation so the values are comparable with continuous densities.
type Binomial[I constraints.Signed] struct {
	Location I
	Min, Max I

	// Number of Bernoulli trials. Always even, so the kernel stays centered
	// on an integer.
	n float64
}

// NewBinomial returns a builder for binomial kernels bound to the domain
// [min, max].
func NewBinomial[I constraints.Signed](min, max I) Builder[I] {
	return func(location I, bandwidth float64) (Kernel[I], error) {
		if bandwidth <= 0 {
			return nil, ErrInvalidBandwidth
		}
		n := 2 * math.Round(2*bandwidth*bandwidth)
		if n < 2 {
			n = 2
		}
		return Binomial[I]{Location: location, Min: min, Max: max, n: n}, nil
	}
}

func (k Binomial[I]) dist(src rand.Source) distuv.Binomial {
	return distuv.Binomial{N: k.n, P: 0.5, Src: src}
}

// Density evaluates the normalized probability mass at the given point.
func (k Binomial[I]) Density(at I) float64 {
	offset := float64(at) - float64(k.Location) + k.n/2
	if offset < 0 || offset > k.n {
		return 0
	}
	d := k.dist(nil)
	return d.Prob(offset) / d.StdDev()
}

// Sample draws from the kernel, clamped to the domain bounds.
func (k Binomial[I]) Sample(rng *rand.Rand) I {
	d := k.dist(rng)
	v := k.Location + I(d.Rand()) - I(k.n/2)
	return Clamp(v, k.Min, k.Max)
}

// DiscreteUniform is a flat kernel over the integer points of [Min, Max].
// With the bounds set to the whole domain it is the usual data-free prior
// for integral domains.
type DiscreteUniform[I constraints.Signed] struct {
	Min, Max I
}

// NewDiscreteUniform returns a builder producing flat windows of
// ± √3·bandwidth around trial locations, clamped to the domain [min, max].
func NewDiscreteUniform[I constraints.Signed](min, max I) Builder[I] {
	return func(location I, bandwidth float64) (Kernel[I], error) {
		if bandwidth <= 0 {
			return nil, ErrInvalidBandwidth
		}
		half := I(math.Ceil(bandwidth * sqrt3))
		return DiscreteUniform[I]{
			Min: Clamp(location-half, min, max),
			Max: Clamp(location+half, min, max),
		}, nil
	}
}

// Density evaluates the normalized probability mass at the given point.
func (k DiscreteUniform[I]) Density(at I) float64 {
	if at < k.Min || at > k.Max {
		return 0
	}
	n := float64(k.Max) - float64(k.Min) + 1
	std := math.Sqrt((n*n - 1) / 12)
	if std == 0 {
		// Single-point window.
		return 1
	}
	return 1 / n / std
}

// Sample draws an integer uniformly from [Min, Max].
func (k DiscreteUniform[I]) Sample(rng *rand.Rand) I {
	return k.Min + I(rng.Int64N(int64(k.Max)-int64(k.Min)+1))
}
