// Package kde implements the weighted kernel density mixtures that model
// the good and bad trial distributions.
package kde

import (
	"math/rand/v2"

	"github.com/parzenlabs/parzen/internal/sampling"
	"github.com/parzenlabs/parzen/kernel"
)

// Component is one weighted member of a mixture.
type Component[P kernel.Value] struct {
	Kernel kernel.Kernel[P]
	Weight float64
}

// Mixture is a Parzen-window density estimate: a baseline prior component
// plus one component per observed trial. The prior keeps the density
// strictly positive over the domain before and alongside real observations.
// A mixture is a derived view over a trial subset and is rebuilt rather
// than mutated.
type Mixture[P kernel.Value] struct {
	components []Component[P]
	weights    []float64
	total      float64
}

// New builds a mixture from the prior and the trial components. Weights
// need not sum to one; evaluation and sampling normalize internally.
func New[P kernel.Value](prior Component[P], trials ...Component[P]) *Mixture[P] {
	components := make([]Component[P], 0, len(trials)+1)
	components = append(components, prior)
	components = append(components, trials...)

	weights := make([]float64, len(components))
	total := 0.0
	for i, c := range components {
		weights[i] = c.Weight
		total += c.Weight
	}

	return &Mixture[P]{components: components, weights: weights, total: total}
}

// Density returns the weight-normalized sum of the component densities at
// the given point.
func (m *Mixture[P]) Density(at P) float64 {
	sum := 0.0
	for _, c := range m.components {
		sum += c.Weight * c.Kernel.Density(at)
	}
	return sum / m.total
}

// Sample picks one component with probability proportional to its weight,
// then draws from that component's kernel. With no trial components the
// draw degenerates to sampling the prior.
func (m *Mixture[P]) Sample(rng *rand.Rand) P {
	if len(m.components) == 1 {
		return m.components[0].Kernel.Sample(rng)
	}
	i := sampling.WeightedIndex(rng, m.weights)
	return m.components[i].Kernel.Sample(rng)
}
