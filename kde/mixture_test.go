package kde

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parzenlabs/parzen/kernel"
)

func TestPriorOnlyMixtureMatchesPrior(t *testing.T) {
	prior := kernel.Boxcar[float64]{Min: -1, Max: 1}
	mix := New(Component[float64]{Kernel: prior, Weight: 1})

	// With no trial components, sampling must consume randomness exactly
	// like sampling the prior directly.
	a := rand.New(rand.NewPCG(9, 9))
	b := rand.New(rand.NewPCG(9, 9))
	for i := 0; i < 100; i++ {
		assert.Equal(t, prior.Sample(a), mix.Sample(b))
	}

	for _, at := range []float64{-1, -0.5, 0, 0.5, 1} {
		assert.Equal(t, prior.Density(at), mix.Density(at))
	}
}

func TestMixtureDensityStrictlyPositive(t *testing.T) {
	build := kernel.NewEpanechnikov[float64]()
	k1, err := build(2, 0.1)
	require.NoError(t, err)
	k2, err := build(8, 0.1)
	require.NoError(t, err)

	mix := New(
		Component[float64]{Kernel: kernel.Boxcar[float64]{Min: 0, Max: 10}, Weight: 1},
		Component[float64]{Kernel: k1, Weight: 1},
		Component[float64]{Kernel: k2, Weight: 1},
	)

	// The narrow trial kernels cover almost none of the domain; the prior
	// must keep the density positive everywhere anyway.
	for at := 0.0; at <= 10; at += 0.25 {
		assert.Greater(t, mix.Density(at), 0.0, "density at %v", at)
	}
}

func TestMixtureDensityNormalized(t *testing.T) {
	prior := kernel.Boxcar[float64]{Min: 0, Max: 2}
	build := kernel.NewUniform[float64]()
	k, err := build(1, 0.25)
	require.NoError(t, err)

	mix := New(
		Component[float64]{Kernel: prior, Weight: 1},
		Component[float64]{Kernel: k, Weight: 3},
	)

	expected := (1*prior.Density(1) + 3*k.Density(1)) / 4
	assert.InDelta(t, expected, mix.Density(1), 1e-12)
}

func TestMixtureSamplingFollowsWeights(t *testing.T) {
	left, err := kernel.NewUniform[float64]()(-100, 0.1)
	require.NoError(t, err)
	right, err := kernel.NewUniform[float64]()(100, 0.1)
	require.NoError(t, err)

	mix := New(
		Component[float64]{Kernel: kernel.Boxcar[float64]{Min: -101, Max: 101}, Weight: 0.01},
		Component[float64]{Kernel: left, Weight: 0.05},
		Component[float64]{Kernel: right, Weight: 1},
	)

	rng := rand.New(rand.NewPCG(10, 10))
	rightCount := 0
	for i := 0; i < 2000; i++ {
		if mix.Sample(rng) > 50 {
			rightCount++
		}
	}
	assert.Greater(t, rightCount, 1700, "heavy component should dominate sampling")
}
