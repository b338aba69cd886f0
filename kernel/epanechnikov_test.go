package kernel

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"
)

func TestEpanechnikovDensity(t *testing.T) {
	tests := []struct {
		name     string
		kernel   Epanechnikov[float64]
		at       float64
		expected float64
	}{
		{
			name:     "standard at center",
			kernel:   Epanechnikov[float64]{Location: 0, Bandwidth: 1},
			at:       0,
			expected: 0.33541019662496846, // 3/(4*sqrt(5))
		},
		{
			name:     "standard at support edge",
			kernel:   Epanechnikov[float64]{Location: 0, Bandwidth: 1},
			at:       sqrt5,
			expected: 0,
		},
		{
			name:     "standard at negative support edge",
			kernel:   Epanechnikov[float64]{Location: 0, Bandwidth: 1},
			at:       -sqrt5,
			expected: 0,
		},
		{
			name:     "standard outside support",
			kernel:   Epanechnikov[float64]{Location: 0, Bandwidth: 1},
			at:       10,
			expected: 0,
		},
		{
			name:     "shifted and scaled at center",
			kernel:   Epanechnikov[float64]{Location: 2, Bandwidth: 0.5},
			at:       2,
			expected: 0.75 / sqrt5 / 0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.kernel.Density(tt.at); math.Abs(got-tt.expected) > 1e-12 {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestEpanechnikovSampleSupport(t *testing.T) {
	k := Epanechnikov[float64]{Location: 3, Bandwidth: 0.5}
	rng := rand.New(rand.NewPCG(1, 1))

	lo, hi := 3-0.5*sqrt5, 3+0.5*sqrt5
	for i := 0; i < 10000; i++ {
		if v := k.Sample(rng); v < lo || v > hi {
			t.Fatalf("sample %v outside support [%v, %v]", v, lo, hi)
		}
	}
}

func TestEpanechnikovBuilderRejectsBandwidth(t *testing.T) {
	build := NewEpanechnikov[float64]()
	for _, bw := range []float64{0, -1} {
		if _, err := build(0, bw); !errors.Is(err, ErrInvalidBandwidth) {
			t.Errorf("bandwidth %v: expected ErrInvalidBandwidth, got %v", bw, err)
		}
	}
}
