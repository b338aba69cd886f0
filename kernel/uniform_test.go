package kernel

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"
)

func TestUniformDensity(t *testing.T) {
	k := Uniform[float64]{Location: 1, Bandwidth: 2}
	// The window spans location ± 2*sqrt(3).
	inside := 0.5 / sqrt3 / 2

	tests := []struct {
		name     string
		at       float64
		expected float64
	}{
		{"at center", 1, inside},
		{"inside window", 1 + sqrt3, inside},
		{"at edge", 1 + 2*sqrt3, inside},
		{"outside window", 1 + 2*sqrt3 + 0.01, 0},
		{"far below", -10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := k.Density(tt.at); math.Abs(got-tt.expected) > 1e-12 {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestUniformSampleSupport(t *testing.T) {
	k := Uniform[float64]{Location: -2, Bandwidth: 1.5}
	rng := rand.New(rand.NewPCG(3, 3))

	lo, hi := -2-1.5*sqrt3, -2+1.5*sqrt3
	for i := 0; i < 10000; i++ {
		if v := k.Sample(rng); v < lo || v > hi {
			t.Fatalf("sample %v outside window [%v, %v]", v, lo, hi)
		}
	}
}

func TestBoxcarDensity(t *testing.T) {
	k := Boxcar[float64]{Min: 2, Max: 6}

	if got := k.Density(4); math.Abs(got-0.25) > 1e-12 {
		t.Errorf("expected 0.25 inside the bounds, got %v", got)
	}
	if got := k.Density(1.9); got != 0 {
		t.Errorf("expected 0 below the bounds, got %v", got)
	}
	if got := k.Density(6.1); got != 0 {
		t.Errorf("expected 0 above the bounds, got %v", got)
	}
}

func TestBoxcarSampleBounds(t *testing.T) {
	k := Boxcar[float64]{Min: 2, Max: 6}
	rng := rand.New(rand.NewPCG(4, 4))

	for i := 0; i < 10000; i++ {
		if v := k.Sample(rng); v < 2 || v > 6 {
			t.Fatalf("sample %v outside [2, 6]", v)
		}
	}
}

func TestUniformBuilderRejectsBandwidth(t *testing.T) {
	build := NewUniform[float64]()
	if _, err := build(0, -0.5); !errors.Is(err, ErrInvalidBandwidth) {
		t.Errorf("expected ErrInvalidBandwidth, got %v", err)
	}
}
