package kernel

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"
)

func TestBinomialDensity(t *testing.T) {
	// Bandwidth sqrt(5) gives n = 20 Bernoulli trials and sigma = sqrt(5).
	build := NewBinomial[int64](-50, 50)
	k, err := build(0, math.Sqrt(5))
	if err != nil {
		t.Fatalf("building kernel: %v", err)
	}

	sigma := math.Sqrt(5)
	tests := []struct {
		name     string
		at       int64
		expected float64
	}{
		{"at center", 0, 0.176197 / sigma},
		{"five below center", -5, 0.014786 / sigma},
		{"five above center", 5, 0.014786 / sigma},
		{"outside support", -30, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := k.Density(tt.at); math.Abs(got-tt.expected) > 1e-5 {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestBinomialSampleClamped(t *testing.T) {
	build := NewBinomial[int64](-10, 10)
	k, err := build(10, 4)
	if err != nil {
		t.Fatalf("building kernel: %v", err)
	}

	rng := rand.New(rand.NewPCG(5, 5))
	sawMax := false
	for i := 0; i < 10000; i++ {
		v := k.Sample(rng)
		if v < -10 || v > 10 {
			t.Fatalf("sample %v outside domain [-10, 10]", v)
		}
		if v == 10 {
			sawMax = true
		}
	}
	if !sawMax {
		t.Error("kernel centered on the upper bound never sampled it")
	}
}

func TestBinomialBuilderRejectsBandwidth(t *testing.T) {
	build := NewBinomial[int64](-10, 10)
	if _, err := build(0, 0); !errors.Is(err, ErrInvalidBandwidth) {
		t.Errorf("expected ErrInvalidBandwidth, got %v", err)
	}
}

func TestDiscreteUniformDensity(t *testing.T) {
	k := DiscreteUniform[int64]{Min: 1, Max: 4}
	n := 4.0
	std := math.Sqrt((n*n - 1) / 12)

	if got := k.Density(2); math.Abs(got-1/n/std) > 1e-12 {
		t.Errorf("expected %v inside the window, got %v", 1/n/std, got)
	}
	if got := k.Density(0); got != 0 {
		t.Errorf("expected 0 outside the window, got %v", got)
	}
}

func TestDiscreteUniformSampleBounds(t *testing.T) {
	k := DiscreteUniform[int64]{Min: -3, Max: 3}
	rng := rand.New(rand.NewPCG(6, 6))

	seen := make(map[int64]bool)
	for i := 0; i < 10000; i++ {
		v := k.Sample(rng)
		if v < -3 || v > 3 {
			t.Fatalf("sample %v outside [-3, 3]", v)
		}
		seen[v] = true
	}
	if len(seen) != 7 {
		t.Errorf("expected all 7 integers to be sampled, saw %d", len(seen))
	}
}

func TestDiscreteUniformBuilderClampsWindow(t *testing.T) {
	build := NewDiscreteUniform[int64](0, 100)
	k, err := build(1, 2)
	if err != nil {
		t.Fatalf("building kernel: %v", err)
	}

	rng := rand.New(rand.NewPCG(7, 7))
	for i := 0; i < 1000; i++ {
		if v := k.Sample(rng); v < 0 {
			t.Fatalf("sample %v below the domain despite clamping", v)
		}
	}
}
