package server

import (
	"errors"
	"fmt"
	"sync"

	"github.com/parzenlabs/parzen"
	"github.com/parzenlabs/parzen/kernel"
)

var errNonInteger = errors.New("parameter is not an integer")

// StudySpec is the request body for creating a study.
type StudySpec struct {
	Domain struct {
		Min      float64 `json:"min"`
		Max      float64 `json:"max"`
		Discrete bool    `json:"discrete"`
	} `json:"domain"`
	// Direction is "minimize" (default) or "maximize".
	Direction string `json:"direction"`
	// Kernel selects the trial kernel shape: epanechnikov (default),
	// gaussian or uniform for continuous domains; binomial (default) or
	// uniform for discrete domains.
	Kernel        string  `json:"kernel"`
	SplitFraction float64 `json:"split_fraction"`
	Candidates    int     `json:"candidate_count"`
	Seed          uint64  `json:"seed"`
}

// study adapts one optimizer instance, continuous or discrete, to the JSON
// number surface of the API. The engine itself is single-threaded; the
// mutex provides the external synchronization it expects.
type study struct {
	mu      sync.Mutex
	suggest func() (float64, error)
	observe func(parameter, metric float64) error
	best    func() (parameter, metric float64, err error)
}

func (s *study) Suggest() (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.suggest()
}

func (s *study) Observe(parameter, metric float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.observe(parameter, metric)
}

func (s *study) Best() (parameter, metric float64, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.best()
}

func parseDirection(name string) (parzen.Direction, error) {
	switch name {
	case "", "minimize":
		return parzen.Minimize, nil
	case "maximize":
		return parzen.Maximize, nil
	default:
		return 0, fmt.Errorf("unknown direction %q", name)
	}
}

// newStudy instantiates the optimizer described by the spec.
func newStudy(spec StudySpec) (*study, error) {
	direction, err := parseDirection(spec.Direction)
	if err != nil {
		return nil, err
	}
	if spec.Domain.Discrete {
		return newDiscreteStudy(spec, direction)
	}
	return newContinuousStudy(spec, direction)
}

func newContinuousStudy(spec StudySpec, direction parzen.Direction) (*study, error) {
	min, max := spec.Domain.Min, spec.Domain.Max

	var shape kernel.Builder[float64]
	switch spec.Kernel {
	case "", "epanechnikov":
		shape = kernel.NewEpanechnikov[float64]()
	case "gaussian":
		shape = kernel.NewGaussian[float64]()
	case "uniform":
		shape = kernel.NewUniform[float64]()
	default:
		return nil, fmt.Errorf("unknown continuous kernel %q", spec.Kernel)
	}

	opt, err := parzen.New(parzen.Config[float64]{
		Min:           min,
		Max:           max,
		Prior:         kernel.Boxcar[float64]{Min: min, Max: max},
		Shape:         shape,
		Direction:     direction,
		SplitFraction: spec.SplitFraction,
		Candidates:    spec.Candidates,
		Seed:          spec.Seed,
	})
	if err != nil {
		return nil, err
	}

	return &study{
		suggest: opt.Suggest,
		observe: opt.Observe,
		best: func() (float64, float64, error) {
			trial, err := opt.Best()
			if err != nil {
				return 0, 0, err
			}
			return trial.Parameter, trial.Metric, nil
		},
	}, nil
}

func newDiscreteStudy(spec StudySpec, direction parzen.Direction) (*study, error) {
	min, max := int64(spec.Domain.Min), int64(spec.Domain.Max)
	if float64(min) != spec.Domain.Min || float64(max) != spec.Domain.Max {
		return nil, fmt.Errorf("discrete domain bounds must be integers")
	}

	var shape kernel.Builder[int64]
	switch spec.Kernel {
	case "", "binomial":
		shape = kernel.NewBinomial(min, max)
	case "uniform":
		shape = kernel.NewDiscreteUniform(min, max)
	default:
		return nil, fmt.Errorf("unknown discrete kernel %q", spec.Kernel)
	}

	opt, err := parzen.New(parzen.Config[int64]{
		Min:           min,
		Max:           max,
		Prior:         kernel.DiscreteUniform[int64]{Min: min, Max: max},
		Shape:         shape,
		Direction:     direction,
		SplitFraction: spec.SplitFraction,
		Candidates:    spec.Candidates,
		Seed:          spec.Seed,
	})
	if err != nil {
		return nil, err
	}

	return &study{
		suggest: func() (float64, error) {
			v, err := opt.Suggest()
			return float64(v), err
		},
		observe: func(parameter, metric float64) error {
			p := int64(parameter)
			if float64(p) != parameter {
				return errNonInteger
			}
			return opt.Observe(p, metric)
		},
		best: func() (float64, float64, error) {
			trial, err := opt.Best()
			if err != nil {
				return 0, 0, err
			}
			return float64(trial.Parameter), trial.Metric, nil
		},
	}, nil
}
