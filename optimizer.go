package parzen

import (
	"math"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"github.com/parzenlabs/parzen/kde"
	"github.com/parzenlabs/parzen/kernel"
)

// Defaults used when the corresponding Config field is left zero.
const (
	DefaultSplitFraction = 0.25
	DefaultCandidates    = 24
	DefaultPriorWeight   = 1.0
)

// BandwidthRule chooses the kernel bandwidth from the domain span and the
// size of the trial subset being modelled.
type BandwidthRule func(span float64, subsetSize int) float64

// DefaultBandwidth spreads each kernel over span/n, floored at one percent
// of the span so late kernels never collapse into point masses.
func DefaultBandwidth(span float64, subsetSize int) float64 {
	bw := span / float64(subsetSize)
	if floor := span / 100; bw < floor {
		bw = floor
	}
	return bw
}

// Config configures a single optimization session.
type Config[P kernel.Value] struct {
	// Min and Max bound the searched domain, inclusive. Fixed for the
	// optimizer's lifetime.
	Min, Max P

	// Prior is the data-free baseline density over the domain, for example
	// kernel.Boxcar or kernel.DiscreteUniform spanning [Min, Max]. It also
	// serves the very first suggestion, before any outcome exists.
	Prior kernel.Kernel[P]

	// Shape anchors one kernel per observed trial, for example
	// kernel.NewEpanechnikov or kernel.NewBinomial.
	Shape kernel.Builder[P]

	// Direction selects minimization (default) or maximization.
	Direction Direction

	// SplitFraction is the share of trials treated as good, in (0, 1].
	SplitFraction float64

	// Candidates is the number of points scored per suggestion.
	Candidates int

	// Bandwidth derives the kernel bandwidth; DefaultBandwidth when nil.
	Bandwidth BandwidthRule

	// PriorWeight is the prior's weight relative to a single trial
	// component.
	PriorWeight float64

	// Rand is the random source. When nil, one is created from Seed, or
	// from the clock when Seed is also zero. Sharing a source between
	// optimizers requires external synchronization.
	Rand *rand.Rand
	Seed uint64

	// Logger receives debug-level decisions; zap.NewNop when nil.
	Logger *zap.Logger
}

// Optimizer runs the TPE decision loop over one scalar domain. It is the
// single mutable entity of a session and is meant for sequential use: one
// Suggest/evaluate/Observe loop at a time.
type Optimizer[P kernel.Value] struct {
	cfg     Config[P]
	span    float64
	rng     *rand.Rand
	logger  *zap.Logger
	history *History[P]
}

// New validates the configuration and creates an optimizer. Malformed
// bounds or option values are rejected with ErrInvalidDomain; nothing is
// re-validated later.
func New[P kernel.Value](cfg Config[P]) (*Optimizer[P], error) {
	if cfg.Min > cfg.Max {
		return nil, opErrorf("New", ErrInvalidDomain, "min %v exceeds max %v", cfg.Min, cfg.Max)
	}
	if cfg.Prior == nil {
		return nil, opErrorf("New", ErrInvalidDomain, "prior component is required")
	}
	if cfg.Shape == nil {
		return nil, opErrorf("New", ErrInvalidDomain, "kernel shape is required")
	}
	if cfg.SplitFraction == 0 {
		cfg.SplitFraction = DefaultSplitFraction
	}
	if cfg.SplitFraction < 0 || cfg.SplitFraction > 1 {
		return nil, opErrorf("New", ErrInvalidDomain, "split fraction %v outside (0, 1]", cfg.SplitFraction)
	}
	if cfg.Candidates == 0 {
		cfg.Candidates = DefaultCandidates
	}
	if cfg.Candidates < 1 {
		return nil, opErrorf("New", ErrInvalidDomain, "candidate count %d below 1", cfg.Candidates)
	}
	if cfg.Bandwidth == nil {
		cfg.Bandwidth = DefaultBandwidth
	}
	if cfg.PriorWeight == 0 {
		cfg.PriorWeight = DefaultPriorWeight
	}
	if cfg.PriorWeight < 0 {
		return nil, opErrorf("New", ErrInvalidDomain, "prior weight %v is negative", cfg.PriorWeight)
	}

	rng := cfg.Rand
	if rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		rng = rand.New(rand.NewPCG(seed, seed))
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Optimizer[P]{
		cfg:     cfg,
		span:    float64(cfg.Max) - float64(cfg.Min),
		rng:     rng,
		logger:  logger.Named("optimizer"),
		history: NewHistory[P](cfg.Direction),
	}, nil
}

// Suggest returns the next parameter value to evaluate. Before any outcome
// is observed it samples the prior directly. Afterwards it partitions the
// history, models the good and bad subsets as density mixtures, draws
// candidates from the good mixture and returns the one with the highest
// good/bad density ratio. Suggest never mutates the history; calling it
// repeatedly without an intervening Observe only wastes computation.
func (o *Optimizer[P]) Suggest() (P, error) {
	if o.history.Len() == 0 {
		candidate := o.clamp(o.cfg.Prior.Sample(o.rng))
		o.logger.Debug("Sampled prior",
			zap.Float64("candidate", float64(candidate)))
		return candidate, nil
	}

	good, bad := o.history.Partition(o.cfg.SplitFraction)
	goodMix, err := o.mixture(good)
	if err != nil {
		var zero P
		return zero, err
	}
	badMix, err := o.mixture(bad)
	if err != nil {
		var zero P
		return zero, err
	}

	var best P
	bestScore := math.Inf(-1)
	for i := 0; i < o.cfg.Candidates; i++ {
		x := o.clamp(goodMix.Sample(o.rng))
		// The prior keeps both densities strictly positive over the
		// domain, so the ratio is well defined.
		score := goodMix.Density(x) / badMix.Density(x)
		if i == 0 || score > bestScore {
			best, bestScore = x, score
		}
	}

	o.logger.Debug("Scored candidates",
		zap.Int("trials", o.history.Len()),
		zap.Int("good", len(good)),
		zap.Int("bad", len(bad)),
		zap.Float64("candidate", float64(best)),
		zap.Float64("score", bestScore))
	return best, nil
}

// Observe records an externally evaluated outcome for a parameter
// previously returned by Suggest. Out-of-domain parameters and NaN metrics
// are rejected and leave the history unchanged.
func (o *Optimizer[P]) Observe(parameter P, metric float64) error {
	if parameter < o.cfg.Min || parameter > o.cfg.Max {
		return opErrorf("Observe", ErrOutOfDomain,
			"parameter %v outside [%v, %v]", parameter, o.cfg.Min, o.cfg.Max)
	}
	if math.IsNaN(metric) {
		return opErrorf("Observe", ErrInvalidMetric, "metric is NaN")
	}

	o.history.Record(parameter, metric)
	o.logger.Debug("Recorded trial",
		zap.Float64("parameter", float64(parameter)),
		zap.Float64("metric", metric),
		zap.Int("trials", o.history.Len()))
	return nil
}

// Best returns the best trial observed so far, or ErrNoTrials when no
// outcome has been reported yet.
func (o *Optimizer[P]) Best() (Trial[P], error) {
	best, ok := o.history.Best()
	if !ok {
		return Trial[P]{}, opErrorf("Best", ErrNoTrials, "no outcomes reported")
	}
	return best, nil
}

// Trials returns a copy of the observation history in insertion order.
func (o *Optimizer[P]) Trials() []Trial[P] {
	return o.history.Trials()
}

// mixture builds a fresh density mixture over the given trial subset. The
// mixtures are derived views; rebuilding them per request keeps them from
// drifting away from the history they represent.
func (o *Optimizer[P]) mixture(trials []Trial[P]) (*kde.Mixture[P], error) {
	prior := kde.Component[P]{Kernel: o.cfg.Prior, Weight: o.cfg.PriorWeight}
	if len(trials) == 0 {
		return kde.New(prior), nil
	}

	bw := o.cfg.Bandwidth(o.span, len(trials))
	components := make([]kde.Component[P], 0, len(trials))
	for _, t := range trials {
		k, err := o.cfg.Shape(t.Parameter, bw)
		if err != nil {
			return nil, opErrorf("Suggest", err,
				"building kernel at %v with bandwidth %v", t.Parameter, bw)
		}
		components = append(components, kde.Component[P]{Kernel: k, Weight: 1})
	}
	return kde.New(prior, components...), nil
}

func (o *Optimizer[P]) clamp(v P) P {
	return kernel.Clamp(v, o.cfg.Min, o.cfg.Max)
}
