package parzen

import (
	"math"
	"sort"

	"github.com/parzenlabs/parzen/kernel"
)

// Direction selects whether lower or higher metrics are considered better.
type Direction int

const (
	// Minimize treats lower metrics as better. This is the default.
	Minimize Direction = iota
	// Maximize treats higher metrics as better.
	Maximize
)

func (d Direction) better(a, b float64) bool {
	if d == Maximize {
		return a > b
	}
	return a < b
}

// Trial is one observed (parameter, metric) pair. Trials are immutable and
// retained for the optimizer's lifetime.
type Trial[P kernel.Value] struct {
	Parameter P
	Metric    float64
}

// History is the insertion-ordered record of every observed trial. It only
// grows; there is no eviction or compaction.
type History[P kernel.Value] struct {
	direction Direction
	trials    []Trial[P]
}

// NewHistory returns an empty history ranked by the given direction.
func NewHistory[P kernel.Value](direction Direction) *History[P] {
	return &History[P]{direction: direction}
}

// Record appends a trial.
func (h *History[P]) Record(parameter P, metric float64) {
	h.trials = append(h.trials, Trial[P]{Parameter: parameter, Metric: metric})
}

// Len returns the number of recorded trials.
func (h *History[P]) Len() int {
	return len(h.trials)
}

// Trials returns a copy of the recorded trials in insertion order.
func (h *History[P]) Trials() []Trial[P] {
	out := make([]Trial[P], len(h.trials))
	copy(out, h.trials)
	return out
}

// Partition splits the history by metric rank: the gamma share of trials
// with the best metrics (never fewer than one) against the rest. Ties go to
// the earlier observation. The split is a pure read; repeated calls with an
// unchanged history return identical subsets in identical order.
func (h *History[P]) Partition(gamma float64) (good, bad []Trial[P]) {
	n := len(h.trials)
	if n == 0 {
		return nil, nil
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	// Stable sort keeps insertion order between equal metrics.
	sort.SliceStable(order, func(a, b int) bool {
		return h.direction.better(h.trials[order[a]].Metric, h.trials[order[b]].Metric)
	})

	nGood := int(math.Round(gamma * float64(n)))
	if nGood < 1 {
		nGood = 1
	}
	if nGood > n {
		nGood = n
	}

	good = make([]Trial[P], 0, nGood)
	bad = make([]Trial[P], 0, n-nGood)
	for i, idx := range order {
		if i < nGood {
			good = append(good, h.trials[idx])
		} else {
			bad = append(bad, h.trials[idx])
		}
	}
	return good, bad
}

// Best returns the trial with the best metric, or false when the history is
// empty. The earliest observation wins ties.
func (h *History[P]) Best() (Trial[P], bool) {
	if len(h.trials) == 0 {
		return Trial[P]{}, false
	}
	best := h.trials[0]
	for _, t := range h.trials[1:] {
		if h.direction.better(t.Metric, best.Metric) {
			best = t
		}
	}
	return best, true
}
