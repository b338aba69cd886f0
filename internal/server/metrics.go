package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type metrics struct {
	studiesCreated  prometheus.Counter
	suggestions     prometheus.Counter
	trialsObserved  prometheus.Counter
	requestDuration *prometheus.HistogramVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	factory := promauto.With(reg)
	return &metrics{
		studiesCreated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "parzend",
			Name:      "studies_created_total",
			Help:      "Number of studies created.",
		}),
		suggestions: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "parzend",
			Name:      "suggestions_total",
			Help:      "Number of candidate parameters served.",
		}),
		trialsObserved: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "parzend",
			Name:      "trials_observed_total",
			Help:      "Number of trial outcomes recorded.",
		}),
		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "parzend",
			Name:      "request_duration_seconds",
			Help:      "API request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
	}
}
