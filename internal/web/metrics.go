package web

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/elys-network/aprcell/internal/types"
)

type metrics struct {
	registry       *prometheus.Registry
	resolvedStates *prometheus.CounterVec
	requests       *prometheus.HistogramVec
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		resolvedStates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "aprcell",
			Name:      "display_states_total",
			Help:      "Resolved APR/APY display states by kind.",
		}, []string{"kind"}),
		requests: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "aprcell",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route and status.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "status"}),
	}
	m.registry.MustRegister(
		m.resolvedStates,
		m.requests,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *metrics) observeState(state types.DisplayState) {
	m.resolvedStates.WithLabelValues(string(state.Kind)).Inc()
}
