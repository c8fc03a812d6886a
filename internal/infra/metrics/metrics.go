// Package metrics exposes Prometheus collectors for the HTTP surface and path searches.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "pathfinder"

// Search outcomes used as the "outcome" label.
const (
	OutcomeSuccess     = "success"
	OutcomeNoPath      = "no_path"
	OutcomeInvalid     = "invalid"
	OutcomeUnavailable = "unavailable"
	OutcomeError       = "error"
)

// Metrics holds all Prometheus collectors for the service
type Metrics struct {
	registry *prometheus.Registry

	// Request metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	// Search metrics
	SearchesTotal  *prometheus.CounterVec
	SearchLatency  *prometheus.HistogramVec
	NodesVisited   prometheus.Histogram
	SegmentsPerRun prometheus.Histogram
}

// New creates a registry and registers all collectors on it
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests by method, route and status",
			},
			[]string{"method", "route", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "route"},
		),
		SearchesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "path_searches_total",
				Help:      "Total number of path searches by mode, algorithm and outcome",
			},
			[]string{"mode", "algorithm", "outcome"},
		),
		SearchLatency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "path_search_duration_seconds",
				Help:      "Path search duration in seconds",
				Buckets:   []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1, 5, 10},
			},
			[]string{"mode", "algorithm"},
		),
		NodesVisited: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "path_nodes_visited",
				Help:      "Number of nodes visited per successful path search",
				Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		SegmentsPerRun: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "path_segments",
				Help:      "Number of segments per graph path search",
				Buckets:   prometheus.LinearBuckets(1, 2, 13),
			},
		),
	}
}

// Registry returns the registry the collectors are registered on
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler returns an HTTP handler serving the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// RecordRequest records a completed HTTP request
func (m *Metrics) RecordRequest(method, route string, status int, duration time.Duration) {
	m.RequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.RequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordSearch records a finished path search
func (m *Metrics) RecordSearch(mode, algorithm, outcome string, duration time.Duration) {
	m.SearchesTotal.WithLabelValues(mode, algorithm, outcome).Inc()
	m.SearchLatency.WithLabelValues(mode, algorithm).Observe(duration.Seconds())
}

// RecordPath records the shape of a successful path
func (m *Metrics) RecordPath(nodesVisited, segments int) {
	m.NodesVisited.Observe(float64(nodesVisited))
	if segments > 0 {
		m.SegmentsPerRun.Observe(float64(segments))
	}
}
