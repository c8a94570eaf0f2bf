// Package metrics exposes the Prometheus instruments of the movies API.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "movies_api"

// Metrics holds all Prometheus metrics of the server. Every instance owns a
// private registry, so tests can create as many as they like.
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	preflightsTotal     *prometheus.CounterVec
	mountedRoutes       *prometheus.GaugeVec
	moviesStored        prometheus.Gauge

	registry *prometheus.Registry
}

func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests by method, route and status code",
			},
			[]string{"method", "route", "status_code"},
		),

		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),

		preflightsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "cors_preflights_total",
				Help:      "Total number of CORS preflight requests by outcome",
			},
			[]string{"outcome"},
		),

		mountedRoutes: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "mounted_routes",
				Help:      "Number of routes mounted per route group",
			},
			[]string{"group"},
		),

		moviesStored: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "movies_stored",
				Help:      "Number of movies currently held in the catalog",
			},
		),

		registry: registry,
	}

	registry.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.preflightsTotal,
		m.mountedRoutes,
		m.moviesStored,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// RecordHTTPRequest records a served request. route is the matched route
// pattern, not the raw path, to keep label cardinality bounded.
func (m *Metrics) RecordHTTPRequest(method, route string, statusCode int, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(statusCode)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordPreflight records a preflight request. allowed reports whether the
// policy granted the requested method to the requesting origin.
func (m *Metrics) RecordPreflight(allowed bool) {
	outcome := "rejected"
	if allowed {
		outcome = "allowed"
	}
	m.preflightsTotal.WithLabelValues(outcome).Inc()
}

// SetMountedRoutes publishes how many routes a group contributes.
func (m *Metrics) SetMountedRoutes(group string, n int) {
	m.mountedRoutes.WithLabelValues(group).Set(float64(n))
}

// SetMoviesStored publishes the current catalog size.
func (m *Metrics) SetMoviesStored(n int) {
	m.moviesStored.Set(float64(n))
}

// Handler returns the Prometheus metrics HTTP handler
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		// responses are compressed by the router middleware
		DisableCompression: true,
	})
}

// Registry returns the Prometheus registry
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
