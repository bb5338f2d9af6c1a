// Package metrics exposes the service's Prometheus collectors.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics reúne os coletores da aplicação em um registry próprio
type Metrics struct {
	registry        *prometheus.Registry
	submissions     *prometheus.CounterVec
	exports         *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// New cria e registra os coletores
func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "survey_submissions_total",
			Help: "Survey responses accepted by the intake endpoint.",
		}, []string{"rating"}),
		exports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "survey_exports_total",
			Help: "Spreadsheet exports generated.",
		}, []string{"variant"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}

	registry.MustRegister(
		m.submissions,
		m.exports,
		m.requestDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Handler serve a exposição no formato Prometheus
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry is exposed for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// The observe helpers are no-ops on a nil *Metrics.

func (m *Metrics) ObserveSubmission(rating string) {
	if m == nil {
		return
	}
	m.submissions.WithLabelValues(rating).Inc()
}

func (m *Metrics) ObserveExport(variant string) {
	if m == nil {
		return
	}
	m.exports.WithLabelValues(variant).Inc()
}

func (m *Metrics) ObserveRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.requestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(duration.Seconds())
}
