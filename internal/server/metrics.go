package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus instruments exposed by the HTTP API.
// A dedicated registry is used so repeated construction (e.g. in tests)
// never collides with previously registered collectors.
type Metrics struct {
	registry        *prometheus.Registry
	activeRequests  prometheus.Gauge
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	calculations    *prometheus.CounterVec
	handler         http.Handler
}

// NewMetrics creates and registers the API metrics on a fresh registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		activeRequests: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "numcalc_active_requests",
			Help: "Number of HTTP requests currently being served.",
		}),
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "numcalc_requests_total",
			Help: "Total number of HTTP requests by path and status code.",
		}, []string{"path", "code"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "numcalc_request_duration_seconds",
			Help:    "HTTP request latency by path.",
			Buckets: prometheus.DefBuckets,
		}, []string{"path"}),
		calculations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "numcalc_calculations_total",
			Help: "Total number of calculations by algorithm and outcome.",
		}, []string{"algorithm", "status"}),
	}

	registry.MustRegister(
		m.activeRequests,
		m.requestsTotal,
		m.requestDuration,
		m.calculations,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m.handler = promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	return m
}

// IncrementActiveRequests increments the in-flight request gauge.
func (m *Metrics) IncrementActiveRequests() {
	m.activeRequests.Inc()
}

// DecrementActiveRequests decrements the in-flight request gauge.
func (m *Metrics) DecrementActiveRequests() {
	m.activeRequests.Dec()
}

// ObserveRequest records a completed HTTP request.
func (m *Metrics) ObserveRequest(path, code string, seconds float64) {
	m.requestsTotal.WithLabelValues(path, code).Inc()
	m.requestDuration.WithLabelValues(path).Observe(seconds)
}

// RecordCalculation counts one calculation outcome for an algorithm.
func (m *Metrics) RecordCalculation(algorithm, status string) {
	m.calculations.WithLabelValues(algorithm, status).Inc()
}

// WritePrometheus serves the metrics in Prometheus exposition format.
func (m *Metrics) WritePrometheus(w http.ResponseWriter, r *http.Request) {
	m.handler.ServeHTTP(w, r)
}
