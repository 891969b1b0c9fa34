package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds process-wide Prometheus collectors shared across handlers.
// Module-specific collectors live next to their module (internal/alert/metrics,
// internal/consent/metrics).
type Metrics struct {
	EndpointLatency *prometheus.HistogramVec
	RequestsTotal   *prometheus.CounterVec
	AuthFailures    prometheus.Counter
}

// New creates and registers all shared Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		EndpointLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "caresignal_endpoint_latency_seconds",
			Help:    "Latency of endpoints in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),
		RequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "caresignal_http_requests_total",
			Help: "Total number of HTTP requests, labeled by endpoint and status",
		}, []string{"endpoint", "status"}),
		AuthFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "caresignal_auth_failures_total",
			Help: "Total number of authentication failures",
		}),
	}
}

// ObserveEndpointLatency records latency for a single request.
func (m *Metrics) ObserveEndpointLatency(endpoint string, seconds float64) {
	m.EndpointLatency.WithLabelValues(endpoint).Observe(seconds)
}

// IncrementRequests counts one served request.
func (m *Metrics) IncrementRequests(endpoint, status string) {
	m.RequestsTotal.WithLabelValues(endpoint, status).Inc()
}

// IncrementAuthFailures counts one rejected credential.
func (m *Metrics) IncrementAuthFailures() {
	m.AuthFailures.Inc()
}
