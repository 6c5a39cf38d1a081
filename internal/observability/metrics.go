package observability

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics bundles the Prometheus collectors the service emits. All recording
// methods are nil-safe so tests can pass a nil *Metrics.
type Metrics struct {
	requests   *prometheus.CounterVec
	errors     *prometheus.CounterVec
	reconciles *prometheus.CounterVec
	registry   *prometheus.Registry
}

// NewMetrics initializes collectors on a private registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "press_http_requests_total",
			Help: "HTTP requests by path, method and status.",
		}, []string{"path", "method", "status"}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "press_http_errors_total",
			Help: "Classified request errors by path, method and error code.",
		}, []string{"path", "method", "code"}),
		reconciles: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "press_role_reconcile_total",
			Help: "Role reconciliation attempts by outcome.",
		}, []string{"outcome"}),
		registry: prometheus.NewRegistry(),
	}
	m.registry.MustRegister(m.requests, m.errors, m.reconciles)
	return m
}

// Registry exposes the underlying registry for the /metrics handler.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return prometheus.NewRegistry()
	}
	return m.registry
}

// RecordRequest counts a completed HTTP request.
func (m *Metrics) RecordRequest(path, method string, status int) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(path, method, strconv.Itoa(status)).Inc()
}

// RecordError counts a classified request error.
func (m *Metrics) RecordError(path, method, code string) {
	if m == nil {
		return
	}
	m.errors.WithLabelValues(path, method, code).Inc()
}

// RecordReconcile counts a reconciliation outcome for operator visibility.
func (m *Metrics) RecordReconcile(outcome string) {
	if m == nil {
		return
	}
	m.reconciles.WithLabelValues(outcome).Inc()
}
