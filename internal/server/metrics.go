package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics bundles the Prometheus instruments exposed on /metrics. Each
// instance carries its own registry so constructing a second Metrics
// (as tests do) never trips duplicate registration.
type Metrics struct {
	registry *prometheus.Registry
	handler  http.Handler

	activeRequests    prometheus.Gauge
	requestsTotal     prometheus.Counter
	operationsTotal   *prometheus.CounterVec
	verificationCases prometheus.Counter
	operationSeconds  *prometheus.HistogramVec
}

// NewMetrics creates and registers all application metrics.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	m := &Metrics{
		registry: registry,
		activeRequests: factory.NewGauge(prometheus.GaugeOpts{
			Name: "limbcalc_active_requests",
			Help: "Number of HTTP requests currently being served.",
		}),
		requestsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "limbcalc_requests_total",
			Help: "Total number of HTTP requests served.",
		}),
		operationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "limbcalc_operations_total",
			Help: "Total number of limb operations evaluated, by operation.",
		}, []string{"op"}),
		verificationCases: factory.NewCounter(prometheus.CounterOpts{
			Name: "limbcalc_verification_cases_total",
			Help: "Total number of differential verification cases executed.",
		}),
		operationSeconds: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "limbcalc_operation_duration_seconds",
			Help:    "Wall time of limb operation evaluations, by operation.",
			Buckets: prometheus.ExponentialBuckets(1e-7, 10, 8),
		}, []string{"op"}),
	}

	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	m.handler = promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	return m
}

// IncrementActiveRequests increments the in-flight request gauge.
func (m *Metrics) IncrementActiveRequests() {
	m.activeRequests.Inc()
	m.requestsTotal.Inc()
}

// DecrementActiveRequests decrements the in-flight request gauge.
func (m *Metrics) DecrementActiveRequests() {
	m.activeRequests.Dec()
}

// ObserveOperation records one evaluated operation and its duration.
func (m *Metrics) ObserveOperation(op string, seconds float64) {
	m.operationsTotal.WithLabelValues(op).Inc()
	m.operationSeconds.WithLabelValues(op).Observe(seconds)
}

// AddVerificationCases adds completed verification cases to the counter.
func (m *Metrics) AddVerificationCases(n int) {
	m.verificationCases.Add(float64(n))
}

// WritePrometheus serves the metrics in the Prometheus text format.
func (m *Metrics) WritePrometheus(w http.ResponseWriter, r *http.Request) {
	m.handler.ServeHTTP(w, r)
}
