package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// HTTP metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	// Instrumentation metrics
	FunctionCalls    *prometheus.CounterVec
	FunctionDuration *prometheus.HistogramVec

	// Trace collector metrics
	TraceEntries  prometheus.Counter
	TracingActive prometheus.Gauge

	// WebSocket metrics
	WSConnections prometheus.Gauge

	// System metrics
	Uptime    prometheus.Gauge
	startTime time.Time
}

// NewMetrics creates a metrics bridge registered on the default registry.
func NewMetrics() *Metrics {
	return NewMetricsWith(prometheus.DefaultRegisterer)
}

// NewMetricsWith creates a metrics bridge on the given registerer.
func NewMetricsWith(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	m := &Metrics{
		startTime: time.Now(),

		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tracebacker_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "tracebacker_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "path"},
		),

		FunctionCalls: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tracebacker_function_calls_total",
				Help: "Total number of instrumented function calls",
			},
			[]string{"function"},
		),
		FunctionDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "tracebacker_function_duration_seconds",
				Help:    "Instrumented function duration in seconds",
				Buckets: []float64{.0001, .0005, .001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
			},
			[]string{"function"},
		),

		TraceEntries: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "tracebacker_trace_entries_total",
				Help: "Total number of trace entries recorded",
			},
		),
		TracingActive: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "tracebacker_tracing_active",
				Help: "Whether the trace collector is recording (1 or 0)",
			},
		),

		WSConnections: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "tracebacker_ws_connections",
				Help: "Number of active WebSocket stream clients",
			},
		),

		Uptime: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "tracebacker_uptime_seconds",
				Help: "Service uptime in seconds",
			},
		),
	}

	// Start uptime updater
	go m.updateUptime()

	return m
}

// updateUptime continuously updates the uptime metric
func (m *Metrics) updateUptime() {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for range ticker.C {
		m.Uptime.Set(time.Since(m.startTime).Seconds())
	}
}

// RecordHTTPRequest records an HTTP request
func (m *Metrics) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	m.RequestsTotal.WithLabelValues(method, path, status).Inc()
	m.RequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordFunctionCall mirrors one instrumented call into Prometheus
func (m *Metrics) RecordFunctionCall(function string, duration time.Duration) {
	m.FunctionCalls.WithLabelValues(function).Inc()
	m.FunctionDuration.WithLabelValues(function).Observe(duration.Seconds())
}

// IncTraceEntries counts one recorded trace entry
func (m *Metrics) IncTraceEntries() {
	m.TraceEntries.Inc()
}

// SetTracingActive reflects the collector's active flag
func (m *Metrics) SetTracingActive(active bool) {
	if active {
		m.TracingActive.Set(1)
	} else {
		m.TracingActive.Set(0)
	}
}

// IncWSConnections increments WebSocket stream clients
func (m *Metrics) IncWSConnections() {
	m.WSConnections.Inc()
}

// DecWSConnections decrements WebSocket stream clients
func (m *Metrics) DecWSConnections() {
	m.WSConnections.Dec()
}
