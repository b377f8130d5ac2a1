/*
Package monitoring re-publishes the in-process telemetry as Prometheus
metrics and instruments the host's transport layers.

# Overview

The core trackers (trace.Collector, perf.Tracker) keep their own state and
never export anything themselves. This package is the bridge: it mirrors
recorded calls into prometheus counters/histograms and provides Gin
middleware plus gRPC interceptors that time every request into both the
performance tracker and Prometheus.

# Usage

	metrics := monitoring.NewMetrics()
	router.Use(monitoring.Middleware(metrics, perf.Default()))

	// Record into both worlds at once
	metrics.RecordFunctionCall("tts.synthesize", elapsed)

	// Exposition via the standard endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

Tests construct isolated instances with NewMetricsWith and a private
prometheus.Registry to avoid duplicate-registration panics.
*/
package monitoring
