package http

import "github.com/gin-gonic/gin"

// Register wires every REST route onto the router. The WebSocket stream
// and the Prometheus exposition endpoint are wired by the server, not
// here, so tests can mount the REST surface in isolation.
func Register(r gin.IRouter, h *Handlers) {
	r.GET("/", h.Root)
	r.GET("/health", h.Health)

	// Trace collector lifecycle
	r.POST("/traces/start", h.StartTracing)
	r.POST("/traces/stop", h.StopTracing)
	r.GET("/traces/status", h.TracingStatus)
	r.GET("/traces", h.GetTraces)
	r.DELETE("/traces", h.ClearTraces)

	// Performance tracker toggle
	r.POST("/tracking/enable", h.EnableTracking)
	r.POST("/tracking/disable", h.DisableTracking)
	r.GET("/tracking/status", h.TrackingStatus)

	// Per-function counters
	r.POST("/functions/:name/record", h.RecordFunction)
	r.POST("/functions/:name/sampling", h.EnableSampling)
	r.DELETE("/functions/:name/sampling", h.DisableSampling)
	r.GET("/functions/:name/stats", h.GetFunctionStats)
	r.DELETE("/functions/:name/stats", h.ClearFunctionStats)
	r.GET("/functions/:name/moving-average", h.MovingAverage)

	// Aggregate stats
	r.GET("/stats", h.GetStats)
	r.DELETE("/stats", h.ClearStats)

	// Bulk export
	r.GET("/export", h.Export)
}
