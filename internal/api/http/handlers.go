package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pipecat-ai/tracebacker/internal/infrastructure/config"
	"github.com/pipecat-ai/tracebacker/internal/infrastructure/monitoring"
	"github.com/pipecat-ai/tracebacker/internal/shared/id"
	"github.com/pipecat-ai/tracebacker/perf"
	"github.com/pipecat-ai/tracebacker/trace"
)

// Handlers contains all HTTP handlers
type Handlers struct {
	collector *trace.Collector
	tracker   *perf.Tracker
	metrics   *monitoring.Metrics
	config    *config.Config
}

// NewHandlers creates a new handler set
func NewHandlers(
	collector *trace.Collector,
	tracker *perf.Tracker,
	metrics *monitoring.Metrics,
	cfg *config.Config,
) *Handlers {
	return &Handlers{
		collector: collector,
		tracker:   tracker,
		metrics:   metrics,
		config:    cfg,
	}
}

// Root handles the service banner
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"service": "TraceBacker Telemetry Service",
		"version": "0.3.0",
	})
}

// Health handles detailed health check
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":           "healthy",
		"tracing_active":   h.collector.Active(),
		"tracking_enabled": h.tracker.Enabled(),
		"trace_entries":    h.collector.Len(),
	})
}

// StartTracing clears the trace log and begins a new session
func (h *Handlers) StartTracing(c *gin.Context) {
	h.collector.Start()
	h.metrics.SetTracingActive(true)
	c.JSON(http.StatusOK, gin.H{"tracing": true})
}

// StopTracing stops collection without discarding the log
func (h *Handlers) StopTracing(c *gin.Context) {
	h.collector.Stop()
	h.metrics.SetTracingActive(false)
	c.JSON(http.StatusOK, gin.H{"tracing": false})
}

// TracingStatus reports the active flag
func (h *Handlers) TracingStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tracing": h.collector.Active()})
}

// GetTraces returns a snapshot of the trace log
func (h *Handlers) GetTraces(c *gin.Context) {
	traces := h.collector.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"count":  len(traces),
		"traces": traces,
	})
}

// ClearTraces empties the trace log
func (h *Handlers) ClearTraces(c *gin.Context) {
	h.collector.Clear()
	c.JSON(http.StatusOK, gin.H{"cleared": true})
}

// EnableTracking turns the performance tracker on
func (h *Handlers) EnableTracking(c *gin.Context) {
	h.tracker.Enable()
	c.JSON(http.StatusOK, gin.H{"tracking": true})
}

// DisableTracking turns the performance tracker off
func (h *Handlers) DisableTracking(c *gin.Context) {
	h.tracker.Disable()
	c.JSON(http.StatusOK, gin.H{"tracking": false})
}

// TrackingStatus reports the enabled flag
func (h *Handlers) TrackingStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tracking": h.tracker.Enabled()})
}

// recordRequest is the body of a direct recording call. The duration is a
// pointer so a legitimate zero passes the required check.
type recordRequest struct {
	DurationSeconds *float64 `json:"duration_seconds" binding:"required,gte=0"`
}

// RecordFunction records a pre-measured duration under the named counter,
// for callers that time work themselves instead of using the scoped timer
func (h *Handlers) RecordFunction(c *gin.Context) {
	name := c.Param("name")

	var req recordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	seconds := *req.DurationSeconds
	h.tracker.RecordSeconds(name, seconds)
	h.metrics.RecordFunctionCall(name, time.Duration(seconds*float64(time.Second)))
	c.JSON(http.StatusOK, gin.H{"recorded": name})
}

// samplingRequest is the body of a sampling toggle
type samplingRequest struct {
	MaxSamples int `json:"max_samples"`
}

// EnableSampling turns on bounded sample retention for a counter
func (h *Handlers) EnableSampling(c *gin.Context) {
	name := c.Param("name")

	// Missing or empty body falls back to the configured default bound.
	var req samplingRequest
	_ = c.ShouldBindJSON(&req)
	if req.MaxSamples <= 0 {
		req.MaxSamples = h.config.Telemetry.MaxSamples
	}

	h.tracker.EnableSampling(name, req.MaxSamples)
	c.JSON(http.StatusOK, gin.H{
		"sampling":    name,
		"max_samples": req.MaxSamples,
	})
}

// DisableSampling stops future sample capture for a counter
func (h *Handlers) DisableSampling(c *gin.Context) {
	name := c.Param("name")
	h.tracker.DisableSampling(name)
	c.JSON(http.StatusOK, gin.H{"sampling_disabled": name})
}

// GetStats returns a consistent snapshot of every counter
func (h *Handlers) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"stats": h.tracker.Stats()})
}

// GetFunctionStats returns one counter's snapshot; unknown names resolve
// to an empty snapshot, never an error
func (h *Handlers) GetFunctionStats(c *gin.Context) {
	name := c.Param("name")

	stats, ok := h.tracker.StatsFor(name)
	if !ok {
		stats = perf.Stats{Name: name}
	}
	c.JSON(http.StatusOK, stats)
}

// ClearStats wipes every counter
func (h *Handlers) ClearStats(c *gin.Context) {
	h.tracker.Clear()
	c.JSON(http.StatusOK, gin.H{"cleared": true})
}

// ClearFunctionStats wipes one counter
func (h *Handlers) ClearFunctionStats(c *gin.Context) {
	name := c.Param("name")
	h.tracker.ClearName(name)
	c.JSON(http.StatusOK, gin.H{"cleared": name})
}

// MovingAverage returns the trailing SMA over a counter's sample window
func (h *Handlers) MovingAverage(c *gin.Context) {
	name := c.Param("name")

	window := h.config.Telemetry.WindowSize
	if raw := c.Query("window"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "window must be a positive integer"})
			return
		}
		window = parsed
	}

	values := h.tracker.MovingAverage(name, window)
	if values == nil {
		values = []float64{}
	}
	c.JSON(http.StatusOK, gin.H{
		"function": name,
		"window":   window,
		"values":   values,
	})
}

// ExportSnapshot is the bulk export payload
type ExportSnapshot struct {
	SnapshotID id.SnapshotID         `json:"snapshot_id"`
	Timestamp  time.Time             `json:"timestamp"`
	Tracing    bool                  `json:"tracing"`
	Tracking   bool                  `json:"tracking"`
	Traces     []trace.Entry         `json:"traces"`
	Stats      map[string]perf.Stats `json:"stats"`
}

// Export returns a fully-materialized snapshot of both components,
// suitable for serialization by the caller into any downstream format
func (h *Handlers) Export(c *gin.Context) {
	c.JSON(http.StatusOK, ExportSnapshot{
		SnapshotID: id.NewSnapshotID(),
		Timestamp:  time.Now(),
		Tracing:    h.collector.Active(),
		Tracking:   h.tracker.Enabled(),
		Traces:     h.collector.Snapshot(),
		Stats:      h.tracker.Stats(),
	})
}
