package ws

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/pipecat-ai/tracebacker/internal/infrastructure/logging"
	"github.com/pipecat-ai/tracebacker/internal/infrastructure/monitoring"
	"github.com/pipecat-ai/tracebacker/internal/shared/id"
	"github.com/pipecat-ai/tracebacker/perf"
	"github.com/pipecat-ai/tracebacker/trace"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins in dev
	},
}

// Handler manages WebSocket stats-stream connections
type Handler struct {
	collector *trace.Collector
	tracker   *perf.Tracker
	metrics   *monitoring.Metrics
	logger    *logging.Logger
	interval  time.Duration
}

// NewHandler creates a new WebSocket handler
func NewHandler(
	collector *trace.Collector,
	tracker *perf.Tracker,
	metrics *monitoring.Metrics,
	logger *logging.Logger,
	interval time.Duration,
) *Handler {
	return &Handler{
		collector: collector,
		tracker:   tracker,
		metrics:   metrics,
		logger:    logger,
		interval:  interval,
	}
}

// message is an inbound client frame
type message struct {
	Type string `json:"type"`
}

// HandleConnection handles WebSocket upgrade and the stats push loop
func (h *Handler) HandleConnection(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error("WebSocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	clientID := id.NewClientID()
	h.metrics.IncWSConnections()
	defer h.metrics.DecWSConnections()

	h.logger.Info("Stream client connected", zap.String("client_id", clientID.String()))
	defer h.logger.Info("Stream client disconnected", zap.String("client_id", clientID.String()))

	// The ticker goroutine and the read loop both write frames,
	// so every write goes through one mutex.
	var writeMu sync.Mutex
	send := func(data interface{}) error {
		writeMu.Lock()
		defer writeMu.Unlock()
		return conn.WriteJSON(data)
	}

	send(map[string]interface{}{
		"type":        "system",
		"message":     "Connected to TraceBacker stats stream",
		"client_id":   clientID.String(),
		"interval_ms": h.interval.Milliseconds(),
	})

	done := make(chan struct{})
	go h.push(send, done)
	defer close(done)

	// Listen for client frames
	for {
		var msg message
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Warn("WebSocket read error", zap.Error(err))
			}
			return
		}

		switch msg.Type {
		case "ping":
			send(map[string]interface{}{"type": "pong"})
		case "snapshot":
			send(h.statsFrame())
		default:
			send(map[string]interface{}{
				"type":    "error",
				"message": "unknown message type",
			})
		}
	}
}

// push writes a stats frame every interval until done closes
func (h *Handler) push(send func(interface{}) error, done <-chan struct{}) {
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if err := send(h.statsFrame()); err != nil {
				return
			}
		}
	}
}

func (h *Handler) statsFrame() map[string]interface{} {
	return map[string]interface{}{
		"type":          "stats",
		"timestamp":     time.Now().Unix(),
		"tracing":       h.collector.Active(),
		"trace_entries": h.collector.Len(),
		"tracking":      h.tracker.Enabled(),
		"stats":         h.tracker.Stats(),
	}
}
