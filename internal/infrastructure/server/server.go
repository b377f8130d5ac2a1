package server

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	httpapi "github.com/pipecat-ai/tracebacker/internal/api/http"
	"github.com/pipecat-ai/tracebacker/internal/api/middleware"
	"github.com/pipecat-ai/tracebacker/internal/api/ws"
	"github.com/pipecat-ai/tracebacker/internal/infrastructure/config"
	"github.com/pipecat-ai/tracebacker/internal/infrastructure/logging"
	"github.com/pipecat-ai/tracebacker/internal/infrastructure/monitoring"
	"github.com/pipecat-ai/tracebacker/perf"
	"github.com/pipecat-ai/tracebacker/trace"
)

// Server wraps the HTTP server and dependencies
type Server struct {
	router    *gin.Engine
	collector *trace.Collector
	tracker   *perf.Tracker
	logger    *logging.Logger
	config    *config.Config
	metrics   *monitoring.Metrics
}

// NewServer creates a new server instance fronting the process-wide
// collector and tracker, so in-process instrumentation and the API
// observe the same state.
func NewServer(cfg *config.Config) (*Server, error) {
	// Initialize logger
	var logger *logging.Logger
	if cfg.Logging.Development {
		logger = logging.NewDevelopment()
	} else {
		logger = logging.NewDefault()
	}

	logger.Info("Initializing TraceBacker Server",
		zap.String("port", cfg.Server.Port),
		zap.Bool("tracking", cfg.Telemetry.TrackingEnabled),
		zap.Bool("tracing", cfg.Telemetry.TracingEnabled),
	)

	// Initialize metrics first (middleware depends on it)
	metrics := monitoring.NewMetrics()
	logger.Info("Prometheus metrics initialized")

	collector := trace.Default()
	tracker := perf.Default()

	// Mirror recorded entries into the Prometheus counter
	collector.SetHook(metrics.IncTraceEntries)

	// Apply configured startup state
	if cfg.Telemetry.TrackingEnabled {
		tracker.Enable()
	} else {
		tracker.Disable()
	}
	if cfg.Telemetry.TracingEnabled {
		collector.Start()
		metrics.SetTracingActive(true)
	}

	// Create router
	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(monitoring.Middleware(metrics, tracker))
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	if cfg.RateLimit.Enabled {
		logger.Info("Rate limiting enabled",
			zap.Int("rps", cfg.RateLimit.RequestsPerSecond),
			zap.Int("burst", cfg.RateLimit.Burst),
		)
		router.Use(middleware.RateLimit(middleware.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
		}))
	}

	// Create handlers
	handlers := httpapi.NewHandlers(collector, tracker, metrics, cfg)
	wsHandler := ws.NewHandler(collector, tracker, metrics, logger,
		time.Duration(cfg.Stream.IntervalMS)*time.Millisecond)

	// Register routes
	httpapi.Register(router, handlers)

	// WebSocket stats stream
	router.GET("/stream", wsHandler.HandleConnection)

	// Prometheus exposition
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	logger.Info("Server initialized successfully")

	return &Server{
		router:    router,
		collector: collector,
		tracker:   tracker,
		logger:    logger,
		config:    cfg,
		metrics:   metrics,
	}, nil
}

// Run starts the HTTP server
func (s *Server) Run() error {
	addr := s.config.Server.Host + ":" + s.config.Server.Port
	s.logger.Info("Starting HTTP server", zap.String("addr", addr))
	return s.router.Run(addr)
}

// Close gracefully shuts down the server
func (s *Server) Close() error {
	s.logger.Info("Shutting down server...")

	// Stop collection so instrumented callers quiesce before exit
	s.collector.Stop()
	s.metrics.SetTracingActive(false)

	// Sync logger before exit
	s.logger.Sync()

	return nil
}
