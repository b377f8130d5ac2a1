package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Telemetry TelemetryConfig
	Logging   LogConfig
	RateLimit RateLimitConfig
	Stream    StreamConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port string `envconfig:"PORT" default:"9600"`
	Host string `envconfig:"HOST" default:"0.0.0.0"`
}

// TelemetryConfig holds defaults for the trace collector and the
// performance tracker.
type TelemetryConfig struct {
	TrackingEnabled bool `envconfig:"TRACKING_ENABLED" default:"true"`
	TracingEnabled  bool `envconfig:"TRACING_ENABLED" default:"false"`
	MaxSamples      int  `envconfig:"MAX_SAMPLES" default:"100"`
	WindowSize      int  `envconfig:"SMA_WINDOW" default:"5"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// RateLimitConfig holds rate limiting configuration.
type RateLimitConfig struct {
	RequestsPerSecond int  `envconfig:"RATE_LIMIT_RPS" default:"100"`
	Burst             int  `envconfig:"RATE_LIMIT_BURST" default:"200"`
	Enabled           bool `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
}

// StreamConfig holds WebSocket stats-stream configuration.
type StreamConfig struct {
	IntervalMS int `envconfig:"STREAM_INTERVAL_MS" default:"1000"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port: "9600",
			Host: "0.0.0.0",
		},
		Telemetry: TelemetryConfig{
			TrackingEnabled: true,
			TracingEnabled:  false,
			MaxSamples:      100,
			WindowSize:      5,
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 100,
			Burst:             200,
			Enabled:           true,
		},
		Stream: StreamConfig{
			IntervalMS: 1000,
		},
	}
}
