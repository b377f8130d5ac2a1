package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "9600", cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)

	assert.True(t, cfg.Telemetry.TrackingEnabled)
	assert.False(t, cfg.Telemetry.TracingEnabled)
	assert.Equal(t, 100, cfg.Telemetry.MaxSamples)
	assert.Equal(t, 5, cfg.Telemetry.WindowSize)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.Logging.Development)

	assert.Equal(t, 100, cfg.RateLimit.RequestsPerSecond)
	assert.Equal(t, 200, cfg.RateLimit.Burst)
	assert.True(t, cfg.RateLimit.Enabled)

	assert.Equal(t, 1000, cfg.Stream.IntervalMS)
}

func TestLoadOrDefault(t *testing.T) {
	cfg := LoadOrDefault()

	assert.NotNil(t, cfg)
	assert.Equal(t, "9600", cfg.Server.Port)
	assert.Equal(t, 100, cfg.Telemetry.MaxSamples)
}

func TestLoadWithEnvironmentVariables(t *testing.T) {
	envVars := map[string]string{
		"PORT":               "9700",
		"HOST":               "127.0.0.1",
		"TRACKING_ENABLED":   "false",
		"TRACING_ENABLED":    "true",
		"MAX_SAMPLES":        "250",
		"SMA_WINDOW":         "10",
		"LOG_LEVEL":          "debug",
		"LOG_DEV":            "true",
		"RATE_LIMIT_RPS":     "500",
		"RATE_LIMIT_BURST":   "1000",
		"RATE_LIMIT_ENABLED": "false",
		"STREAM_INTERVAL_MS": "250",
	}

	for key, value := range envVars {
		os.Setenv(key, value)
	}
	defer func() {
		for key := range envVars {
			os.Unsetenv(key)
		}
	}()

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9700", cfg.Server.Port)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.False(t, cfg.Telemetry.TrackingEnabled)
	assert.True(t, cfg.Telemetry.TracingEnabled)
	assert.Equal(t, 250, cfg.Telemetry.MaxSamples)
	assert.Equal(t, 10, cfg.Telemetry.WindowSize)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Logging.Development)
	assert.Equal(t, 500, cfg.RateLimit.RequestsPerSecond)
	assert.Equal(t, 1000, cfg.RateLimit.Burst)
	assert.False(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 250, cfg.Stream.IntervalMS)
}
