// Package logging provides structured logging using uber/zap.
//
// Two modes are supported:
//   - Production: JSON output for machine parsing
//   - Development: Colored console output for human readability
//
// Example Usage:
//
//	logger := logging.NewDefault()
//	logger.Info("Tracing started", zap.Int("buffered_entries", n))
//	logger.Error("Stream write failed", zap.Error(err))
package logging
