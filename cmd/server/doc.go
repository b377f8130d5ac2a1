/*
Command server runs the TraceBacker telemetry service.

Configuration comes from environment variables (see the config package)
with -port and -host flag overrides. The service exposes the REST
control API, a WebSocket stats stream at /stream, and Prometheus
metrics at /metrics.
*/
package main
