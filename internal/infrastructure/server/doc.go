/*
Package server assembles the telemetry service: the process-wide trace
collector and performance tracker behind the REST API, the WebSocket
stats stream, and the Prometheus exposition endpoint, with CORS and
per-IP rate limiting applied router-wide.
*/
package server
