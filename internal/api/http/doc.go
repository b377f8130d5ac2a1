/*
Package http exposes the telemetry core over a REST control/export API.

Endpoints cover the trace collector (start/stop/snapshot/clear), the
performance tracker (enable/disable, direct recording, per-name sampling,
stats, moving averages), and a combined, ULID-tagged bulk export for
downstream shipping. The core defines no wire format beyond this JSON
projection; consumers serialize it onward however they like.
*/
package http
