/*
Package ws streams live performance snapshots over WebSocket.

Each client gets a ULID identity and a push loop that emits the full
tracker snapshot at a fixed interval. Clients may also request an
immediate snapshot or ping for liveness; anything else gets an error
frame. Connection counts feed the Prometheus gauge.
*/
package ws
