/*
Package trace captures a flat, timestamped log of function executions.

# Overview

A Collector records one Entry per traced execution while tracing is active.
The log is a single mutex-protected buffer; the active flag is read without
the lock so that a disabled collector costs one atomic load per call site.

Entries are produced through the scoped timer (Span), never by hand:

	span := trace.Default().BeginHere()
	defer span.End()

or by wrapping a unit of work:

	trace.Default().Trace("decode", "pipeline/decode.go", 42, func() {
		decode(frame)
	})

# Semantics

  - Start clears any previous session's log and activates collection; the
    clear and the flag flip happen under the log lock, so no stale entry
    survives into the new session and no concurrent Add is torn.
  - Stop deactivates collection but keeps the log readable.
  - Add on an inactive collector is a silent no-op. Instrumentation must
    never be a source of failure, so there is no error path anywhere in
    this package.
*/
package trace
