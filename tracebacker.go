// Package tracebacker is an in-process runtime instrumentation core: a
// function-level execution tracer, a per-goroutine call-stack tracker, and
// a statistical performance aggregator with rolling sample windows and
// percentile computation.
//
// The three components live in their own packages (trace, callstack, perf)
// and are independent; this package re-exports the operations of the
// process-wide default instances for hosts that want drop-in,
// zero-plumbing instrumentation:
//
//	tracebacker.StartTracing()
//	span := tracebacker.Begin("mix", "pipeline/mix.go", 120)
//	defer span.End()
//
//	tracebacker.RecordFunction("stt.transcribe", elapsed)
//	stats := tracebacker.PerformanceStats()
//
// Hosts needing isolated instances construct them directly with trace.New,
// callstack.New, and perf.New.
package tracebacker

import (
	"time"

	"github.com/pipecat-ai/tracebacker/perf"
	"github.com/pipecat-ai/tracebacker/trace"
)

// StartTracing clears the default trace log and begins collecting.
func StartTracing() { trace.Default().Start() }

// StopTracing stops collection. Collected traces stay retrievable.
func StopTracing() { trace.Default().Stop() }

// IsTracing reports whether the default collector is recording.
func IsTracing() bool { return trace.Default().Active() }

// Traces returns a snapshot of the default collector's log.
func Traces() []trace.Entry { return trace.Default().Snapshot() }

// ClearTraces empties the default collector's log.
func ClearTraces() { trace.Default().Clear() }

// Begin opens a scoped timer on the default collector for the named
// location. The returned span submits one trace entry on End.
func Begin(function, file string, line int) *trace.Span {
	return trace.Default().Begin(function, file, line)
}

// TraceFunction runs fn inside a span on the default collector, resolving
// the work's identity from the given name.
func TraceFunction(function, file string, line int, fn func()) {
	trace.Default().Trace(function, file, line, fn)
}

// EnableTracking turns on the default performance tracker.
func EnableTracking() { perf.Default().Enable() }

// DisableTracking turns off the default performance tracker.
func DisableTracking() { perf.Default().Disable() }

// IsTrackingEnabled reports whether the default tracker records.
func IsTrackingEnabled() bool { return perf.Default().Enabled() }

// RecordFunction records one pre-measured call duration under name.
func RecordFunction(name string, d time.Duration) { perf.Default().Record(name, d) }

// EnableFunctionSampling retains up to maxSamples recent durations for
// name on the default tracker.
func EnableFunctionSampling(name string, maxSamples int) {
	perf.Default().EnableSampling(name, maxSamples)
}

// DisableFunctionSampling stops sample capture for name; retained samples
// are kept.
func DisableFunctionSampling(name string) { perf.Default().DisableSampling(name) }

// PerformanceStats snapshots every counter on the default tracker.
func PerformanceStats() map[string]perf.Stats { return perf.Default().Stats() }

// ClearPerformanceStats wipes the default tracker.
func ClearPerformanceStats() { perf.Default().Clear() }

// MovingAverage returns the trailing simple moving average for name's
// sample window on the default tracker.
func MovingAverage(name string, window int) []float64 {
	return perf.Default().MovingAverage(name, window)
}
