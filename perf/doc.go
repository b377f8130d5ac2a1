/*
Package perf aggregates timing statistics per named counter.

# Overview

A Tracker keeps call count, total/min/max/average duration per name, with
an optional bounded rolling window of recent samples per name for
percentile and trend analysis. All durations are stored and reported as
float64 seconds.

	tracker := perf.Default()
	tracker.EnableSampling("tts.synthesize", 200)

	timer := tracker.StartTimer("tts.synthesize")
	synthesize(text)
	timer.Stop()

	stats := tracker.Stats()

# Contract

Statistics are always safe to query: unknown names, empty windows, and
too-few samples resolve to empty or zero results, never errors. When the
tracker is disabled, Record is a no-op checked before the lock.

Percentiles (p50/p90/p95/p99) use nearest-rank indexing into the ascending
sort of the sample window and are computed only when at least two samples
exist; the minimum-duration sentinel never leaks into snapshots.
*/
package perf
