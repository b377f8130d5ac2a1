package perf

import (
	"math"
	"sync"
	"sync/atomic"
	"time"
)

// DefaultMaxSamples bounds a counter's rolling sample window unless the
// caller picks another bound.
const DefaultMaxSamples = 100

// DefaultWindowSize is the moving-average window used by callers that do
// not choose their own.
const DefaultWindowSize = 5

// functionStats is the live, lock-protected state of one named counter.
// minTime holds +Inf until the first recording; snapshots report 0 instead.
type functionStats struct {
	callCount  uint64
	totalTime  float64
	minTime    float64
	maxTime    float64
	samples    []float64
	collecting bool
	maxSamples int
}

// Stats is an immutable snapshot of one counter.
type Stats struct {
	Name        string       `json:"name"`
	CallCount   uint64       `json:"call_count"`
	TotalTime   float64      `json:"total_time"`
	MinTime     float64      `json:"min_time"`
	MaxTime     float64      `json:"max_time"`
	AvgTime     float64      `json:"avg_time"`
	Samples     []float64    `json:"samples,omitempty"`
	Percentiles *Percentiles `json:"percentiles,omitempty"`
}

// Tracker aggregates execution timings by counter name.
type Tracker struct {
	mu      sync.Mutex
	fns     map[string]*functionStats
	enabled atomic.Bool
}

// New creates an enabled tracker with no counters.
func New() *Tracker {
	t := &Tracker{fns: make(map[string]*functionStats)}
	t.enabled.Store(true)
	return t
}

var (
	defaultTracker *Tracker
	defaultOnce    sync.Once
)

// Default returns the process-wide tracker, creating it on first use.
func Default() *Tracker {
	defaultOnce.Do(func() {
		defaultTracker = New()
	})
	return defaultTracker
}

// Enable turns recording on.
func (t *Tracker) Enable() {
	t.enabled.Store(true)
}

// Disable turns recording off. Record becomes a no-op; queries still work.
func (t *Tracker) Disable() {
	t.enabled.Store(false)
}

// Enabled reports whether recording is on.
func (t *Tracker) Enabled() bool {
	return t.enabled.Load()
}

// Record adds one call's duration to the named counter.
func (t *Tracker) Record(name string, d time.Duration) {
	t.RecordSeconds(name, d.Seconds())
}

// RecordSeconds adds one pre-measured duration, in seconds, to the named
// counter. The enabled flag is checked before the lock so a disabled
// tracker costs one atomic load per call.
func (t *Tracker) RecordSeconds(name string, seconds float64) {
	if !t.enabled.Load() {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	fs := t.lookup(name)
	fs.callCount++
	fs.totalTime += seconds
	fs.minTime = math.Min(fs.minTime, seconds)
	fs.maxTime = math.Max(fs.maxTime, seconds)

	if fs.collecting {
		if len(fs.samples) == fs.maxSamples {
			// FIFO eviction: shift in place so the reserved window
			// capacity is never reallocated.
			copy(fs.samples, fs.samples[1:])
			fs.samples[len(fs.samples)-1] = seconds
		} else {
			fs.samples = append(fs.samples, seconds)
		}
	}
}

// EnableSampling turns on sample retention for the named counter, bounded
// to maxSamples recent values (DefaultMaxSamples when maxSamples <= 0).
// Re-enabling resets the bound; any retained samples are kept.
func (t *Tracker) EnableSampling(name string, maxSamples int) {
	if maxSamples <= 0 {
		maxSamples = DefaultMaxSamples
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	fs := t.lookup(name)
	fs.collecting = true
	fs.maxSamples = maxSamples
	if cap(fs.samples) < maxSamples {
		grown := make([]float64, len(fs.samples), maxSamples)
		copy(grown, fs.samples)
		fs.samples = grown
	}
	if len(fs.samples) > maxSamples {
		fs.samples = append(fs.samples[:0], fs.samples[len(fs.samples)-maxSamples:]...)
	}
}

// DisableSampling stops future sample capture for the named counter.
// Already-collected samples are retained.
func (t *Tracker) DisableSampling(name string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if fs, ok := t.fns[name]; ok {
		fs.collecting = false
	}
}

// Stats snapshots every counter under a single lock acquisition, so the
// returned values are mutually consistent.
func (t *Tracker) Stats() map[string]Stats {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make(map[string]Stats, len(t.fns))
	for name, fs := range t.fns {
		out[name] = fs.snapshot(name)
	}
	return out
}

// StatsFor snapshots one counter. The second return is false for unknown
// names.
func (t *Tracker) StatsFor(name string) (Stats, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	fs, ok := t.fns[name]
	if !ok {
		return Stats{}, false
	}
	return fs.snapshot(name), true
}

// Clear wipes every counter.
func (t *Tracker) Clear() {
	t.mu.Lock()
	t.fns = make(map[string]*functionStats)
	t.mu.Unlock()
}

// ClearName wipes one counter's state, sampling configuration included.
func (t *Tracker) ClearName(name string) {
	t.mu.Lock()
	delete(t.fns, name)
	t.mu.Unlock()
}

// MovingAverage returns the trailing simple moving average over the named
// counter's sample window. Empty for unknown names or when fewer than
// window samples exist.
func (t *Tracker) MovingAverage(name string, window int) []float64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	fs, ok := t.fns[name]
	if !ok {
		return nil
	}
	return movingAverage(fs.samples, window)
}

// lookup returns the live stats for name, creating them on first sight.
// Callers must hold t.mu.
func (t *Tracker) lookup(name string) *functionStats {
	fs, ok := t.fns[name]
	if !ok {
		fs = &functionStats{
			minTime:    math.Inf(1),
			maxSamples: DefaultMaxSamples,
		}
		t.fns[name] = fs
	}
	return fs
}

// snapshot converts live state into an exportable Stats value. The +Inf
// minimum sentinel is reported as 0; averages guard against a zero count.
func (fs *functionStats) snapshot(name string) Stats {
	s := Stats{
		Name:      name,
		CallCount: fs.callCount,
		TotalTime: fs.totalTime,
		MaxTime:   fs.maxTime,
	}

	if !math.IsInf(fs.minTime, 1) {
		s.MinTime = fs.minTime
	}
	if fs.callCount > 0 {
		s.AvgTime = fs.totalTime / float64(fs.callCount)
	}
	if len(fs.samples) > 0 {
		s.Samples = make([]float64, len(fs.samples))
		copy(s.Samples, fs.samples)
		s.Percentiles = percentiles(fs.samples)
	}

	return s
}
