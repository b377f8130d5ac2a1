package trace

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/pipecat-ai/tracebacker/internal/goid"
)

// Entry is one recorded function execution. Immutable once appended.
type Entry struct {
	Function  string  `json:"function"`
	File      string  `json:"file"`
	Line      int     `json:"line"`
	Timestamp float64 `json:"timestamp"` // seconds since epoch at span start
	Duration  float64 `json:"duration"`  // seconds
	Goroutine uint64  `json:"goroutine"`
}

// Collector accumulates trace entries while active.
type Collector struct {
	mu      sync.Mutex
	entries []Entry
	hook    func()
	active  atomic.Bool
}

// New creates an inactive collector with an empty log.
func New() *Collector {
	return &Collector{}
}

var (
	defaultCollector *Collector
	defaultOnce      sync.Once
)

// Default returns the process-wide collector, creating it on first use.
func Default() *Collector {
	defaultOnce.Do(func() {
		defaultCollector = New()
	})
	return defaultCollector
}

// Start clears the log and activates collection. The clear and the flag
// flip share one critical section so entries from a previous session can
// never leak into the new one.
func (c *Collector) Start() {
	c.mu.Lock()
	c.entries = nil
	c.active.Store(true)
	c.mu.Unlock()
}

// Stop deactivates collection. Already-recorded entries stay retrievable.
func (c *Collector) Stop() {
	c.active.Store(false)
}

// Active reports whether the collector is recording.
func (c *Collector) Active() bool {
	return c.active.Load()
}

// Add records one execution. No-op while inactive; the flag is checked
// before taking the lock to keep disabled call sites cheap.
func (c *Collector) Add(function, file string, line int, start time.Time, duration time.Duration) {
	if !c.active.Load() {
		return
	}

	entry := Entry{
		Function:  function,
		File:      file,
		Line:      line,
		Timestamp: float64(start.UnixNano()) / 1e9,
		Duration:  duration.Seconds(),
		Goroutine: goid.ID(),
	}

	c.mu.Lock()
	c.entries = append(c.entries, entry)
	hook := c.hook
	c.mu.Unlock()

	if hook != nil {
		hook()
	}
}

// SetHook registers fn to run once per recorded entry, for mirroring entry
// counts into external meters. fn must be fast and must not call back into
// the collector.
func (c *Collector) SetHook(fn func()) {
	c.mu.Lock()
	c.hook = fn
	c.mu.Unlock()
}

// Snapshot returns a copy of the current log. Safe to call concurrently
// with Add; the caller owns the returned slice.
func (c *Collector) Snapshot() []Entry {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Len returns the number of recorded entries.
func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Clear empties the log regardless of the active state.
func (c *Collector) Clear() {
	c.mu.Lock()
	c.entries = nil
	c.mu.Unlock()
}
