package perf

import "time"

// Timer measures one operation's duration against a named counter.
type Timer struct {
	tracker *Tracker
	name    string
	start   time.Time
	done    bool
}

// StartTimer begins timing an operation under name.
func (t *Tracker) StartTimer(name string) *Timer {
	return &Timer{
		tracker: t,
		name:    name,
		start:   time.Now(),
	}
}

// Stop records the elapsed time. Only the first call records.
func (tm *Timer) Stop() {
	if tm.done {
		return
	}
	tm.done = true
	tm.tracker.Record(tm.name, time.Since(tm.start))
}

// Track runs fn and records its duration under name. The recording is
// deferred, so it happens even when fn panics.
func (t *Tracker) Track(name string, fn func()) {
	timer := t.StartTimer(name)
	defer timer.Stop()
	fn()
}
