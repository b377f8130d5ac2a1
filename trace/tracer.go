package trace

import (
	"runtime"
	"time"
)

// Span measures one unit of work. Acquisition records nothing; End
// computes the elapsed wall-clock time and submits a single entry.
// A Span belongs to one goroutine and must not be shared.
type Span struct {
	collector *Collector
	function  string
	file      string
	line      int
	start     time.Time
	done      bool
}

// Begin opens a span for the named location.
func (c *Collector) Begin(function, file string, line int) *Span {
	return &Span{
		collector: c,
		function:  function,
		file:      file,
		line:      line,
		start:     time.Now(),
	}
}

// BeginHere opens a span for the calling function, resolving name, file,
// and line from the runtime.
func (c *Collector) BeginHere() *Span {
	function, file, line := caller(2)
	return c.Begin(function, file, line)
}

// End closes the span and submits its entry. Safe to call more than once;
// only the first call records.
func (s *Span) End() {
	if s.done {
		return
	}
	s.done = true
	s.collector.Add(s.function, s.file, s.line, s.start, time.Since(s.start))
}

// Trace runs fn inside a span. The entry is recorded even when fn panics,
// so timing capture survives every exit path.
func (c *Collector) Trace(function, file string, line int, fn func()) {
	span := c.Begin(function, file, line)
	defer span.End()
	fn()
}

// caller resolves the function name, file, and line `skip` frames up.
func caller(skip int) (function, file string, line int) {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "<unknown>", "<unknown>", 0
	}
	if fn := runtime.FuncForPC(pc); fn != nil {
		function = fn.Name()
	} else {
		function = "<unknown>"
	}
	return function, file, line
}
