package callstack

import (
	"sync"

	"github.com/pipecat-ai/tracebacker/internal/goid"
)

// Frame is one in-progress call on a goroutine's shadow stack.
type Frame struct {
	Function  string  `json:"function"`
	Module    string  `json:"module"`
	Line      int     `json:"line"`
	EnterTime float64 `json:"enter_time"` // seconds since epoch
}

// Tracker holds the shadow stack for a single goroutine. All stack
// operations must be invoked from the goroutine that called New; ownership
// is exclusive, which is what makes Push and Pop lock-free.
type Tracker struct {
	gid    uint64
	frames []Frame
}

var (
	registryMu sync.Mutex
	registry   = make(map[uint64]*Tracker)
)

// New creates a tracker and registers it under the calling goroutine's
// identity. A prior tracker registered on the same goroutine is silently
// replaced; see the package documentation.
func New() *Tracker {
	t := &Tracker{gid: goid.ID()}

	registryMu.Lock()
	registry[t.gid] = t
	registryMu.Unlock()

	return t
}

// Close removes this tracker's registration. The stack itself remains
// usable; only the Current lookup forgets it.
func (t *Tracker) Close() {
	registryMu.Lock()
	delete(registry, t.gid)
	registryMu.Unlock()
}

// Current returns the tracker registered for the calling goroutine, or
// false when none is registered.
func Current() (*Tracker, bool) {
	gid := goid.ID()

	registryMu.Lock()
	t, ok := registry[gid]
	registryMu.Unlock()

	return t, ok
}

// Push appends a frame for a call being entered.
func (t *Tracker) Push(function, module string, line int, enterTime float64) {
	t.frames = append(t.frames, Frame{
		Function:  function,
		Module:    module,
		Line:      line,
		EnterTime: enterTime,
	})
}

// Pop removes and returns the most recent frame. An empty stack yields the
// zero-valued sentinel frame, never an error.
func (t *Tracker) Pop() Frame {
	if len(t.frames) == 0 {
		return Frame{}
	}

	top := t.frames[len(t.frames)-1]
	t.frames = t.frames[:len(t.frames)-1]
	return top
}

// Depth returns the current number of frames.
func (t *Tracker) Depth() int {
	return len(t.frames)
}

// Stack returns a copy of the stack ordered most-recent-call-first. The
// live stack is never disturbed by the copy.
func (t *Tracker) Stack() []Frame {
	out := make([]Frame, len(t.frames))
	for i, frame := range t.frames {
		out[len(t.frames)-1-i] = frame
	}
	return out
}
