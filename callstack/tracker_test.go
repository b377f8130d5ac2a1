package callstack

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushPopLIFO(t *testing.T) {
	tracker := New()
	defer tracker.Close()

	tracker.Push("A", "mod", 1, 1.0)
	tracker.Push("B", "mod", 2, 2.0)
	tracker.Push("C", "mod", 3, 3.0)

	assert.Equal(t, "C", tracker.Pop().Function)
	assert.Equal(t, "B", tracker.Pop().Function)
	assert.Equal(t, "A", tracker.Pop().Function)
	assert.Equal(t, 0, tracker.Depth())
}

func TestPopEmptyReturnsSentinel(t *testing.T) {
	tracker := New()
	defer tracker.Close()

	frame := tracker.Pop()
	assert.Equal(t, Frame{}, frame)
	assert.Empty(t, frame.Function)
	assert.Zero(t, frame.Line)
	assert.Zero(t, frame.EnterTime)
}

func TestDepthOnFreshTracker(t *testing.T) {
	tracker := New()
	defer tracker.Close()

	assert.Equal(t, 0, tracker.Depth())
}

func TestStackOrderAndIsolation(t *testing.T) {
	tracker := New()
	defer tracker.Close()

	tracker.Push("outer", "mod", 10, 1.0)
	tracker.Push("middle", "mod", 20, 2.0)
	tracker.Push("inner", "mod", 30, 3.0)

	stack := tracker.Stack()
	require.Len(t, stack, 3)

	// Most-recent-call-first; oldest pushed appears last.
	assert.Equal(t, "inner", stack[0].Function)
	assert.Equal(t, "middle", stack[1].Function)
	assert.Equal(t, "outer", stack[2].Function)

	// Copy must not disturb the live stack.
	stack[0].Function = "mutated"
	assert.Equal(t, 3, tracker.Depth())
	assert.Equal(t, "inner", tracker.Pop().Function)
}

func TestCurrentLookup(t *testing.T) {
	_, ok := Current()
	assert.False(t, ok, "fresh goroutine should have no tracker")

	tracker := New()
	found, ok := Current()
	require.True(t, ok)
	assert.Same(t, tracker, found)

	tracker.Close()
	_, ok = Current()
	assert.False(t, ok)
}

func TestSecondTrackerOverwritesRegistration(t *testing.T) {
	first := New()
	second := New()
	defer second.Close()

	found, ok := Current()
	require.True(t, ok)
	assert.Same(t, second, found, "last-registered tracker wins")
	assert.NotSame(t, first, found)
}

func TestPerGoroutineIsolation(t *testing.T) {
	const goroutines = 4
	const frames = 50

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()

			tracker := New()
			defer tracker.Close()

			for i := 0; i < frames; i++ {
				tracker.Push("fn", "mod", g*1000+i, float64(i))
			}

			// Pops return only frames this goroutine pushed, in order.
			for i := frames - 1; i >= 0; i-- {
				frame := tracker.Pop()
				if frame.Line != g*1000+i {
					t.Errorf("goroutine %d got foreign frame line %d", g, frame.Line)
					return
				}
			}
		}(g)
	}
	wg.Wait()
}

func TestRegistryPerGoroutine(t *testing.T) {
	tracker := New()
	defer tracker.Close()

	done := make(chan struct{})
	go func() {
		defer close(done)
		// A different goroutine does not see this goroutine's tracker.
		if found, ok := Current(); ok && found == tracker {
			t.Error("tracker leaked across goroutines")
		}
	}()
	<-done
}
