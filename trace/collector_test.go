package trace

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addN(c *Collector, n int) {
	for i := 0; i < n; i++ {
		c.Add("fn", "file.go", i, time.Now(), time.Millisecond)
	}
}

func TestStartRecordStop(t *testing.T) {
	c := New()

	c.Start()
	addN(c, 5)
	c.Stop()

	traces := c.Snapshot()
	require.Len(t, traces, 5)

	// Adds after Stop record nothing.
	c.Add("late", "file.go", 1, time.Now(), time.Millisecond)
	assert.Equal(t, 5, c.Len())
}

func TestStartClearsPreviousSession(t *testing.T) {
	c := New()

	c.Start()
	addN(c, 3)
	c.Stop()

	c.Start()
	addN(c, 2)
	c.Stop()

	assert.Equal(t, 2, c.Len())
}

func TestAddInactiveIsNoOp(t *testing.T) {
	c := New()

	addN(c, 4)
	assert.Equal(t, 0, c.Len())
	assert.Empty(t, c.Snapshot())
}

func TestClearIgnoresActiveState(t *testing.T) {
	c := New()

	c.Start()
	addN(c, 3)
	c.Clear()
	assert.Equal(t, 0, c.Len())
	assert.True(t, c.Active())

	// Still recording after a clear.
	addN(c, 1)
	assert.Equal(t, 1, c.Len())

	c.Stop()
	addN(c, 2)
	c.Clear()
	assert.Equal(t, 0, c.Len())
	assert.False(t, c.Active())
}

func TestSnapshotIsACopy(t *testing.T) {
	c := New()
	c.Start()
	addN(c, 2)

	snap := c.Snapshot()
	snap[0].Function = "mutated"

	fresh := c.Snapshot()
	assert.Equal(t, "fn", fresh[0].Function)
}

func TestEntryFields(t *testing.T) {
	c := New()
	c.Start()

	start := time.Now()
	c.Add("decode", "pipeline/decode.go", 42, start, 250*time.Millisecond)

	entries := c.Snapshot()
	require.Len(t, entries, 1)

	e := entries[0]
	assert.Equal(t, "decode", e.Function)
	assert.Equal(t, "pipeline/decode.go", e.File)
	assert.Equal(t, 42, e.Line)
	assert.InDelta(t, float64(start.UnixNano())/1e9, e.Timestamp, 1e-6)
	assert.InDelta(t, 0.25, e.Duration, 1e-9)
	assert.NotZero(t, e.Goroutine)
}

func TestConcurrentAdds(t *testing.T) {
	const goroutines = 8
	const perGoroutine = 200

	c := New()
	c.Start()

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			addN(c, perGoroutine)
		}()
	}
	wg.Wait()
	c.Stop()

	assert.Equal(t, goroutines*perGoroutine, c.Len())
}

func TestConcurrentSnapshotDuringAdds(t *testing.T) {
	c := New()
	c.Start()

	done := make(chan struct{})
	go func() {
		defer close(done)
		addN(c, 500)
	}()

	for i := 0; i < 50; i++ {
		_ = c.Snapshot()
	}
	<-done

	assert.Equal(t, 500, c.Len())
}

func TestDefaultIsSingleton(t *testing.T) {
	assert.Same(t, Default(), Default())
}

func TestHookFiresPerEntry(t *testing.T) {
	c := New()

	var fired int
	c.SetHook(func() { fired++ })

	c.Start()
	addN(c, 3)
	c.Stop()

	assert.Equal(t, 3, fired)

	// Inactive adds record nothing, so the hook stays quiet too.
	addN(c, 2)
	assert.Equal(t, 3, fired)
}
