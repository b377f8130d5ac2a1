package trace

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpanRecordsOnEnd(t *testing.T) {
	c := New()
	c.Start()

	span := c.Begin("work", "work.go", 10)
	assert.Equal(t, 0, c.Len(), "acquisition must record nothing")

	time.Sleep(5 * time.Millisecond)
	span.End()

	entries := c.Snapshot()
	require.Len(t, entries, 1)
	assert.Equal(t, "work", entries[0].Function)
	assert.Greater(t, entries[0].Duration, 0.0)
}

func TestSpanEndIsIdempotent(t *testing.T) {
	c := New()
	c.Start()

	span := c.Begin("work", "work.go", 10)
	span.End()
	span.End()

	assert.Equal(t, 1, c.Len())
}

func TestBeginHereResolvesCaller(t *testing.T) {
	c := New()
	c.Start()

	span := c.BeginHere()
	span.End()

	entries := c.Snapshot()
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].Function, "TestBeginHereResolvesCaller")
	assert.Contains(t, entries[0].File, "tracer_test.go")
	assert.Greater(t, entries[0].Line, 0)
}

func TestTraceWrapsWork(t *testing.T) {
	c := New()
	c.Start()

	ran := false
	c.Trace("unit", "unit.go", 1, func() { ran = true })

	assert.True(t, ran)
	assert.Equal(t, 1, c.Len())
}

func TestTraceRecordsOnPanic(t *testing.T) {
	c := New()
	c.Start()

	assert.Panics(t, func() {
		c.Trace("boom", "boom.go", 1, func() { panic("boom") })
	})

	entries := c.Snapshot()
	require.Len(t, entries, 1)
	assert.Equal(t, "boom", entries[0].Function)
}

func TestSpanAgainstInactiveCollector(t *testing.T) {
	c := New()

	span := c.Begin("work", "work.go", 10)
	span.End()

	assert.Equal(t, 0, c.Len())
}
