package goid

import (
	"sync"
	"testing"
)

func TestIDStableWithinGoroutine(t *testing.T) {
	first := ID()
	second := ID()

	if first == 0 {
		t.Fatal("expected non-zero goroutine ID")
	}
	if first != second {
		t.Errorf("ID changed within goroutine: %d != %d", first, second)
	}
}

func TestIDDiffersAcrossGoroutines(t *testing.T) {
	main := ID()

	var wg sync.WaitGroup
	ids := make(chan uint64, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids <- ID()
		}()
	}
	wg.Wait()
	close(ids)

	seen := map[uint64]bool{main: true}
	for id := range ids {
		if id == 0 {
			t.Fatal("expected non-zero goroutine ID")
		}
		if seen[id] {
			t.Errorf("duplicate goroutine ID %d", id)
		}
		seen[id] = true
	}
}
