package id

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnapshotIDPrefix(t *testing.T) {
	id := NewSnapshotID()
	assert.True(t, strings.HasPrefix(id.String(), "snap_"))
}

func TestClientIDPrefix(t *testing.T) {
	id := NewClientID()
	assert.True(t, strings.HasPrefix(id.String(), "client_"))
}

func TestIDsAreUnique(t *testing.T) {
	seen := make(map[SnapshotID]bool)
	for i := 0; i < 100; i++ {
		id := NewSnapshotID()
		assert.False(t, seen[id], "duplicate ID %s", id)
		seen[id] = true
	}
}
