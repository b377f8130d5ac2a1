// Package goid resolves the identity of the calling goroutine.
//
// The runtime does not expose goroutine IDs directly; the stable way to
// obtain one is to parse the header line of a single-goroutine stack dump
// ("goroutine N [running]:"). The ID is only used as an opaque comparable
// key for tagging telemetry records and keying the call-stack registry.
package goid

import (
	"bytes"
	"runtime"
	"strconv"
)

var prefix = []byte("goroutine ")

// ID returns the runtime ID of the calling goroutine.
func ID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	header := buf[:n]

	header = bytes.TrimPrefix(header, prefix)
	end := bytes.IndexByte(header, ' ')
	if end < 0 {
		return 0
	}

	id, err := strconv.ParseUint(string(header[:end]), 10, 64)
	if err != nil {
		return 0
	}
	return id
}
