// Copyright (c) 2026 The flexlog Authors
// This source code is licensed under the MIT License found in the LICENSE file.

// Package flexlog provides a module-filtered logging library that writes to
// standard error or to a fresh trace file.
// This file implements the serialized append-only file sink shared by all
// logging call sites.

package flexlog

import (
	"bufio"
	"fmt"
	"io"
	"sync"
)

// fileSink owns the single line-buffered trace file writer. Every write is
// mutually exclusive so that concurrent loggers never interleave partial
// lines. The sink lives for the rest of the process; it is never closed in
// normal operation.
type fileSink struct {
	mu sync.Mutex
	w  *bufio.Writer
}

func newFileSink(w io.Writer) *fileSink {
	return &fileSink{w: bufio.NewWriter(w)}
}

// writeLine appends one complete line to the trace file. A write or flush
// failure terminates the process: once the logging infrastructure is
// unusable there is no degraded mode, so that log data is never lost
// silently. The mutex is released on every exit path, including the fatal
// one.
func (s *fileSink) writeLine(p []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.w.Write(p); err != nil {
		panic(fmt.Sprintf("flexlog: file sink write failed: %v", err))
	}
	// Flushing per record keeps the on-disk file whole-line at all times.
	if err := s.w.Flush(); err != nil {
		panic(fmt.Sprintf("flexlog: file sink flush failed: %v", err))
	}
}
