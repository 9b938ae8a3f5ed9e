// Copyright (c) 2026 The flexlog Authors
// This source code is licensed under the MIT License found in the LICENSE file.

// Package flexlog provides a module-filtered logging library that writes to
// standard error or to a fresh trace file.
// This file implements the record router: the per-record decision whether a
// record is emitted, and to which sink.

package flexlog

import (
	"fmt"
	"io"
	"regexp"
)

// router holds everything the per-record path needs. All fields except the
// counters are immutable after construction, so routing needs no lock of
// its own; the file sink serializes internally.
type router struct {
	table  directiveTable
	filter *regexp.Regexp
	cfg    Config
	sink   *fileSink

	// maxLevel caches the highest ceiling in the table for the facade's
	// fast pre-check.
	maxLevel Level

	written    atomicI64
	suppressed atomicI64
	denied     atomicI64
}

// route decides whether and how to emit a record.
//
// A record that is not enabled for its target and level is discarded with
// no further work. The exclusion filter is subordinate to enablement: it
// only suppresses records that would otherwise be emitted. Accepted records
// are rendered once, terminated with a newline, and written to exactly one
// sink: the shared trace file when LogToFile is set, the error stream
// otherwise. In file mode, ERROR and INFO records are additionally echoed
// raw to the console when the corresponding duplicate flag is set,
// independently of the file write.
func (ro *router) route(rec *Record) {
	if !ro.table.enabled(rec.Level, rec.Target) {
		ro.denied.Add(1)
		return
	}
	if ro.filter != nil && ro.filter.MatchString(rec.Message) {
		ro.suppressed.Add(1)
		return
	}

	line := ro.cfg.Format(rec) + "\n"
	if ro.cfg.LogToFile {
		if ro.cfg.DuplicateError && rec.Level == LevelError ||
			ro.cfg.DuplicateInfo && rec.Level == LevelInfo {
			// The raw message, not the formatted line.
			fmt.Fprintln(ro.cfg.Stdout, rec.Message)
		}
		ro.sink.writeLine([]byte(line))
	} else {
		// Best effort: the error stream is the lower-guarantee path and a
		// failed write here is never fatal.
		_, _ = io.WriteString(ro.cfg.Stderr, line)
	}
	ro.written.Add(1)
}

// stats returns a snapshot of the router's counters.
func (ro *router) stats() (written, suppressed, denied int64) {
	return ro.written.Load(), ro.suppressed.Load(), ro.denied.Load()
}
