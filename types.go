// Copyright (c) 2026 The flexlog Authors
// This source code is licensed under the MIT License found in the LICENSE file.

// Package flexlog provides a module-filtered logging library that writes to
// standard error or to a fresh trace file.
// This file defines the core data structures and types used throughout the
// library, including the Config struct passed to Init.

package flexlog

import (
	"fmt"
	"io"
	"strconv"
	"sync/atomic"
	"time"
)

// Level is the ordered enablement rank used both for directive ceilings and
// for record severities. Smaller values are more severe; a record passes a
// directive when its level is at or below the configured ceiling.
type Level int32

// Level constants, from fully disabled to fully verbose.
const (
	// LevelOff disables all logging for the matched module prefix.
	LevelOff Level = iota
	// LevelError enables only error records.
	LevelError
	// LevelWarn enables warning records and above.
	LevelWarn
	// LevelInfo enables informational records and above.
	LevelInfo
	// LevelDebug enables debug records and above.
	LevelDebug
	// LevelTrace enables everything.
	LevelTrace

	// LevelMax is the symbolic maximum ceiling, equal to LevelTrace.
	LevelMax = LevelTrace
)

// String returns the uppercase name of the level.
func (lvl Level) String() string {
	switch lvl {
	case LevelOff:
		return "OFF"
	case LevelError:
		return "ERROR"
	case LevelWarn:
		return "WARN"
	case LevelInfo:
		return "INFO"
	case LevelDebug:
		return "DEBUG"
	case LevelTrace:
		return "TRACE"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel parses a specification token into a Level. It accepts the
// lowercase keywords off, error, warn, info, debug and trace (case
// sensitive) as well as the numeric ranks 0 through 5.
func ParseLevel(tok string) (Level, error) {
	switch tok {
	case "off":
		return LevelOff, nil
	case "error":
		return LevelError, nil
	case "warn":
		return LevelWarn, nil
	case "info":
		return LevelInfo, nil
	case "debug":
		return LevelDebug, nil
	case "trace":
		return LevelTrace, nil
	}
	if n, err := strconv.Atoi(tok); err == nil && n >= int(LevelOff) && n <= int(LevelTrace) {
		return Level(n), nil
	}
	return LevelOff, fmt.Errorf("flexlog: unknown level %q", tok)
}

// Directive pairs a module-name prefix with a level ceiling. The empty Name
// denotes the global fallback that matches every target. Duplicate names are
// permitted and never deduplicated; see ParseSpec for the resolution order.
type Directive struct {
	Name  string
	Level Level
}

// Record is a single log event as seen by a FormatFunc. Fields beyond
// Level, Target and Message are populated on a best-effort basis by the
// module-logger facade.
type Record struct {
	// Level is the severity of the record.
	Level Level
	// Target is the module path the record originates from, matched against
	// directive names by prefix.
	Target string
	// Message is the rendered message text, before formatting.
	Message string
	// Time is when the record was created.
	Time time.Time
	// File and Line locate the logging call site.
	File string
	Line int
	// TraceID carries the OpenTelemetry trace ID when the record was logged
	// through a context that holds an active span.
	TraceID string
}

// FormatFunc renders a record into a single log line, without the trailing
// newline. It must be a pure function of the record for the routing
// guarantees to hold; side effects are the caller's responsibility.
type FormatFunc func(r *Record) string

// Config controls the behavior of the installed logger. It is immutable
// after Init; all runtime variability is expressed by which records pass
// through, never by mutating configuration.
type Config struct {
	// LogToFile selects the file sink. When false (the default) formatted
	// lines go to Stderr instead.
	LogToFile bool
	// FilePath overrides the derived trace file name. Empty derives
	// "<program>_<date>_<time>.trc" in the current directory.
	FilePath string
	// PrintMessage announces the chosen trace file path on Stdout.
	// Only meaningful together with LogToFile.
	PrintMessage bool
	// DuplicateError additionally echoes the raw message of every ERROR
	// record to Stdout when logging to a file.
	DuplicateError bool
	// DuplicateInfo additionally echoes the raw message of every INFO
	// record to Stdout when logging to a file.
	DuplicateInfo bool
	// Format renders records into log lines. Defaults to DefaultFormat.
	Format FormatFunc
	// Stdout and Stderr are the console streams. They default to os.Stdout
	// and os.Stderr and exist so tests can inject buffers.
	Stdout io.Writer
	Stderr io.Writer
}

// atomicI64 provides atomic operations for an int64 counter.
type atomicI64 struct{ v int64 }

func (a *atomicI64) Add(delta int64) { atomic.AddInt64(&a.v, delta) }
func (a *atomicI64) Load() int64     { return atomic.LoadInt64(&a.v) }
