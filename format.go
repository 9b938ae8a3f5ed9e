// Copyright (c) 2026 The flexlog Authors
// This source code is licensed under the MIT License found in the LICENSE file.

// Package flexlog provides a module-filtered logging library that writes to
// standard error or to a fresh trace file.
// This file implements the two predefined format functions. Custom formats
// are plain FormatFunc values supplied through Config.

package flexlog

import "fmt"

// DefaultFormat produces lines like
//
//	INFO [myprog::submodule] task successfully read from conf.json
func DefaultFormat(r *Record) string {
	return fmt.Sprintf("%s [%s] %s", r.Level, r.Target, r.Message)
}

// DetailedFormat produces lines with a microsecond timestamp and the
// logging call site, like
//
//	[2026-08-31 10:44:11.201984] INFO [myprog::submodule] task.go:26: task successfully read from conf.json
//
// When the record carries an OpenTelemetry trace ID it is included as a
// trace= token before the call site.
func DetailedFormat(r *Record) string {
	ts := r.Time.Format("2006-01-02 15:04:05.000000")
	if r.TraceID != "" {
		return fmt.Sprintf("[%s] %s [%s] trace=%s %s:%d: %s",
			ts, r.Level, r.Target, r.TraceID, r.File, r.Line, r.Message)
	}
	return fmt.Sprintf("[%s] %s [%s] %s:%d: %s",
		ts, r.Level, r.Target, r.File, r.Line, r.Message)
}
