// Copyright (c) 2026 The flexlog Authors
// This source code is licensed under the MIT License found in the LICENSE file.

// Package flexlog is a module-filtered logging library that can write the
// log to standard error or to a fresh trace file, with custom logline
// formats.
//
// Which records you really want to see in a specific program run is
// described by a compact specification string, supplied programmatically or
// through the FLEXLOG environment variable:
//
//	"info"                          global fallback at level info
//	"crate1::mod=debug,crate2=off"  per-module ceilings, longest prefix wins
//	"warn/deadline"                 warn everywhere, but suppress records
//	                                whose message matches the regex
//
// Main features:
//   - Per-module level directives with longest-prefix matching and a
//     global fallback.
//   - An optional regular-expression exclusion filter over the rendered
//     message text.
//   - Output to standard error, or to an append-only trace file named
//     "<program>_<date>_<time>.trc" with serialized whole-line writes.
//   - Optional console echo of ERROR and INFO messages in file mode.
//   - Pluggable logline formats: DefaultFormat, DetailedFormat, or any
//     FormatFunc of your own.
//   - Trace correlation: the Ctx logging variants pick up the
//     OpenTelemetry trace ID of an active span.
//
// Example:
//
//	package main
//
//	import "github.com/flexlog-go/flexlog"
//
//	var log = flexlog.GetLogger("myprog::main")
//
//	func main() {
//		err := flexlog.Init(flexlog.Config{
//			LogToFile: true,
//			Format:    flexlog.DetailedFormat,
//		}, "myprog=debug")
//		if err != nil {
//			panic(err)
//		}
//		log.Infof("task %d started", 7)
//	}
//
// Init may succeed only once per process; a second attempt returns
// ErrAlreadyInitialized. A failure to create or write the trace file is
// fatal by design: the process terminates rather than lose log data
// silently.
package flexlog
