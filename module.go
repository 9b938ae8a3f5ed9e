// Copyright (c) 2026 The flexlog Authors
// This source code is licensed under the MIT License found in the LICENSE file.

// Package flexlog provides a module-filtered logging library that writes to
// standard error or to a fresh trace file.
// This file implements the module-logger facade: the leveled entry points a
// call site uses, bound to the module path that directives are matched
// against.

package flexlog

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"time"
)

// ModuleLogger is a lightweight handle bound to one module path. Handles
// are cheap and stateless; call sites typically keep one per package:
//
//	var log = flexlog.GetLogger("myprog::storage")
//
// All methods are no-ops until Init has installed a logger.
type ModuleLogger struct {
	target string
}

// GetLogger returns a logger handle for the given module path. Records
// logged through it carry that path as their target.
func GetLogger(target string) *ModuleLogger {
	return &ModuleLogger{target: target}
}

// Tracef logs at TRACE level.
func (m *ModuleLogger) Tracef(format string, args ...interface{}) {
	m.logf(nil, LevelTrace, format, args...)
}

// Debugf logs at DEBUG level.
func (m *ModuleLogger) Debugf(format string, args ...interface{}) {
	m.logf(nil, LevelDebug, format, args...)
}

// Infof logs at INFO level.
func (m *ModuleLogger) Infof(format string, args ...interface{}) {
	m.logf(nil, LevelInfo, format, args...)
}

// Warnf logs at WARN level.
func (m *ModuleLogger) Warnf(format string, args ...interface{}) {
	m.logf(nil, LevelWarn, format, args...)
}

// Errorf logs at ERROR level.
func (m *ModuleLogger) Errorf(format string, args ...interface{}) {
	m.logf(nil, LevelError, format, args...)
}

// The Ctx variants behave like their plain counterparts but additionally
// pick up the OpenTelemetry trace ID from ctx, if an active span is
// present, so formats like DetailedFormat can correlate the record.

// TracefCtx logs at TRACE level with trace correlation from ctx.
func (m *ModuleLogger) TracefCtx(ctx context.Context, format string, args ...interface{}) {
	m.logf(ctx, LevelTrace, format, args...)
}

// DebugfCtx logs at DEBUG level with trace correlation from ctx.
func (m *ModuleLogger) DebugfCtx(ctx context.Context, format string, args ...interface{}) {
	m.logf(ctx, LevelDebug, format, args...)
}

// InfofCtx logs at INFO level with trace correlation from ctx.
func (m *ModuleLogger) InfofCtx(ctx context.Context, format string, args ...interface{}) {
	m.logf(ctx, LevelInfo, format, args...)
}

// WarnfCtx logs at WARN level with trace correlation from ctx.
func (m *ModuleLogger) WarnfCtx(ctx context.Context, format string, args ...interface{}) {
	m.logf(ctx, LevelWarn, format, args...)
}

// ErrorfCtx logs at ERROR level with trace correlation from ctx.
func (m *ModuleLogger) ErrorfCtx(ctx context.Context, format string, args ...interface{}) {
	m.logf(ctx, LevelError, format, args...)
}

// logf builds the record and hands it to the installed router. The cached
// maximum directive level serves as a fast pre-check: a record above it
// cannot be enabled by any directive, so it is discarded before the message
// is rendered or the call site resolved.
func (m *ModuleLogger) logf(ctx context.Context, level Level, format string, args ...interface{}) {
	ro := installed()
	if ro == nil || level > ro.maxLevel {
		return
	}

	rec := &Record{
		Level:   level,
		Target:  m.target,
		Message: fmt.Sprintf(format, args...),
		Time:    time.Now(),
	}
	if _, file, line, ok := runtime.Caller(2); ok {
		rec.File = filepath.Base(file)
		rec.Line = line
	}
	if ctx != nil {
		rec.TraceID = extractTraceID(ctx)
	}
	ro.route(rec)
}
