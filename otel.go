// Copyright (c) 2026 The flexlog Authors
// This source code is licensed under the MIT License found in the LICENSE file.

// Package flexlog provides a module-filtered logging library that writes to
// standard error or to a fresh trace file.
// This file integrates with OpenTelemetry to pick up the trace ID of an
// active span, letting formatted records be correlated with traces.

package flexlog

import (
	"context"

	"go.opentelemetry.io/otel/trace"
)

// extractTraceID returns the trace ID of the span carried by ctx, or the
// empty string when there is none.
func extractTraceID(ctx context.Context) string {
	if span := trace.SpanFromContext(ctx); span != nil {
		if sc := span.SpanContext(); sc.HasTraceID() {
			return sc.TraceID().String()
		}
	}
	return ""
}
