// SPDX-License-Identifier: GPL-3.0-or-later

package eppcore

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// tracer is the package-wide [trace.Tracer]. With no global
// [trace.TracerProvider] configured (the default), every span it starts
// is a no-op — callers who want real traces configure one at process
// start via [go.opentelemetry.io/otel.SetTracerProvider]: this package
// never constructs its own provider, only consumes whatever is globally
// registered.
var tracer = otel.Tracer("github.com/AS207960/eppcore")

// startCommandSpan opens one span per dispatched command, closed by
// endCommandSpan once its response (or failure) is known. Span attributes
// mirror the labels [metrics.Metrics] uses, so traces and metrics for the
// same command correlate on account and request kind.
func startCommandSpan(ctx context.Context, accountID string, kind RequestKind) (context.Context, trace.Span) {
	return tracer.Start(ctx, "eppcore.dispatch", trace.WithAttributes(
		attribute.String("eppcore.account", accountID),
		attribute.String("eppcore.kind", kind.String()),
	))
}

// endCommandSpan closes span, recording err (if any) as the span's
// terminal status.
func endCommandSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
