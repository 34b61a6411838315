// SPDX-License-Identifier: GPL-3.0-or-later

package metrics

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Otel implements [Metrics] on top of an OpenTelemetry [metric.Meter],
// following a create-once-record-many instrument pattern: one counter per
// poll-message kind, one counter per result code, one histogram for
// command latency, all created during construction and reused for every
// Record call.
type Otel struct {
	pollCounter     metric.Int64Counter
	resultCounter   metric.Int64Counter
	durationHistory metric.Float64Histogram
}

var _ Metrics = (*Otel)(nil)

// NewOtel builds an [*Otel] from meter. If meter is nil, NewOtel returns a
// [*Otel] whose methods are no-ops.
func NewOtel(meter metric.Meter) (*Otel, error) {
	if meter == nil {
		return &Otel{}, nil
	}

	pollCounter, err := meter.Int64Counter(
		"eppcore.poll.messages",
		metric.WithDescription("Unsolicited poll messages received, by kind"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("metrics: creating poll message counter: %w", err)
	}

	resultCounter, err := meter.Int64Counter(
		"eppcore.result_codes",
		metric.WithDescription("EPP result codes observed on command responses"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("metrics: creating result code counter: %w", err)
	}

	durationHistogram, err := meter.Float64Histogram(
		"eppcore.command.duration",
		metric.WithDescription("Dispatch-to-decode latency per command"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, fmt.Errorf("metrics: creating command duration histogram: %w", err)
	}

	return &Otel{
		pollCounter:     pollCounter,
		resultCounter:   resultCounter,
		durationHistory: durationHistogram,
	}, nil
}

// PollMessageReceived implements [Metrics].
func (o *Otel) PollMessageReceived(ctx context.Context, accountID, kind string) {
	if o.pollCounter == nil {
		return
	}
	o.pollCounter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("account", accountID),
		attribute.String("kind", kind),
	))
}

// ResultCodeObserved implements [Metrics].
func (o *Otel) ResultCodeObserved(ctx context.Context, accountID string, code int) {
	if o.resultCounter == nil {
		return
	}
	o.resultCounter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("account", accountID),
		attribute.String("code", strconv.Itoa(code)),
	))
}

// CommandDuration implements [Metrics].
func (o *Otel) CommandDuration(ctx context.Context, accountID, kind string, d time.Duration) {
	if o.durationHistory == nil {
		return
	}
	o.durationHistory.Record(ctx, float64(d.Milliseconds()), metric.WithAttributes(
		attribute.String("account", accountID),
		attribute.String("kind", kind),
	))
}
