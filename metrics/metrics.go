// SPDX-License-Identifier: GPL-3.0-or-later

// Package metrics implements the metrics API of spec §4.6: a small
// counter/timer sink the dispatcher uses to record poll-message kinds,
// observed EPP result codes, and per-command dispatch-to-decode latency.
//
// The core depends only on [Metrics]; [NopMetrics] is the default, and
// [Otel] wires it to OpenTelemetry for operators who run a metrics
// pipeline.
package metrics

import (
	"context"
	"time"
)

// Metrics receives the counters and timers the dispatcher emits (§4.6).
// Implementations must be safe for concurrent use: a multi-account
// process shares one Metrics instance across every account's dispatcher.
type Metrics interface {
	// PollMessageReceived increments a per-kind counter of decoded
	// unsolicited poll messages (e.g. "domain_transfer", "verisign_low_balance").
	PollMessageReceived(ctx context.Context, accountID, kind string)

	// ResultCodeObserved increments a per-code counter of EPP result
	// codes seen on command responses.
	ResultCodeObserved(ctx context.Context, accountID string, code int)

	// CommandDuration records the wall-clock time between a command's
	// dispatch and the decoding of its response.
	CommandDuration(ctx context.Context, accountID, kind string, d time.Duration)
}

// NopMetrics discards everything. It is the default when a [Dispatcher]
// is constructed without an explicit Metrics.
type NopMetrics struct{}

var _ Metrics = NopMetrics{}

// PollMessageReceived implements [Metrics].
func (NopMetrics) PollMessageReceived(ctx context.Context, accountID, kind string) {}

// ResultCodeObserved implements [Metrics].
func (NopMetrics) ResultCodeObserved(ctx context.Context, accountID string, code int) {}

// CommandDuration implements [Metrics].
func (NopMetrics) CommandDuration(ctx context.Context, accountID, kind string, d time.Duration) {}
