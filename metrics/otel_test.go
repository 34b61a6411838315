// SPDX-License-Identifier: GPL-3.0-or-later

package metrics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func TestNewOtel_NilMeterIsNoop(t *testing.T) {
	o, err := NewOtel(nil)
	require.NoError(t, err)
	require.NotNil(t, o)

	// None of these should panic with no instruments behind them.
	o.PollMessageReceived(context.Background(), "acct", "domain_transfer")
	o.ResultCodeObserved(context.Background(), "acct", 1000)
	o.CommandDuration(context.Background(), "acct", "domain_check", 0)
}

func TestNewOtel_RecordsAgainstRealSDK(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	defer provider.Shutdown(context.Background())

	o, err := NewOtel(provider.Meter("eppcore-test"))
	require.NoError(t, err)

	ctx := context.Background()
	o.PollMessageReceived(ctx, "acct-1", "domain_transfer")
	o.ResultCodeObserved(ctx, "acct-1", 1000)
	o.CommandDuration(ctx, "acct-1", "domain_check", 12_000_000)

	var data metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &data))

	names := map[string]bool{}
	for _, sm := range data.ScopeMetrics {
		for _, m := range sm.Metrics {
			names[m.Name] = true
		}
	}
	assert.True(t, names["eppcore.poll.messages"])
	assert.True(t, names["eppcore.result_codes"])
	assert.True(t, names["eppcore.command.duration"])
}
