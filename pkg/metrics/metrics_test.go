package metrics_test

import (
	"context"
	"testing"
	"themeconf/pkg/metrics"
	"time"

	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func TestResolverRecord(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	m, err := metrics.NewResolver(provider.Meter(metrics.ScopeName))
	require.NoError(t, err)

	ctx := context.Background()
	m.Record(ctx, metrics.OutcomeOK, 2*time.Millisecond, 2)
	m.Record(ctx, "REFERENCE", time.Millisecond, 0)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))
	require.Len(t, rm.ScopeMetrics, 1)

	byName := map[string]metricdata.Metrics{}
	for _, m := range rm.ScopeMetrics[0].Metrics {
		byName[m.Name] = m
	}

	resolutions, ok := byName["themeconf.resolutions"].Data.(metricdata.Sum[int64])
	require.True(t, ok)
	require.Len(t, resolutions.DataPoints, 2)

	warnings, ok := byName["themeconf.resolve.warnings"].Data.(metricdata.Sum[int64])
	require.True(t, ok)
	require.Len(t, warnings.DataPoints, 1)
	require.Equal(t, int64(2), warnings.DataPoints[0].Value)

	duration, ok := byName["themeconf.resolve.duration"].Data.(metricdata.Histogram[float64])
	require.True(t, ok)
	require.Len(t, duration.DataPoints, 2)
}

func TestNilResolverRecordIsNoop(t *testing.T) {
	var m *metrics.Resolver
	require.NotPanics(t, func() {
		m.Record(context.Background(), metrics.OutcomeOK, time.Millisecond, 1)
	})
}
