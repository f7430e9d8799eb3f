package metrics_test

import (
	"context"
	"phishguard/pkg/metrics"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
)

func TestSetupExportsToRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()

	mp, err := metrics.Setup(reg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	counter, err := otel.Meter(metrics.MeterName).Int64Counter("metrics_setup_check")
	require.NoError(t, err)
	counter.Add(context.Background(), 3)

	families, err := reg.Gather()
	require.NoError(t, err)

	found := false
	for _, f := range families {
		if strings.HasPrefix(f.GetName(), "metrics_setup_check") {
			found = true
			require.InDelta(t, 3, f.GetMetric()[0].GetCounter().GetValue(), 0)
		}
	}
	require.True(t, found, "setup counter not exported")
}

func TestDefaultBucketsSorted(t *testing.T) {
	for i := 1; i < len(metrics.DefaultBuckets); i++ {
		require.Less(t, metrics.DefaultBuckets[i-1], metrics.DefaultBuckets[i])
	}
}
