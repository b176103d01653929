package querydb_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/quill/internal/adapters/telemetry"
	"go.trai.ch/quill/internal/core/domain"
	"go.trai.ch/quill/internal/engine/querydb"
)

func counterValue(t *testing.T, rm metricdata.ResourceMetrics, name string) int64 {
	t.Helper()
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != name {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok, "metric %s is not an int64 sum", name)
			var total int64
			for _, dp := range sum.DataPoints {
				total += dp.Value
			}
			return total
		}
	}
	return 0
}

func TestDatabase_Metrics(t *testing.T) {
	t.Parallel()

	reader := sdkmetric.NewManualReader()
	db := querydb.New(querydb.WithMarkup(paragraphMarkup{}), querydb.WithMetricReader(reader))
	key := domain.NewKey("a.md")
	require.NoError(t, db.Set(key, doc("a", "body", date("2024-01-01"))))

	ctx := context.Background()
	for range 3 {
		_, err := db.Render(ctx, key)
		require.NoError(t, err)
	}
	require.NoError(t, db.Set(key, doc("a", "changed", date("2024-01-01"))))

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))
	assert.Equal(t, int64(2), counterValue(t, rm, "quill_derive_hits_total"))
	assert.Equal(t, int64(1), counterValue(t, rm, "quill_derive_misses_total"))
	assert.Equal(t, int64(1), counterValue(t, rm, "quill_derive_computations_total"))
	assert.Equal(t, int64(1), counterValue(t, rm, "quill_memo_invalidations_total"))

	assert.Equal(t, querydb.Stats{Hits: 2, Misses: 1, Computations: 1, Invalidations: 1}, db.Stats())
}

func TestDatabase_TracesComputations(t *testing.T) {
	t.Parallel()

	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() {
		_ = tp.Shutdown(context.Background())
	})

	db := querydb.New(
		querydb.WithMarkup(paragraphMarkup{}),
		querydb.WithTracer(telemetry.NewOTelTracerFrom(tp, "test")),
	)
	key := domain.NewKey("a.md")
	require.NoError(t, db.Set(key, doc("a", "body", date("2024-01-01"))))

	_, err := db.Excerpt(context.Background(), key)
	require.NoError(t, err)
	_, err = db.Excerpt(context.Background(), key)
	require.NoError(t, err)

	ended := recorder.Ended()
	require.Len(t, ended, 2)
	names := []string{ended[0].Name(), ended[1].Name()}
	assert.ElementsMatch(t, []string{"derive render", "derive excerpt"}, names)

	// render runs inside excerpt, so it ends first and is its child.
	assert.Equal(t, "derive render", ended[0].Name())
	assert.Equal(t, ended[1].SpanContext().SpanID(), ended[0].Parent().SpanID())
}
