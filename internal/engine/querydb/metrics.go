package querydb

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	"go.trai.ch/quill/internal/core/domain"
)

const meterName = "go.trai.ch/quill/querydb"

const (
	hitsMetric          = "quill_derive_hits_total"
	missesMetric        = "quill_derive_misses_total"
	computationsMetric  = "quill_derive_computations_total"
	invalidationsMetric = "quill_memo_invalidations_total"
)

// metrics records memo activity on a meter provider owned by the database.
// Stats are read back through its manual reader; extra readers passed with
// WithMetricReader see the same counters. Instruments that fail to build are
// left nil and skipped.
type metrics struct {
	provider *sdkmetric.MeterProvider
	reader   *sdkmetric.ManualReader

	hits          metric.Int64Counter
	misses        metric.Int64Counter
	computations  metric.Int64Counter
	invalidations metric.Int64Counter
}

func newMetrics(readers ...sdkmetric.Reader) *metrics {
	reader := sdkmetric.NewManualReader()
	opts := []sdkmetric.Option{sdkmetric.WithReader(reader)}
	for _, r := range readers {
		opts = append(opts, sdkmetric.WithReader(r))
	}

	m := &metrics{
		provider: sdkmetric.NewMeterProvider(opts...),
		reader:   reader,
	}
	meter := m.provider.Meter(meterName)

	m.hits = counter(meter, hitsMetric, "Derivations served from the memo table")
	m.misses = counter(meter, missesMetric, "Derivations that were not memoized")
	m.computations = counter(meter, computationsMetric, "Derivation functions run")
	m.invalidations = counter(meter, invalidationsMetric, "Memo entries dropped by a replaced input")
	return m
}

func counter(meter metric.Meter, name, desc string) metric.Int64Counter {
	c, err := meter.Int64Counter(name, metric.WithDescription(desc))
	if err != nil {
		return nil
	}
	return c
}

func add(ctx context.Context, c metric.Int64Counter, n int64, name domain.DerivationName) {
	if c == nil {
		return
	}
	if name == "" {
		c.Add(ctx, n)
		return
	}
	c.Add(ctx, n, metric.WithAttributes(attribute.String("derivation", string(name))))
}

func (m *metrics) hit(ctx context.Context, name domain.DerivationName) {
	add(ctx, m.hits, 1, name)
}

func (m *metrics) miss(ctx context.Context, name domain.DerivationName) {
	add(ctx, m.misses, 1, name)
}

func (m *metrics) computed(ctx context.Context, name domain.DerivationName) {
	add(ctx, m.computations, 1, name)
}

func (m *metrics) invalidated(n int) {
	if n > 0 {
		add(context.Background(), m.invalidations, int64(n), "")
	}
}

// stats collects the current counter totals. A failed collection reports zeros.
func (m *metrics) stats() Stats {
	var rm metricdata.ResourceMetrics
	if err := m.reader.Collect(context.Background(), &rm); err != nil {
		return Stats{}
	}

	var s Stats
	for _, sm := range rm.ScopeMetrics {
		for _, met := range sm.Metrics {
			sum, ok := met.Data.(metricdata.Sum[int64])
			if !ok {
				continue
			}
			var total uint64
			for _, dp := range sum.DataPoints {
				total += uint64(dp.Value) //nolint:gosec // counters are monotonic
			}
			switch met.Name {
			case hitsMetric:
				s.Hits = total
			case missesMetric:
				s.Misses = total
			case computationsMetric:
				s.Computations = total
			case invalidationsMetric:
				s.Invalidations = total
			}
		}
	}
	return s
}
