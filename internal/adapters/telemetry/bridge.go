package telemetry

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/quill/internal/core/ports"
)

// DerivePrefix starts the name of every derivation span.
const DerivePrefix = "derive "

// Bridge implements sdktrace.SpanProcessor. It totals the derivation spans of
// each trace and reports them through the logger when the root span ends.
type Bridge struct {
	logger ports.Logger

	mu     sync.Mutex
	traces map[trace.TraceID]map[string]*timing
}

type timing struct {
	count  int
	failed int
	total  time.Duration
}

// NewBridge returns a new Bridge.
func NewBridge(logger ports.Logger) *Bridge {
	return &Bridge{
		logger: logger,
		traces: make(map[trace.TraceID]map[string]*timing),
	}
}

// OnStart is called when a span starts.
func (b *Bridge) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd is called when a span ends.
func (b *Bridge) OnEnd(s sdktrace.ReadOnlySpan) {
	sc := s.SpanContext()
	if !sc.IsValid() {
		return
	}

	if name, ok := strings.CutPrefix(s.Name(), DerivePrefix); ok {
		b.record(sc.TraceID(), name, s.EndTime().Sub(s.StartTime()), s.Status().Code == codes.Error)
	}
	if !s.Parent().IsValid() {
		b.flush(sc.TraceID())
	}
}

func (b *Bridge) record(id trace.TraceID, name string, d time.Duration, failed bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	byName, ok := b.traces[id]
	if !ok {
		byName = make(map[string]*timing)
		b.traces[id] = byName
	}
	t, ok := byName[name]
	if !ok {
		t = &timing{}
		byName[name] = t
	}
	t.count++
	t.total += d
	if failed {
		t.failed++
	}
}

func (b *Bridge) flush(id trace.TraceID) {
	b.mu.Lock()
	byName := b.traces[id]
	delete(b.traces, id)
	b.mu.Unlock()

	if len(byName) == 0 || b.logger == nil {
		return
	}
	b.logger.Info(formatTimings(byName))
}

// formatTimings renders one line with the count and total time of each
// derivation, sorted by name.
func formatTimings(byName map[string]*timing) string {
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	slices.Sort(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		t := byName[name]
		part := fmt.Sprintf("%s %d in %s", name, t.count, t.total.Round(time.Microsecond))
		if t.failed > 0 {
			part += fmt.Sprintf(" (%d failed)", t.failed)
		}
		parts = append(parts, part)
	}
	return "derivations: " + strings.Join(parts, ", ")
}

// ForceFlush does nothing.
func (b *Bridge) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *Bridge) Shutdown(_ context.Context) error {
	return nil
}

// Setup installs an SDK tracer provider reporting to logger as the global
// provider and returns a tracer backed by it.
func Setup(logger ports.Logger) *OTelTracer {
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(NewBridge(logger)),
	)
	otel.SetTracerProvider(tp)
	return NewOTelTracerFrom(tp, InstrumentationName)
}
