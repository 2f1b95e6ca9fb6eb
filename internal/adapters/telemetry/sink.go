// Package telemetry records transform diagnostics as OpenTelemetry spans and bridges
// finished spans to a reporter.
package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/domx/internal/core/domain"
	"go.trai.ch/domx/internal/core/ports"
)

// SpanTransform is the name of the span recorded for every transformed unit.
const SpanTransform = "domx.transform"

// Span attribute keys.
const (
	AttrIdentity   = attribute.Key("domx.identity")
	AttrStatus     = attribute.Key("domx.status")
	AttrDurationMS = attribute.Key("domx.duration_ms")
)

var _ ports.DiagnosticsSink = (*Sink)(nil)

// Sink implements ports.DiagnosticsSink with one span per diagnostic.
// The span covers the measured transform duration and ends when the diagnostic arrives.
type Sink struct {
	tracer trace.Tracer
	now    func() time.Time
}

// NewSink creates a Sink using the global tracer provider with the given instrumentation name.
func NewSink(name string) *Sink {
	return &Sink{
		tracer: otel.Tracer(name),
		now:    time.Now,
	}
}

// Record emits a span for the diagnostic.
func (s *Sink) Record(ctx context.Context, diagnostic domain.Diagnostic) {
	end := s.now()
	start := end.Add(-diagnostic.Duration)

	_, span := s.tracer.Start(ctx, SpanTransform,
		trace.WithTimestamp(start),
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			AttrIdentity.String(diagnostic.Identity),
			AttrStatus.String(diagnostic.Status.String()),
			AttrDurationMS.Float64(float64(diagnostic.Duration)/float64(time.Millisecond)),
		),
	)
	span.End(trace.WithTimestamp(end))
}
