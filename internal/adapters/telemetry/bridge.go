package telemetry

import (
	"context"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/domx/internal/core/domain"
	"go.trai.ch/domx/internal/core/ports"
)

// Bridge implements sdktrace.SpanProcessor to bridge transform spans to a Reporter.
type Bridge struct {
	reporter ports.Reporter
}

// NewBridge returns a new Bridge.
func NewBridge(reporter ports.Reporter) *Bridge {
	return &Bridge{
		reporter: reporter,
	}
}

// OnStart does nothing. Units are reported when their span ends.
func (b *Bridge) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd reports finished transform spans.
func (b *Bridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.reporter == nil || s.Name() != SpanTransform {
		return
	}

	if !s.SpanContext().IsValid() {
		return
	}

	var identity string
	status := domain.StatusFresh
	for _, kv := range s.Attributes() {
		switch kv.Key {
		case AttrIdentity:
			identity = kv.Value.AsString()
		case AttrStatus:
			if kv.Value.AsString() == domain.StatusCached.String() {
				status = domain.StatusCached
			}
		}
	}

	b.reporter.OnUnit(identity, status, s.EndTime().Sub(s.StartTime()))
}

// ForceFlush does nothing.
func (b *Bridge) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *Bridge) Shutdown(_ context.Context) error {
	return nil
}
