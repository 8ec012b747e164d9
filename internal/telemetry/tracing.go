package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/vk/autoreg/internal/hooks"
	"github.com/vk/autoreg/internal/meta"
)

// Span event names.
const (
	EventMemberRegistered = "autoreg.member_registered"
	EventScanCompleted    = "autoreg.scan_completed"
)

// Tracing records scan activity as events on the span carried by the scan
// context. Without a recording span it does nothing.
type Tracing struct{}

// MemberRegistered implements hooks.Listener.
func (Tracing) MemberRegistered(ctx context.Context, e hooks.MemberEvent) error {
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return nil
	}
	span.AddEvent(EventMemberRegistered, trace.WithAttributes(
		attribute.String("autoreg.key", e.Key),
		attribute.String("autoreg.member", e.Member.Name),
		attribute.String("autoreg.registrar", meta.TypeName(e.Registrar)),
	))
	return nil
}

// ScanCompleted implements hooks.Listener.
func (Tracing) ScanCompleted(ctx context.Context, e hooks.ScanEvent) error {
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return nil
	}
	span.AddEvent(EventScanCompleted, trace.WithAttributes(
		attribute.String("autoreg.registrar", meta.TypeName(e.Registrar)),
		attribute.String("autoreg.namespace", e.Namespace),
		attribute.Int("autoreg.registered", len(e.Registered)),
	))
	return nil
}
