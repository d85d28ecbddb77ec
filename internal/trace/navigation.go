package trace

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"ctxmenu/internal/menu"
)

const transitionSpanName = "menu.transition"

// Attribute keys set on transition spans.
const (
	AttrFrom       = attribute.Key("ctxmenu.panel.from")
	AttrTo         = attribute.Key("ctxmenu.panel.to")
	AttrDirection  = attribute.Key("ctxmenu.transition.direction")
	AttrSuperseded = attribute.Key("ctxmenu.transition.superseded")
)

func noopTracer() oteltrace.Tracer {
	return noop.NewTracerProvider().Tracer(tracerName)
}

// NavigationTracer records one span per panel transition. A span starts when
// a panel is shown and ends when the outgoing panel is hidden, or when the
// next transition starts first.
type NavigationTracer struct {
	tracer oteltrace.Tracer
	ctx    context.Context
	open   oteltrace.Span
}

// Ensure NavigationTracer implements menu.Observer.
var _ menu.Observer = (*NavigationTracer)(nil)

// NewNavigationTracer creates a tracer-backed observer. A nil tracer records nothing.
func NewNavigationTracer(ctx context.Context, tracer oteltrace.Tracer) *NavigationTracer {
	if tracer == nil {
		tracer = noopTracer()
	}
	return &NavigationTracer{tracer: tracer, ctx: ctx}
}

// PanelShown implements menu.Observer.
func (t *NavigationTracer) PanelShown(from, to menu.PanelID, dir menu.Direction) {
	t.end(true)
	_, t.open = t.tracer.Start(t.ctx, transitionSpanName,
		oteltrace.WithAttributes(
			AttrFrom.String(string(from)),
			AttrTo.String(string(to)),
			AttrDirection.String(dir.String()),
		),
	)
}

// OutgoingPanelHidden implements menu.Observer.
func (t *NavigationTracer) OutgoingPanelHidden(menu.PanelID) {
	t.end(false)
}

// Close ends a transition span that never completed.
func (t *NavigationTracer) Close() {
	t.end(false)
}

func (t *NavigationTracer) end(superseded bool) {
	if t.open == nil {
		return
	}
	if superseded {
		t.open.SetAttributes(AttrSuperseded.Bool(true))
	}
	t.open.End()
	t.open = nil
}
