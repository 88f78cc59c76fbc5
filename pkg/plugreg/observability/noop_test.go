package observability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/attribute"

	"github.com/randalmurphal/plugreg/pkg/plugreg"
)

func TestNoopMetrics(t *testing.T) {
	m := NoopMetrics{}
	ctx := context.Background()

	// Must not panic.
	m.RecordAdd(ctx, "auth", nil)
	m.RecordAdd(ctx, "auth", plugreg.ErrFull)
	m.RecordToggle(ctx, "auth", nil)
	m.RecordToggle(ctx, "ghost", plugreg.ErrNotFound)
	m.RecordSnapshot(ctx, 0)
}

func TestNoopSpanManager(t *testing.T) {
	s := NoopSpanManager{}
	ctx := context.Background()

	spanCtx, span := s.StartOpSpan(ctx, "add", "auth")
	assert.Equal(t, ctx, spanCtx, "context should be unchanged")
	assert.NotNil(t, span)

	// Must not panic.
	s.AddSpanEvent(ctx, "event", attribute.String("k", "v"))
	s.EndSpanWithError(span, nil)
	s.EndSpanWithError(span, plugreg.ErrNotFound)
	s.EndSpanWithError(nil, nil)
}
