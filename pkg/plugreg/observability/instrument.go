package observability

import (
	"context"
	"errors"
	"log/slog"

	"github.com/randalmurphal/plugreg/pkg/plugreg"
)

// Instrumented wraps a Registry with logging, metrics, and tracing.
//
// The underlying registry stays silent on its own error conditions;
// the wrapper reports them on the caller's behalf. All instrumentation
// defaults to no-ops, so an Instrumented with no options behaves like
// the bare registry.
type Instrumented struct {
	registry *plugreg.Registry
	logger   *slog.Logger
	metrics  MetricsRecorder
	spans    SpanManager
}

// InstrumentOption configures an Instrumented registry.
type InstrumentOption func(*Instrumented)

// WithLogger enables structured logging via slog.
func WithLogger(logger *slog.Logger) InstrumentOption {
	return func(i *Instrumented) { i.logger = logger }
}

// WithMetrics enables metrics recording.
func WithMetrics(m MetricsRecorder) InstrumentOption {
	return func(i *Instrumented) {
		if m != nil {
			i.metrics = m
		}
	}
}

// WithSpans enables trace spans around registry operations.
func WithSpans(s SpanManager) InstrumentOption {
	return func(i *Instrumented) {
		if s != nil {
			i.spans = s
		}
	}
}

// Instrument wraps a registry with the configured observability.
func Instrument(r *plugreg.Registry, opts ...InstrumentOption) *Instrumented {
	i := &Instrumented{
		registry: r,
		metrics:  NoopMetrics{},
		spans:    NoopSpanManager{},
	}
	for _, fn := range opts {
		fn(i)
	}
	return i
}

// Unwrap returns the underlying registry.
func (i *Instrumented) Unwrap() *plugreg.Registry {
	return i.registry
}

// Add registers a plugin, recording the outcome.
func (i *Instrumented) Add(ctx context.Context, p plugreg.Plugin) error {
	ctx, span := i.spans.StartOpSpan(ctx, "add", p.Name)
	err := i.registry.Add(p)
	i.spans.EndSpanWithError(span, err)
	i.metrics.RecordAdd(ctx, p.Name, err)

	switch {
	case err == nil:
		LogPluginRegistered(i.logger, p.Name, p.Version, p.Enabled)
	case errors.Is(err, plugreg.ErrFull):
		LogRegistryFull(i.logger, p.Name, i.registry.Cap())
	}
	return err
}

// ToggleEnabled flips a plugin's enabled flag, recording the outcome.
func (i *Instrumented) ToggleEnabled(ctx context.Context, name string) (bool, error) {
	ctx, span := i.spans.StartOpSpan(ctx, "toggle", name)
	enabled, err := i.registry.ToggleEnabled(name)
	i.spans.EndSpanWithError(span, err)
	i.metrics.RecordToggle(ctx, name, err)

	if err != nil {
		LogToggleMissing(i.logger, name)
	} else {
		LogToggle(i.logger, name, enabled)
	}
	return enabled, err
}

// Find returns a handle to the first plugin with the given name.
// Lookups are not traced or logged; they are read-only and hot.
func (i *Instrumented) Find(name string) (*plugreg.Handle, bool) {
	return i.registry.Find(name)
}

// Snapshot copies out the current entries, recording the capture.
func (i *Instrumented) Snapshot(ctx context.Context) []plugreg.PluginView {
	ctx, span := i.spans.StartOpSpan(ctx, "snapshot", "")
	done := TimedOperation()
	views := i.registry.Snapshot()
	i.spans.EndSpanWithError(span, nil)
	i.metrics.RecordSnapshot(ctx, len(views))
	LogSnapshot(i.logger, len(views), done())
	return views
}
