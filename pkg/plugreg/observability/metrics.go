package observability

import (
	"context"
	"log/slog"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records registry metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordAdd records a registration attempt and whether it was rejected.
	RecordAdd(ctx context.Context, name string, err error)

	// RecordToggle records a toggle attempt and whether the plugin was found.
	RecordToggle(ctx context.Context, name string, err error)

	// RecordSnapshot records a snapshot capture with its entry count.
	RecordSnapshot(ctx context.Context, count int)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	adds         metric.Int64Counter
	addsRejected metric.Int64Counter
	toggles      metric.Int64Counter
	toggleMisses metric.Int64Counter
	snapshotSize metric.Int64Histogram
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics returns the default OTel metrics instance.
// Lazily initializes the metrics on first call.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

// newOtelMetrics creates a new OTel metrics instance.
func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("plugreg")

	adds, err := meter.Int64Counter("plugreg.adds",
		metric.WithDescription("Number of successful plugin registrations"),
	)
	if err != nil {
		return nil, err
	}

	addsRejected, err := meter.Int64Counter("plugreg.adds.rejected",
		metric.WithDescription("Number of registrations rejected (full or duplicate)"),
	)
	if err != nil {
		return nil, err
	}

	toggles, err := meter.Int64Counter("plugreg.toggles",
		metric.WithDescription("Number of successful enabled-flag toggles"),
	)
	if err != nil {
		return nil, err
	}

	toggleMisses, err := meter.Int64Counter("plugreg.toggles.missing",
		metric.WithDescription("Number of toggles referencing an unknown plugin"),
	)
	if err != nil {
		return nil, err
	}

	snapshotSize, err := meter.Int64Histogram("plugreg.snapshot.size",
		metric.WithDescription("Number of entries in captured snapshots"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		adds:         adds,
		addsRejected: addsRejected,
		toggles:      toggles,
		toggleMisses: toggleMisses,
		snapshotSize: snapshotSize,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordAdd records a registration attempt.
func (m *otelMetrics) RecordAdd(ctx context.Context, name string, err error) {
	attrs := []attribute.KeyValue{
		attribute.String("plugin", name),
	}
	if err != nil {
		m.addsRejected.Add(ctx, 1, metric.WithAttributes(attrs...))
		return
	}
	m.adds.Add(ctx, 1, metric.WithAttributes(attrs...))
}

// RecordToggle records a toggle attempt.
func (m *otelMetrics) RecordToggle(ctx context.Context, name string, err error) {
	attrs := []attribute.KeyValue{
		attribute.String("plugin", name),
	}
	if err != nil {
		m.toggleMisses.Add(ctx, 1, metric.WithAttributes(attrs...))
		return
	}
	m.toggles.Add(ctx, 1, metric.WithAttributes(attrs...))
}

// RecordSnapshot records a snapshot capture.
func (m *otelMetrics) RecordSnapshot(ctx context.Context, count int) {
	m.snapshotSize.Record(ctx, int64(count))
}
