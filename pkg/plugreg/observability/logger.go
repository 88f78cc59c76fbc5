// Package observability provides opt-in observability for plugreg:
// structured logging, metrics, and distributed tracing.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// The registry itself never logs or records anything; all
// instrumentation lives in this package, usually through the
// Instrumented wrapper. All features are opt-in and have no-op
// implementations when disabled.
package observability

import (
	"log/slog"
	"time"
)

// LogPluginRegistered logs a successful plugin registration.
func LogPluginRegistered(logger *slog.Logger, name string, version uint, enabled bool) {
	if logger == nil {
		return
	}
	logger.Info("plugin registered",
		slog.String("plugin", name),
		slog.Uint64("version", uint64(version)),
		slog.Bool("enabled", enabled),
	)
}

// LogRegistryFull logs a registration rejected at capacity.
func LogRegistryFull(logger *slog.Logger, name string, capacity int) {
	if logger == nil {
		return
	}
	logger.Warn("registry full",
		slog.String("plugin", name),
		slog.Int("capacity", capacity),
	)
}

// LogToggle logs a toggle of a plugin's enabled flag.
func LogToggle(logger *slog.Logger, name string, enabled bool) {
	if logger == nil {
		return
	}
	logger.Info("plugin toggled",
		slog.String("plugin", name),
		slog.Bool("enabled", enabled),
	)
}

// LogToggleMissing logs a toggle that referenced an unknown plugin.
func LogToggleMissing(logger *slog.Logger, name string) {
	if logger == nil {
		return
	}
	logger.Warn("plugin not found",
		slog.String("plugin", name),
	)
}

// LogSnapshot logs a snapshot capture.
func LogSnapshot(logger *slog.Logger, count int, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Debug("snapshot taken",
		slog.Int("plugins", count),
		slog.Float64("duration_ms", durationMs),
	)
}

// TimedOperation measures the duration of an operation.
// Returns a function that, when called, returns the elapsed time in milliseconds.
//
// Example:
//
//	done := TimedOperation()
//	// ... do work ...
//	durationMs := done()
func TimedOperation() func() float64 {
	start := time.Now()
	return func() float64 {
		return float64(time.Since(start).Milliseconds())
	}
}
