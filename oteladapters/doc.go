// Package oteladapters provides OpenTelemetry implementations of the observability interfaces
// in package shell, so catalog components can report to any OpenTelemetry backend.
//
// It also contains two small exporters used by the demo binary to write spans and
// collected metrics to a slog.Logger instead of a remote collector.
package oteladapters
