// Package tracing wraps OpenTelemetry so that the interpreter can record one
// span per executed command without importing the upstream packages directly.
// Spans are no-ops until Init or InitWithExporter installs a provider.
package tracing
