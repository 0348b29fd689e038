// Package tracing provides the OpenTelemetry tracer and HTTP server-span
// middleware.
package tracing
