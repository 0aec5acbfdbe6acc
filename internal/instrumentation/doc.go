// Package instrumentation provides OpenTelemetry metrics, tracing and audit
// logging for the MCP server.
//
// The Provider wires exporters (Prometheus, OTLP or stdout) based on
// environment-driven configuration. Metrics records tool invocations and
// ClickUp API operations; AuditLogger emits one structured log record per
// tool invocation for operational audit trails.
package instrumentation
