// Package server holds the shared runtime state of the MCP server: the
// ClickUp client, instrumentation hooks, health probes and the dedicated
// Prometheus metrics listener.
package server
