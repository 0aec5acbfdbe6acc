// Package clickup provides a client for the ClickUp Docs API.
//
// The client covers document, page and sharing operations against the v3
// Docs endpoints plus the v2 search and workspace endpoints. It is stateless:
// every method issues exactly one authenticated HTTP round trip and maps the
// outcome into either a decoded response value or an *APIError carrying the
// operation context and a human-readable failure category.
//
// Authentication uses a personal API token captured once at construction;
// the client never re-reads configuration during its lifetime.
package clickup
