// Package docs_tools implements the MCP tool surface for ClickUp Docs.
//
// Each tool validates its arguments locally, delegates to the ClickUp
// client for exactly one API call (one listing call plus the page
// contents for the composite content tool), and renders the outcome as
// a text result. Validation failures and API errors are returned as
// error-flagged tool results, never as Go errors to the host.
package docs_tools
