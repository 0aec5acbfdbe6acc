// Package logging provides structured logging helpers built on log/slog.
//
// It defines the canonical attribute keys used across the codebase so that
// log entries are consistently queryable, plus small helpers for sanitizing
// sensitive values (API tokens) before they reach any log stream.
package logging
