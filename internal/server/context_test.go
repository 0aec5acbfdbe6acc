package server

import (
	"context"
	"testing"

	"github.com/jottr/clickup-docs-mcp/internal/clickup"
)

func newTestClient(t *testing.T) *clickup.Client {
	t.Helper()
	client, err := clickup.NewClient("pk_test_token")
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	return client
}

func TestNewServerContext(t *testing.T) {
	sc, err := NewServerContext(context.Background(), newTestClient(t))
	if err != nil {
		t.Fatalf("NewServerContext() error = %v", err)
	}
	defer func() { _ = sc.Shutdown() }()

	if sc.Client() == nil {
		t.Error("Client() returned nil")
	}
	if sc.Context() == nil {
		t.Error("Context() returned nil")
	}
	if sc.IsShutdown() {
		t.Error("new context should not be shut down")
	}
	if sc.Metrics() != nil {
		t.Error("Metrics() should be nil before SetMetrics")
	}
	if sc.AuditLogger() != nil {
		t.Error("AuditLogger() should be nil before SetAuditLogger")
	}
}

func TestNewServerContext_NilClient(t *testing.T) {
	_, err := NewServerContext(context.Background(), nil)
	if err == nil {
		t.Fatal("expected error for nil client")
	}
}

func TestServerContext_Shutdown(t *testing.T) {
	sc, err := NewServerContext(context.Background(), newTestClient(t))
	if err != nil {
		t.Fatalf("NewServerContext() error = %v", err)
	}

	if err := sc.Shutdown(); err != nil {
		t.Errorf("Shutdown() error = %v", err)
	}
	if !sc.IsShutdown() {
		t.Error("IsShutdown() = false after Shutdown()")
	}

	// Context should be cancelled
	select {
	case <-sc.Context().Done():
	default:
		t.Error("context should be cancelled after Shutdown()")
	}

	// Second shutdown is a no-op
	if err := sc.Shutdown(); err != nil {
		t.Errorf("second Shutdown() error = %v", err)
	}
}
