package mcp

import (
	"context"
	"testing"
	"time"

	"github.com/applicantmesh/iam-mcp-server/internal/config"
	"github.com/applicantmesh/iam-mcp-server/pkg/logging"
)

func newStdioServer(t *testing.T) *Server {
	t.Helper()

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	cfg.Transport = config.TransportStdio

	return NewServer(logging.New("error"), cfg, &Resources{})
}

func TestStdioShutdownConcurrentWithRun(t *testing.T) {
	srv := newStdioServer(t)

	done := make(chan struct{})
	go func() {
		_ = srv.Run()
		close(done)
	}()

	if err := srv.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after Shutdown")
	}
}

func TestStdioShutdownBeforeRun(t *testing.T) {
	srv := newStdioServer(t)

	// a signal can land before Run is entered; the session context must
	// already be cancellable
	if err := srv.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}

	done := make(chan struct{})
	go func() {
		_ = srv.Run()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not observe the earlier Shutdown")
	}
}
