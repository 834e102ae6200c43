package mcp

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/applicantmesh/iam-mcp-server/internal/config"
	"github.com/applicantmesh/iam-mcp-server/internal/mcp/prompts"
	"github.com/applicantmesh/iam-mcp-server/internal/mcp/tools"
	"github.com/applicantmesh/iam-mcp-server/pkg/logging"
)

// Server wraps an MCP SDK server with either a stdio or an HTTP transport.
type Server struct {
	logger *logging.Logger
	config config.Config

	mcp *sdkmcp.Server
	srv *http.Server

	started atomic.Bool

	// ctx governs the stdio session. Both are set in NewServer so that a
	// shutdown signal arriving before Run always finds a valid cancel func.
	ctx    context.Context
	cancel context.CancelFunc
}

// NewServer constructs the MCP server and registers all tools and prompts.
func NewServer(log *logging.Logger, cfg config.Config, res *Resources) *Server {
	impl := &sdkmcp.Implementation{
		Name:    "iam-mcp-server",
		Version: "1.0.0",
	}

	mcpServer := sdkmcp.NewServer(impl, nil)

	tools.Register(mcpServer,
		tools.WithSearchJobs(res.JobService, log),
	)
	prompts.RegisterAll(mcpServer)

	s := &Server{
		logger: log,
		config: cfg,
		mcp:    mcpServer,
	}
	s.ctx, s.cancel = context.WithCancel(context.Background())

	if cfg.Transport == config.TransportHTTP {
		handler := sdkmcp.NewStreamableHTTPHandler(func(req *http.Request) *sdkmcp.Server {
			return mcpServer
		}, nil)

		mux := http.NewServeMux()
		mux.Handle("/mcp/stream", handler)
		mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
		})

		s.srv = &http.Server{
			Addr:              net.JoinHostPort(cfg.Host, cfg.Port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}
	}

	return s
}

// Run starts the configured transport and blocks until shutdown.
func (s *Server) Run() error {
	if !s.started.CompareAndSwap(false, true) {
		return nil
	}

	if s.srv != nil {
		s.logger.Info("MCP HTTP server listening", "addr", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}

	defer s.cancel()

	s.logger.Info("MCP server listening on stdio")

	if err := s.mcp.Run(s.ctx, &sdkmcp.StdioTransport{}); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("stdio transport: %w", err)
	}

	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutdown requested for MCP server")

	if s.srv != nil {
		if err := s.srv.Shutdown(ctx); err != nil {
			s.logger.Warn("MCP HTTP server shutdown with error", "err", err)
			return err
		}
	} else {
		s.cancel()
	}

	s.logger.Info("MCP server shutdown complete")
	return nil
}
