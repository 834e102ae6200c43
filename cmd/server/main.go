package main

import (
	"log"
	"net"
	"os"
	"syscall"
	"time"

	"github.com/alecthomas/kong"

	"github.com/applicantmesh/iam-mcp-server/internal/config"
	"github.com/applicantmesh/iam-mcp-server/internal/mcp"
	"github.com/applicantmesh/iam-mcp-server/pkg/logging"
	"github.com/applicantmesh/iam-mcp-server/pkg/shutdown"
)

// CLI flags override the environment-derived configuration.
var cli struct {
	Transport string `help:"MCP transport: stdio or http."`
	Host      string `help:"Bind host for the http transport."`
	Port      string `help:"Bind port for the http transport."`
	LogLevel  string `name:"log-level" help:"Log level: debug, info, warn, error."`
}

func main() {
	kctx := kong.Parse(&cli,
		kong.Name("iam-mcp-server"),
		kong.Description("Job search MCP server for AI-assistant hosts."),
	)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if cli.Transport != "" {
		if cli.Transport != config.TransportStdio && cli.Transport != config.TransportHTTP {
			kctx.Fatalf("invalid --transport %q: want stdio or http", cli.Transport)
		}
		cfg.Transport = cli.Transport
	}
	if cli.Host != "" {
		cfg.Host = cli.Host
	}
	if cli.Port != "" {
		cfg.Port = cli.Port
	}
	if cli.LogLevel != "" {
		cfg.LogLevel = cli.LogLevel
	}

	logger := logging.New(cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	res, err := mcp.BuildResources(cfg, logger)
	if err != nil {
		logger.Error("failed to build resources", "err", err)
		os.Exit(1)
	}

	srv := mcp.NewServer(logger, cfg, res)

	go shutdown.Graceful(
		[]os.Signal{os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGHUP},
		srv,
		10*time.Second,
		logger,
	)

	if cfg.Transport == config.TransportHTTP {
		logger.Info("MCP server initialized and starting", "addr", net.JoinHostPort(cfg.Host, cfg.Port))
	} else {
		logger.Info("MCP server initialized and starting", "transport", cfg.Transport)
	}

	if err := srv.Run(); err != nil {
		logger.Error("MCP server exited with error", "err", err)
	} else {
		logger.Info("MCP server stopped")
	}
}
