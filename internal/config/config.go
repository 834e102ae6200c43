package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Transport selects how the MCP server talks to its host.
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// Config contains runtime settings for the MCP server. It is immutable after
// Load and safe to pass by value into every component.
type Config struct {
	LogLevel  string
	Transport string // stdio (default) or http
	Host      string // HTTP transport only, default 0.0.0.0
	Port      string // HTTP transport only, default PORT env or 8080
	JSearch   struct {
		// APIKey may be empty: some search tiers answer without a key, so
		// the first unauthorized upstream response decides whether it was
		// actually required.
		APIKey string
		Host   string

		AttemptTimeout time.Duration
		MaxAttempts    int
		RetryBaseDelay time.Duration
	}
}

// Load populates config from environment variables. A local .env file is
// folded into the environment first, without overriding shell variables.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		LogLevel:  "info",
		Transport: TransportStdio,
		Host:      "0.0.0.0",
		Port:      "8080",
	}
	cfg.JSearch.Host = "jsearch.p.rapidapi.com"
	cfg.JSearch.AttemptTimeout = 15 * time.Second
	cfg.JSearch.MaxAttempts = 3
	cfg.JSearch.RetryBaseDelay = 500 * time.Millisecond

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	if v := os.Getenv("MCP_TRANSPORT"); v != "" {
		v = strings.ToLower(strings.TrimSpace(v))
		if v != TransportStdio && v != TransportHTTP {
			return cfg, fmt.Errorf("invalid MCP_TRANSPORT %q: want %q or %q", v, TransportStdio, TransportHTTP)
		}
		cfg.Transport = v
	}

	if v := os.Getenv("MCP_HOST"); v != "" {
		cfg.Host = v
	}

	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}

	cfg.JSearch.APIKey = os.Getenv("RAPIDAPI_KEY")
	if v := os.Getenv("RAPIDAPI_HOST"); v != "" {
		cfg.JSearch.Host = v
	}

	if v := os.Getenv("SEARCH_REQUEST_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return cfg, fmt.Errorf("invalid SEARCH_REQUEST_TIMEOUT %q", v)
		}
		cfg.JSearch.AttemptTimeout = d
	}

	if v := os.Getenv("SEARCH_MAX_ATTEMPTS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return cfg, fmt.Errorf("invalid SEARCH_MAX_ATTEMPTS %q", v)
		}
		cfg.JSearch.MaxAttempts = n
	}

	if v := os.Getenv("SEARCH_RETRY_BASE_DELAY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return cfg, fmt.Errorf("invalid SEARCH_RETRY_BASE_DELAY %q", v)
		}
		cfg.JSearch.RetryBaseDelay = d
	}

	return cfg, nil
}
