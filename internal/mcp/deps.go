package mcp

import (
	"github.com/applicantmesh/iam-mcp-server/internal/config"
	"github.com/applicantmesh/iam-mcp-server/internal/domain/job"
	jsearchProvider "github.com/applicantmesh/iam-mcp-server/internal/domain/job/providers/jsearch"
	"github.com/applicantmesh/iam-mcp-server/pkg/jsearch"
	"github.com/applicantmesh/iam-mcp-server/pkg/logging"
)

// BuildResources assembles the resource graph and logs what came up. A
// missing API key is deliberately not fatal here; the upstream decides
// whether the key was required.
func BuildResources(cfg config.Config, logger *logging.Logger) (*Resources, error) {
	res, err := InitializeResources(cfg)
	if err != nil {
		return nil, err
	}

	if cfg.JSearch.APIKey == "" {
		logger.Warn("RAPIDAPI_KEY not set; unauthenticated searches may be rejected upstream")
	}
	logger.Info("JSearch provider initialized", "host", cfg.JSearch.Host)

	return res, nil
}

// provideJSearchConfig extracts JSearch client config from main config
func provideJSearchConfig(cfg config.Config) jsearch.Config {
	return jsearch.Config{
		APIKey:         cfg.JSearch.APIKey,
		Host:           cfg.JSearch.Host,
		AttemptTimeout: cfg.JSearch.AttemptTimeout,
		Retry: jsearch.RetryPolicy{
			MaxAttempts: cfg.JSearch.MaxAttempts,
			BaseDelay:   cfg.JSearch.RetryBaseDelay,
			Jitter:      true,
		},
	}
}

// provideJSearchProvider creates a JSearch provider from the client
func provideJSearchProvider(client *jsearch.Client) (*jsearchProvider.Provider, error) {
	return jsearchProvider.NewProvider(client)
}

// newResources creates the Resources struct
func newResources(jobService job.Service) *Resources {
	return &Resources{JobService: jobService}
}
