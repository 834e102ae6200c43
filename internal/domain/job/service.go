package job

import (
	"context"
	"fmt"
	"time"

	"github.com/applicantmesh/iam-mcp-server/internal/domain"
)

// Service orchestrates a job search: query validation happened at the
// boundary, so this validates invariants, delegates to the provider and
// stamps the result.
type Service interface {
	Search(ctx context.Context, query domain.SearchQuery) (domain.SearchResult, error)
}

// Option configures Service
type Option func(*config)

type config struct {
	provider Provider
	clock    func() time.Time
}

// WithProvider sets the job data source
func WithProvider(p Provider) Option {
	return func(c *config) {
		c.provider = p
	}
}

// WithClock sets a custom clock
func WithClock(clock func() time.Time) Option {
	return func(c *config) {
		c.clock = clock
	}
}

// NewService builds Service from options
func NewService(opts ...Option) (Service, error) {
	cfg := &config{
		clock: time.Now,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.provider == nil {
		return nil, fmt.Errorf("job.Service: provider is required")
	}

	return &service{
		provider: cfg.provider,
		clock:    cfg.clock,
	}, nil
}

// NewServiceWithDeps creates a Service with direct dependencies (Wire-compatible)
func NewServiceWithDeps(provider Provider) (Service, error) {
	return NewService(WithProvider(provider))
}

type service struct {
	provider Provider
	clock    func() time.Time
}

func (s *service) Search(ctx context.Context, query domain.SearchQuery) (domain.SearchResult, error) {
	if query.Role == "" {
		return domain.SearchResult{}, domain.Errorf(domain.CodeInvalidArgument, "role must not be empty")
	}
	if query.NumResults < 1 || query.NumResults > domain.MaxResults {
		return domain.SearchResult{}, domain.Errorf(domain.CodeInvalidArgument,
			"num_jobs must be between 1 and %d", domain.MaxResults)
	}

	result, err := s.provider.Search(ctx, query)
	if err != nil {
		return domain.SearchResult{}, err
	}

	result.Requested = query.NumResults
	result.Returned = len(result.Records)
	result.FetchedAt = s.clock()

	return result, nil
}
