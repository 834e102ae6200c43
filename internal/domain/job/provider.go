package job

import (
	"context"

	"github.com/applicantmesh/iam-mcp-server/internal/domain"
)

// Provider represents an external job data source (JSearch, a mock API, etc.)
type Provider interface {
	// e.g. "jsearch"
	Name() string

	// Search returns normalized jobs for a validated query. Records are in
	// upstream relevance order, already truncated to the requested count,
	// with Truncated and Skipped populated.
	Search(ctx context.Context, query domain.SearchQuery) (domain.SearchResult, error)
}
