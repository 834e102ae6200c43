package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/applicantmesh/iam-mcp-server/internal/domain"
	"github.com/applicantmesh/iam-mcp-server/internal/domain/job"
	"github.com/applicantmesh/iam-mcp-server/pkg/logging"
)

// SearchJobsParams defines the arguments for the search_jobs tool
type SearchJobsParams struct {
	Role     string `json:"role" jsonschema:"Job role or title to search for"`
	City     string `json:"city,omitempty" jsonschema:"Target city for the search"`
	Country  string `json:"country,omitempty" jsonschema:"Target country for the search"`
	Platform string `json:"platform,omitempty" jsonschema:"Job platform to restrict to, e.g. linkedin"`
	NumJobs  int    `json:"num_jobs,omitempty" jsonschema:"Number of listings to return (1-20, default 5)"`
}

// SearchJobsResult is the structured success payload.
type SearchJobsResult struct {
	Jobs      []domain.JobRecord `json:"jobs"`
	Requested int                `json:"requested"`
	Returned  int                `json:"returned"`
	Truncated bool               `json:"truncated"`
	Skipped   int                `json:"skipped,omitempty"`
}

type searchJobsTool struct {
	service job.Service
	logger  *logging.Logger
}

// WithSearchJobs registers the search_jobs tool
func WithSearchJobs(service job.Service, logger *logging.Logger) Option {
	return func(reg *registrar) {
		handler := searchJobsTool{service: service, logger: logger}
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "search_jobs",
			Description: "Search job listings by role, location and platform, returning normalized records",
		}, handler.handle)
	}
}

func (t searchJobsTool) handle(ctx context.Context, _ *sdkmcp.CallToolRequest, params *SearchJobsParams) (*sdkmcp.CallToolResult, any, error) {
	requestID := uuid.NewString()

	if params == nil {
		params = &SearchJobsParams{}
	}

	numJobs := params.NumJobs
	if numJobs == 0 {
		numJobs = 5
	}

	query, err := domain.NewSearchQuery(params.Role, params.City, params.Country, params.Platform, numJobs)
	if err != nil {
		return t.fail(requestID, err)
	}

	if t.service == nil {
		return t.fail(requestID, domain.Errorf(domain.CodeInternal, "job search service not configured"))
	}

	if t.logger != nil {
		t.logger.Info("search_jobs request",
			"request_id", requestID,
			"role", query.Role,
			"city", query.City,
			"country", query.Country,
			"platform", query.Platform,
			"num_jobs", query.NumResults,
		)
	}

	result, err := t.service.Search(ctx, query)
	if err != nil {
		return t.fail(requestID, err)
	}

	payload := SearchJobsResult{
		Jobs:      result.Records,
		Requested: result.Requested,
		Returned:  result.Returned,
		Truncated: result.Truncated,
		Skipped:   result.Skipped,
	}

	if t.logger != nil {
		t.logger.Info("search_jobs completed",
			"request_id", requestID,
			"returned", payload.Returned,
			"truncated", payload.Truncated,
			"skipped", payload.Skipped,
		)
	}

	return textResult(summarize(query, result)), payload, nil
}

func (t searchJobsTool) fail(requestID string, err error) (*sdkmcp.CallToolResult, any, error) {
	res, envelope := errorResult(err)
	if t.logger != nil {
		t.logger.Warn("search_jobs failed",
			"request_id", requestID,
			"code", envelope.Code,
			"err", err,
		)
	}
	return res, envelope, nil
}

// summarize renders a short human-readable digest next to the structured
// payload, one line per listing.
func summarize(query domain.SearchQuery, result domain.SearchResult) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Found %d of %d requested listings for %q", result.Returned, result.Requested, query.Role)
	if result.Truncated {
		sb.WriteString(" (upstream had fewer matches)")
	}
	if result.Skipped > 0 {
		fmt.Fprintf(&sb, ", %d skipped for missing fields", result.Skipped)
	}
	sb.WriteString("\n")

	for i, record := range result.Records {
		fmt.Fprintf(&sb, "%d. %s @ %s", i+1, record.Title, record.Company)
		if record.Location != "" {
			fmt.Fprintf(&sb, " (%s)", record.Location)
		}
		fmt.Fprintf(&sb, " - %s\n", record.URL)
	}

	return strings.TrimSuffix(sb.String(), "\n")
}
