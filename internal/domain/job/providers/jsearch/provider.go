package jsearch

import (
	"context"
	"errors"
	"fmt"

	"github.com/applicantmesh/iam-mcp-server/internal/domain"
	jobdomain "github.com/applicantmesh/iam-mcp-server/internal/domain/job"
	"github.com/applicantmesh/iam-mcp-server/pkg/jsearch"
)

// searchClient describes the subset of the JSearch client used by the provider.
type searchClient interface {
	Search(ctx context.Context, params jsearch.SearchParams) (jsearch.Page, error)
}

// Provider implements job.Provider using the JSearch API
type Provider struct {
	client searchClient
}

// NewProvider builds a JSearch provider
func NewProvider(client *jsearch.Client) (*Provider, error) {
	if client == nil {
		return nil, fmt.Errorf("jsearch provider: client is required")
	}
	return &Provider{client: client}, nil
}

// newProviderWith is the test seam for fake clients.
func newProviderWith(client searchClient) *Provider {
	return &Provider{client: client}
}

// Name returns provider identifier
func (p *Provider) Name() string {
	return "jsearch"
}

// Search queries JSearch and normalizes the page into the stable schema.
func (p *Provider) Search(ctx context.Context, query domain.SearchQuery) (domain.SearchResult, error) {
	if p == nil || p.client == nil {
		return domain.SearchResult{}, fmt.Errorf("jsearch provider: client is nil")
	}

	page, err := p.client.Search(ctx, jsearch.SearchParams{
		Role:       query.Role,
		City:       query.City,
		Country:    query.Country,
		Platform:   query.Platform,
		NumResults: query.NumResults,
	})
	if err != nil {
		return domain.SearchResult{}, mapError(err)
	}

	return Normalize(page, query.NumResults, query.Platform), nil
}

var _ jobdomain.Provider = (*Provider)(nil)

// Normalize maps an upstream page onto the stable result schema, preserving
// order and truncating to the requested count. Truncated reflects upstream
// supply only: listings skipped during extraction never set it.
func Normalize(page jsearch.Page, requested int, platform string) domain.SearchResult {
	records := make([]domain.JobRecord, 0, min(len(page.Listings), requested))
	for _, listing := range page.Listings {
		if len(records) == requested {
			break
		}
		records = append(records, mapListing(listing, platform))
	}

	return domain.SearchResult{
		Records:   records,
		Requested: requested,
		Returned:  len(records),
		Truncated: page.Upstream < requested,
		Skipped:   page.Skipped,
	}
}

func mapListing(listing jsearch.Listing, platform string) domain.JobRecord {
	record := domain.JobRecord{
		ID:             listing.ID,
		Title:          listing.Title,
		Company:        listing.Company,
		Location:       listing.Location,
		Snippet:        listing.Description,
		Platform:       listing.Publisher,
		URL:            listing.ApplyLink,
		EmploymentType: listing.EmploymentType,
		Remote:         listing.Remote,
		PostedAt:       listing.PostedAt,
	}

	if record.Platform == "" {
		record.Platform = platform
	}

	if listing.MinSalary != nil || listing.MaxSalary != nil {
		salary := &domain.SalaryRange{Currency: listing.SalaryCurrency}
		if listing.MinSalary != nil {
			salary.Min = *listing.MinSalary
		}
		if listing.MaxSalary != nil {
			salary.Max = *listing.MaxSalary
		}
		record.Salary = salary
	}

	return record
}

// mapError translates client failure kinds onto the stable error codes the
// dispatcher exposes. Raw upstream text stays in the wrapped cause.
func mapError(err error) error {
	apiErr, ok := jsearch.AsAPIError(err)
	if !ok {
		if errors.Is(err, jsearch.ErrEmptyQuery) {
			return domain.WrapError(domain.CodeInvalidArgument, err, "role must not be empty")
		}
		return domain.WrapError(domain.CodeUnavailable, err, "job search failed")
	}

	kind := apiErr.Kind
	if kind == jsearch.KindExhausted {
		// report the class of the final failure, not the exhaustion itself
		if last, ok := jsearch.AsAPIError(apiErr.Unwrap()); ok {
			kind = last.Kind
		}
	}

	switch kind {
	case jsearch.KindMissingCredential:
		return domain.WrapError(domain.CodeMissingCredential, apiErr,
			"upstream rejected the request and no API key is configured; set RAPIDAPI_KEY")
	case jsearch.KindUnauthorized:
		return domain.WrapError(domain.CodeUnauthorized, apiErr,
			"upstream rejected the configured API key")
	case jsearch.KindBadRequest:
		return domain.WrapError(domain.CodeInvalidArgument, apiErr,
			"upstream rejected the search request")
	case jsearch.KindRateLimited:
		return domain.WrapError(domain.CodeRateLimited, apiErr,
			"upstream rate limit hit; try again shortly")
	case jsearch.KindMalformed:
		return domain.WrapError(domain.CodeMalformed, apiErr,
			"upstream returned an unreadable response")
	case jsearch.KindCancelled:
		return domain.WrapError(domain.CodeCancelled, apiErr, "search was cancelled")
	default:
		return domain.WrapError(domain.CodeUnavailable, apiErr,
			"upstream is unavailable; try again later")
	}
}
