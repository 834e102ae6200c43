package domain

import (
	"strings"
	"time"
)

// MaxResults bounds how many listings a single search may request.
const MaxResults = 20

// SearchQuery is a validated, immutable job search request.
type SearchQuery struct {
	Role       string
	City       string
	Country    string
	Platform   string
	NumResults int
}

// NewSearchQuery validates and sanitizes the tool arguments. Role must be
// non-empty after trimming; NumResults is clamped to [1, MaxResults] rather
// than rejected.
func NewSearchQuery(role, city, country, platform string, numResults int) (SearchQuery, error) {
	role = strings.TrimSpace(role)
	if role == "" {
		return SearchQuery{}, Errorf(CodeInvalidArgument, "role must not be empty")
	}

	if numResults < 1 {
		numResults = 1
	}
	if numResults > MaxResults {
		numResults = MaxResults
	}

	return SearchQuery{
		Role:       role,
		City:       strings.TrimSpace(city),
		Country:    strings.TrimSpace(country),
		Platform:   strings.ToLower(strings.TrimSpace(platform)),
		NumResults: numResults,
	}, nil
}

// SalaryRange is an upstream-reported salary band.
type SalaryRange struct {
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Currency string  `json:"currency,omitempty"`
}

// JobRecord is the normalized job listing entity. Title, Company and URL are
// always present; every other field is optional and absent when upstream
// omitted it, never inferred.
type JobRecord struct {
	ID             string       `json:"job_id,omitempty"`
	Title          string       `json:"title"`
	Company        string       `json:"company"`
	Location       string       `json:"location,omitempty"`
	Snippet        string       `json:"description,omitempty"`
	Platform       string       `json:"platform,omitempty"`
	URL            string       `json:"apply_link"`
	EmploymentType string       `json:"employment_type,omitempty"`
	Remote         bool         `json:"remote,omitempty"`
	Salary         *SalaryRange `json:"salary,omitempty"`
	PostedAt       *time.Time   `json:"posted_at,omitempty"`
}

// SearchResult wraps the ordered job records for one search. Order is the
// upstream relevance order, preserved.
type SearchResult struct {
	Records   []JobRecord `json:"jobs"`
	Requested int         `json:"requested"`
	Returned  int         `json:"returned"`

	// Truncated is true when upstream had fewer matches than requested.
	// Listings dropped for missing required fields do not set it; they are
	// counted in Skipped instead.
	Truncated bool `json:"truncated"`

	// Skipped counts upstream listings dropped during normalization.
	Skipped int `json:"skipped,omitempty"`

	FetchedAt time.Time `json:"fetched_at"`
}
