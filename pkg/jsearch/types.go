package jsearch

import (
	"net/http"
	"time"
)

// Config defines JSearch API client settings
type Config struct {
	// APIKey is the RapidAPI key. It may be empty: some search tiers answer
	// unauthenticated requests, so absence is only surfaced when the
	// upstream actually rejects the call.
	APIKey string

	// Host is the RapidAPI host identifier, e.g. "jsearch.p.rapidapi.com".
	Host string

	BaseURL    string
	HTTPClient *http.Client

	// AttemptTimeout bounds a single HTTP attempt, not the whole retry loop.
	AttemptTimeout time.Duration

	Retry RetryPolicy
}

// Client queries the JSearch job search API on RapidAPI
type Client struct {
	apiKey         string
	host           string
	baseURL        string
	httpClient     *http.Client
	attemptTimeout time.Duration
	retry          RetryPolicy
}

// SearchParams describe a job search request
type SearchParams struct {
	// Role is the job title to search for. Required.
	Role string

	// City and Country narrow the search location. Either may be empty.
	City    string
	Country string

	// Platform restricts results to one job board (e.g. "linkedin").
	// Empty means no platform filter, not "all platforms explicitly".
	Platform string

	// NumResults is clamped to [1, MaxResults].
	NumResults int
}

type searchResponse struct {
	Status    string       `json:"status"`
	RequestID string       `json:"request_id"`
	Data      []rawListing `json:"data"`
}

type rawListing struct {
	JobID            string   `json:"job_id"`
	Title            string   `json:"job_title"`
	EmployerName     string   `json:"employer_name"`
	Publisher        string   `json:"job_publisher"`
	City             string   `json:"job_city"`
	State            string   `json:"job_state"`
	Country          string   `json:"job_country"`
	Description      string   `json:"job_description"`
	ApplyLink        string   `json:"job_apply_link"`
	PostedAt         string   `json:"job_posted_at_datetime_utc"`
	EmploymentType   string   `json:"job_employment_type"`
	IsRemote         bool     `json:"job_is_remote"`
	MinSalary        *float64 `json:"job_min_salary"`
	MaxSalary        *float64 `json:"job_max_salary"`
	SalaryCurrency   string   `json:"job_salary_currency"`
	SalaryPeriod     string   `json:"job_salary_period"`
	HighlightedSkill []string `json:"job_required_skills"`
}

// Listing is a single upstream job listing with permissive field presence.
// Only Title, Company and ApplyLink are guaranteed by the normalizer;
// everything else may be zero.
type Listing struct {
	ID             string
	Title          string
	Company        string
	Publisher      string
	Location       string
	Description    string
	ApplyLink      string
	EmploymentType string
	Remote         bool
	PostedAt       *time.Time
	MinSalary      *float64
	MaxSalary      *float64
	SalaryCurrency string
}

// Page is one upstream result page after field extraction.
type Page struct {
	// Listings in upstream relevance order.
	Listings []Listing

	// Upstream is how many raw records upstream returned before any
	// client-side truncation or skipping.
	Upstream int

	// Skipped counts records dropped for missing a required field.
	Skipped int
}
