package jsearch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	defaultHost           = "jsearch.p.rapidapi.com"
	defaultAttemptTimeout = 15 * time.Second

	// MaxResults caps a single search to bound upstream cost and latency.
	MaxResults = 20

	// upstream returns ten listings per page
	pageSize = 10
)

// NewClient instantiates a JSearch API client. The API key may be empty;
// an unauthorized upstream response decides whether it was required.
func NewClient(cfg Config) (*Client, error) {
	host := strings.TrimSpace(cfg.Host)
	if host == "" {
		host = defaultHost
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://" + host
	}
	baseURL = strings.TrimSuffix(baseURL, "/")

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	attemptTimeout := cfg.AttemptTimeout
	if attemptTimeout <= 0 {
		attemptTimeout = defaultAttemptTimeout
	}

	retry := cfg.Retry
	if retry.MaxAttempts <= 0 {
		retry = DefaultRetryPolicy()
	}

	return &Client{
		apiKey:         cfg.APIKey,
		host:           host,
		baseURL:        baseURL,
		httpClient:     httpClient,
		attemptTimeout: attemptTimeout,
		retry:          retry,
	}, nil
}

// Search queries JSearch and returns the extracted result page. Retryable
// failures (429, 5xx, transport errors) are re-attempted with exponential
// backoff up to the policy bound; everything else surfaces immediately.
func (c *Client) Search(ctx context.Context, params SearchParams) (Page, error) {
	if c == nil {
		return Page{}, fmt.Errorf("jsearch: client is nil")
	}

	u, err := c.buildSearchURL(params)
	if err != nil {
		return Page{}, err
	}

	var lastErr *APIError
	for attempt := 0; attempt < c.retry.maxAttempts(); attempt++ {
		if attempt > 0 {
			if err := sleep(ctx, c.retry.Delay(attempt-1)); err != nil {
				return Page{}, &APIError{Kind: KindCancelled, Attempts: attempt, err: err}
			}
		}

		page, apiErr := c.attempt(ctx, u)
		if apiErr == nil {
			return page, nil
		}
		apiErr.Attempts = attempt + 1

		if !apiErr.Retryable() {
			return Page{}, apiErr
		}
		lastErr = apiErr
	}

	return Page{}, &APIError{
		Kind:       KindExhausted,
		StatusCode: lastErr.StatusCode,
		Attempts:   c.retry.maxAttempts(),
		err:        lastErr,
	}
}

// attempt performs one bounded-timeout request and classifies the outcome.
func (c *Client) attempt(ctx context.Context, u string) (Page, *APIError) {
	attemptCtx, cancel := context.WithTimeout(ctx, c.attemptTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(attemptCtx, http.MethodGet, u, nil)
	if err != nil {
		return Page{}, &APIError{Kind: KindBadRequest, err: fmt.Errorf("build request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-RapidAPI-Host", c.host)
	if c.apiKey != "" {
		req.Header.Set("X-RapidAPI-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return Page{}, &APIError{Kind: KindCancelled, err: ctx.Err()}
		}
		// per-attempt timeouts and transport failures are retryable
		return Page{}, &APIError{Kind: KindUnavailable, err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if apiErr := c.classifyStatus(resp); apiErr != nil {
		return Page{}, apiErr
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Page{}, &APIError{Kind: KindMalformed, StatusCode: resp.StatusCode, err: fmt.Errorf("decode response: %w", err)}
	}

	return extractPage(payload), nil
}

func (c *Client) classifyStatus(resp *http.Response) *APIError {
	status := resp.StatusCode
	if status < http.StatusBadRequest {
		return nil
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	cause := fmt.Errorf("API error (%d): %s", status, strings.TrimSpace(string(body)))

	switch {
	case status == http.StatusTooManyRequests:
		return &APIError{Kind: KindRateLimited, StatusCode: status, err: cause}
	case status >= http.StatusInternalServerError:
		return &APIError{Kind: KindUnavailable, StatusCode: status, err: cause}
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		if c.apiKey == "" {
			return &APIError{Kind: KindMissingCredential, StatusCode: status, err: cause}
		}
		return &APIError{Kind: KindUnauthorized, StatusCode: status, err: cause}
	default:
		return &APIError{Kind: KindBadRequest, StatusCode: status, err: cause}
	}
}

// buildSearchURL is pure: it validates and sanitizes the logical parameters
// and maps them onto the upstream query string.
func (c *Client) buildSearchURL(params SearchParams) (string, error) {
	query, err := composeQuery(params)
	if err != nil {
		return "", err
	}

	n := clampResults(params.NumResults)

	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("jsearch: parse base url: %w", err)
	}
	u.Path = strings.TrimSuffix(u.Path, "/") + "/search"

	values := url.Values{}
	values.Set("query", query)
	values.Set("page", "1")
	values.Set("num_pages", strconv.Itoa((n+pageSize-1)/pageSize))

	u.RawQuery = values.Encode()
	return u.String(), nil
}

// composeQuery builds the free-text search, e.g. "engineer in Berlin, Germany
// via linkedin". Empty parts are omitted without stray separators.
func composeQuery(params SearchParams) (string, error) {
	role := strings.TrimSpace(params.Role)
	if role == "" {
		return "", ErrEmptyQuery
	}

	var sb strings.Builder
	sb.WriteString(role)

	city := strings.TrimSpace(params.City)
	country := strings.TrimSpace(params.Country)
	switch {
	case city != "" && country != "":
		sb.WriteString(" in " + city + ", " + country)
	case city != "":
		sb.WriteString(" in " + city)
	case country != "":
		sb.WriteString(" in " + country)
	}

	if platform := strings.ToLower(strings.TrimSpace(params.Platform)); platform != "" {
		sb.WriteString(" via " + platform)
	}

	return sb.String(), nil
}

func clampResults(n int) int {
	if n < 1 {
		return 1
	}
	if n > MaxResults {
		return MaxResults
	}
	return n
}

// extractPage walks the upstream listing array in order, keeping records
// permissively and skipping only those missing a required field.
func extractPage(payload searchResponse) Page {
	page := Page{
		Listings: make([]Listing, 0, len(payload.Data)),
		Upstream: len(payload.Data),
	}

	for _, raw := range payload.Data {
		listing, ok := extractListing(raw)
		if !ok {
			page.Skipped++
			continue
		}
		page.Listings = append(page.Listings, listing)
	}

	return page
}

// extractListing maps one raw record. Title, company and apply link are
// required; everything else is optional and stays absent when upstream
// omitted it.
func extractListing(raw rawListing) (Listing, bool) {
	title := strings.TrimSpace(raw.Title)
	company := strings.TrimSpace(raw.EmployerName)
	applyLink := strings.TrimSpace(raw.ApplyLink)
	if title == "" || company == "" || applyLink == "" {
		return Listing{}, false
	}

	listing := Listing{
		ID:             raw.JobID,
		Title:          title,
		Company:        company,
		Publisher:      raw.Publisher,
		Location:       composeLocation(raw),
		Description:    raw.Description,
		ApplyLink:      applyLink,
		EmploymentType: raw.EmploymentType,
		Remote:         raw.IsRemote,
		MinSalary:      raw.MinSalary,
		MaxSalary:      raw.MaxSalary,
		SalaryCurrency: raw.SalaryCurrency,
	}

	if raw.PostedAt != "" {
		if ts, err := time.Parse(time.RFC3339, raw.PostedAt); err == nil {
			listing.PostedAt = &ts
		}
	}

	return listing, true
}

func composeLocation(raw rawListing) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{raw.City, raw.State, raw.Country} {
		if v := strings.TrimSpace(p); v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, ", ")
}
