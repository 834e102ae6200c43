package jsearch

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/applicantmesh/iam-mcp-server/internal/domain"
	"github.com/applicantmesh/iam-mcp-server/pkg/jsearch"
)

func listing(id, title string) jsearch.Listing {
	return jsearch.Listing{
		ID:        id,
		Title:     title,
		Company:   "Acme",
		ApplyLink: "https://example.com/" + id,
	}
}

func page(n int) jsearch.Page {
	p := jsearch.Page{Upstream: n}
	for i := 0; i < n; i++ {
		p.Listings = append(p.Listings, listing(string(rune('a'+i)), "Engineer"))
	}
	return p
}

func TestNormalizeFullSupply(t *testing.T) {
	result := Normalize(page(10), 5, "")

	if len(result.Records) != 5 {
		t.Fatalf("expected 5 records, got %d", len(result.Records))
	}
	if result.Truncated {
		t.Fatal("truncated must be false when upstream had enough matches")
	}
	if result.Records[0].ID != "a" || result.Records[4].ID != "e" {
		t.Fatal("relevance order not preserved")
	}
}

func TestNormalizeShortSupply(t *testing.T) {
	result := Normalize(page(3), 5, "")

	if len(result.Records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(result.Records))
	}
	if !result.Truncated {
		t.Fatal("truncated must be true when upstream had fewer matches")
	}
}

func TestNormalizeSkipsDoNotTruncate(t *testing.T) {
	// upstream sent 5 raw records but one failed extraction
	p := page(4)
	p.Upstream = 5
	p.Skipped = 1

	result := Normalize(p, 5, "")

	if len(result.Records) != 4 {
		t.Fatalf("expected 4 records, got %d", len(result.Records))
	}
	if result.Truncated {
		t.Fatal("skipped listings must not set truncated")
	}
	if result.Skipped != 1 {
		t.Fatalf("expected skip count 1, got %d", result.Skipped)
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	posted := time.Date(2025, 8, 1, 10, 0, 0, 0, time.UTC)
	salary := 90000.0

	p := page(3)
	p.Listings[0].PostedAt = &posted
	p.Listings[0].MaxSalary = &salary

	first := Normalize(p, 5, "linkedin")
	second := Normalize(p, 5, "linkedin")

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("normalize is not idempotent:\n%+v\n%+v", first, second)
	}
}

func TestNormalizePlatformFallback(t *testing.T) {
	p := page(2)
	p.Listings[0].Publisher = "Indeed"

	result := Normalize(p, 2, "linkedin")

	if result.Records[0].Platform != "Indeed" {
		t.Fatalf("upstream publisher must win, got %q", result.Records[0].Platform)
	}
	if result.Records[1].Platform != "linkedin" {
		t.Fatalf("expected query platform fallback, got %q", result.Records[1].Platform)
	}
}

func TestNormalizeSalaryMapping(t *testing.T) {
	minSalary, maxSalary := 70000.0, 90000.0

	p := page(2)
	p.Listings[0].MinSalary = &minSalary
	p.Listings[0].MaxSalary = &maxSalary
	p.Listings[0].SalaryCurrency = "EUR"

	result := Normalize(p, 2, "")

	if result.Records[0].Salary == nil {
		t.Fatal("expected salary range")
	}
	if result.Records[0].Salary.Min != 70000 || result.Records[0].Salary.Max != 90000 {
		t.Fatalf("unexpected salary range %+v", result.Records[0].Salary)
	}
	if result.Records[0].Salary.Currency != "EUR" {
		t.Fatalf("unexpected currency %q", result.Records[0].Salary.Currency)
	}
	if result.Records[1].Salary != nil {
		t.Fatal("absent salary must stay nil")
	}
}

func apiErr(kind jsearch.Kind) *jsearch.APIError {
	return jsearch.NewAPIError(kind, errors.New("upstream says no"))
}

func wrapExhausted(last *jsearch.APIError) *jsearch.APIError {
	return jsearch.NewAPIError(jsearch.KindExhausted, last)
}

type fakeClient struct {
	page jsearch.Page
	err  error
}

func (f fakeClient) Search(_ context.Context, _ jsearch.SearchParams) (jsearch.Page, error) {
	return f.page, f.err
}

func mustQuery(t *testing.T) domain.SearchQuery {
	t.Helper()
	q, err := domain.NewSearchQuery("engineer", "", "", "", 5)
	if err != nil {
		t.Fatalf("NewSearchQuery: %v", err)
	}
	return q
}

func TestProviderSearchMapsResults(t *testing.T) {
	provider := newProviderWith(fakeClient{page: page(5)})

	result, err := provider.Search(context.Background(), mustQuery(t))
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(result.Records) != 5 {
		t.Fatalf("expected 5 records, got %d", len(result.Records))
	}
}

func TestProviderErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want domain.Code
	}{
		{"unauthorized", apiErr(jsearch.KindUnauthorized), domain.CodeUnauthorized},
		{"missing credential", apiErr(jsearch.KindMissingCredential), domain.CodeMissingCredential},
		{"bad request", apiErr(jsearch.KindBadRequest), domain.CodeInvalidArgument},
		{"rate limited", apiErr(jsearch.KindRateLimited), domain.CodeRateLimited},
		{"unavailable", apiErr(jsearch.KindUnavailable), domain.CodeUnavailable},
		{"malformed", apiErr(jsearch.KindMalformed), domain.CodeMalformed},
		{"cancelled", apiErr(jsearch.KindCancelled), domain.CodeCancelled},
		{"plain error", errors.New("boom"), domain.CodeUnavailable},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			provider := newProviderWith(fakeClient{err: tc.err})

			_, err := provider.Search(context.Background(), mustQuery(t))
			if err == nil {
				t.Fatal("expected error")
			}
			if got := domain.CodeOf(err); got != tc.want {
				t.Fatalf("expected code %s, got %s", tc.want, got)
			}
		})
	}
}

func TestProviderExhaustedReportsLastCause(t *testing.T) {
	exhausted := wrapExhausted(apiErr(jsearch.KindRateLimited))
	provider := newProviderWith(fakeClient{err: exhausted})

	_, err := provider.Search(context.Background(), mustQuery(t))
	if got := domain.CodeOf(err); got != domain.CodeRateLimited {
		t.Fatalf("expected rate limited after exhaustion, got %s", got)
	}
}
