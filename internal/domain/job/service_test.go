package job

import (
	"context"
	"testing"
	"time"

	"github.com/applicantmesh/iam-mcp-server/internal/domain"
)

type fakeProvider struct {
	result domain.SearchResult
	err    error
	calls  int
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) Search(_ context.Context, _ domain.SearchQuery) (domain.SearchResult, error) {
	f.calls++
	return f.result, f.err
}

func newTestService(t *testing.T, p Provider, clock func() time.Time) Service {
	t.Helper()

	opts := []Option{WithProvider(p)}
	if clock != nil {
		opts = append(opts, WithClock(clock))
	}

	svc, err := NewService(opts...)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func TestNewServiceRequiresProvider(t *testing.T) {
	if _, err := NewService(); err == nil {
		t.Fatal("expected error without provider")
	}
}

func TestSearchStampsResult(t *testing.T) {
	now := time.Date(2025, 8, 30, 12, 0, 0, 0, time.UTC)
	provider := &fakeProvider{result: domain.SearchResult{
		Records: []domain.JobRecord{
			{Title: "Engineer", Company: "Acme", URL: "https://example.com/1"},
			{Title: "Engineer", Company: "Umbrella", URL: "https://example.com/2"},
		},
	}}

	svc := newTestService(t, provider, func() time.Time { return now })

	query, err := domain.NewSearchQuery("engineer", "", "", "", 2)
	if err != nil {
		t.Fatalf("NewSearchQuery: %v", err)
	}

	result, err := svc.Search(context.Background(), query)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	if result.Requested != 2 || result.Returned != 2 {
		t.Fatalf("unexpected counts: requested=%d returned=%d", result.Requested, result.Returned)
	}
	if !result.FetchedAt.Equal(now) {
		t.Fatalf("expected FetchedAt %v, got %v", now, result.FetchedAt)
	}
}

func TestSearchRejectsUnvalidatedQuery(t *testing.T) {
	provider := &fakeProvider{}
	svc := newTestService(t, provider, nil)

	// a hand-built query bypassing NewSearchQuery must still be rejected
	_, err := svc.Search(context.Background(), domain.SearchQuery{Role: "", NumResults: 5})
	if domain.CodeOf(err) != domain.CodeInvalidArgument {
		t.Fatalf("expected INVALID_ARGUMENT, got %v", err)
	}

	_, err = svc.Search(context.Background(), domain.SearchQuery{Role: "engineer", NumResults: 999})
	if domain.CodeOf(err) != domain.CodeInvalidArgument {
		t.Fatalf("expected INVALID_ARGUMENT for out-of-range count, got %v", err)
	}

	if provider.calls != 0 {
		t.Fatal("provider must not be called for invalid queries")
	}
}

func TestSearchPassesProviderErrorThrough(t *testing.T) {
	provider := &fakeProvider{err: domain.Errorf(domain.CodeRateLimited, "slow down")}
	svc := newTestService(t, provider, nil)

	query, _ := domain.NewSearchQuery("engineer", "", "", "", 5)
	_, err := svc.Search(context.Background(), query)
	if domain.CodeOf(err) != domain.CodeRateLimited {
		t.Fatalf("expected rate limited, got %v", err)
	}
}
