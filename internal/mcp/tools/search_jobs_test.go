package tools

import (
	"context"
	"strings"
	"testing"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/applicantmesh/iam-mcp-server/internal/domain"
)

type fakeService struct {
	gotQuery domain.SearchQuery
	result   domain.SearchResult
	err      error
}

func (f *fakeService) Search(_ context.Context, query domain.SearchQuery) (domain.SearchResult, error) {
	f.gotQuery = query
	if f.err != nil {
		return domain.SearchResult{}, f.err
	}
	return f.result, nil
}

func resultText(t *testing.T, res *sdkmcp.CallToolResult) string {
	t.Helper()
	if len(res.Content) != 1 {
		t.Fatalf("expected one content block, got %d", len(res.Content))
	}
	text, ok := res.Content[0].(*sdkmcp.TextContent)
	if !ok {
		t.Fatalf("expected text content, got %T", res.Content[0])
	}
	return text.Text
}

func TestSearchJobsSuccess(t *testing.T) {
	posted := time.Date(2025, 11, 1, 12, 0, 0, 0, time.UTC)
	svc := &fakeService{result: domain.SearchResult{
		Records: []domain.JobRecord{
			{Title: "Go Developer", Company: "Acme", Location: "Berlin, Germany", URL: "https://example.com/1", PostedAt: &posted},
			{Title: "SRE", Company: "Initech", URL: "https://example.com/2"},
		},
		Requested: 2,
		Returned:  2,
	}}
	tool := searchJobsTool{service: svc}

	res, payload, err := tool.handle(context.Background(), nil, &SearchJobsParams{
		Role: "go developer", City: "Berlin", Country: "Germany", NumJobs: 2,
	})
	if err != nil {
		t.Fatalf("handle: %v", err)
	}
	if res.IsError {
		t.Fatal("unexpected error result")
	}

	out, ok := payload.(SearchJobsResult)
	if !ok {
		t.Fatalf("unexpected payload type %T", payload)
	}
	if out.Returned != 2 || len(out.Jobs) != 2 {
		t.Fatalf("unexpected payload %+v", out)
	}

	text := resultText(t, res)
	if !strings.Contains(text, "Found 2 of 2 requested listings") {
		t.Errorf("summary header missing: %q", text)
	}
	if !strings.Contains(text, "1. Go Developer @ Acme (Berlin, Germany) - https://example.com/1") {
		t.Errorf("listing line missing: %q", text)
	}

	if svc.gotQuery.Role != "go developer" || svc.gotQuery.NumResults != 2 {
		t.Fatalf("unexpected query %+v", svc.gotQuery)
	}
}

func TestSearchJobsDefaultsNumJobs(t *testing.T) {
	svc := &fakeService{}
	tool := searchJobsTool{service: svc}

	if _, _, err := tool.handle(context.Background(), nil, &SearchJobsParams{Role: "sre"}); err != nil {
		t.Fatalf("handle: %v", err)
	}
	if svc.gotQuery.NumResults != 5 {
		t.Fatalf("expected default 5, got %d", svc.gotQuery.NumResults)
	}
}

func TestSearchJobsEmptyRole(t *testing.T) {
	svc := &fakeService{}
	tool := searchJobsTool{service: svc}

	res, payload, err := tool.handle(context.Background(), nil, &SearchJobsParams{Role: "   "})
	if err != nil {
		t.Fatalf("handle returned protocol error: %v", err)
	}
	if !res.IsError {
		t.Fatal("expected error result")
	}

	envelope, ok := payload.(ErrorEnvelope)
	if !ok {
		t.Fatalf("unexpected payload type %T", payload)
	}
	if envelope.Code != string(domain.CodeInvalidArgument) {
		t.Fatalf("expected INVALID_ARGUMENT, got %q", envelope.Code)
	}
	if svc.gotQuery.Role != "" {
		t.Fatal("service called despite invalid query")
	}
}

func TestSearchJobsServiceFailure(t *testing.T) {
	svc := &fakeService{err: domain.Errorf(domain.CodeUnauthorized, "upstream rejected the configured API key")}
	tool := searchJobsTool{service: svc}

	res, payload, err := tool.handle(context.Background(), nil, &SearchJobsParams{Role: "sre"})
	if err != nil {
		t.Fatalf("handle returned protocol error: %v", err)
	}
	if !res.IsError {
		t.Fatal("expected error result")
	}

	envelope := payload.(ErrorEnvelope)
	if envelope.Code != string(domain.CodeUnauthorized) {
		t.Fatalf("expected UPSTREAM_UNAUTHORIZED, got %q", envelope.Code)
	}
	if !strings.Contains(resultText(t, res), envelope.Code) {
		t.Error("text content should carry the error code")
	}
}

func TestSearchJobsNilService(t *testing.T) {
	tool := searchJobsTool{}

	res, payload, err := tool.handle(context.Background(), nil, &SearchJobsParams{Role: "sre"})
	if err != nil {
		t.Fatalf("handle returned protocol error: %v", err)
	}
	if !res.IsError {
		t.Fatal("expected error result")
	}
	if envelope := payload.(ErrorEnvelope); envelope.Code != string(domain.CodeInternal) {
		t.Fatalf("expected INTERNAL, got %q", envelope.Code)
	}
}

func TestSummarizeTruncatedAndSkipped(t *testing.T) {
	query, err := domain.NewSearchQuery("analyst", "", "", "", 10)
	if err != nil {
		t.Fatal(err)
	}
	text := summarize(query, domain.SearchResult{
		Records:   []domain.JobRecord{{Title: "Analyst", Company: "Acme", URL: "https://example.com"}},
		Requested: 10,
		Returned:  1,
		Truncated: true,
		Skipped:   2,
	})
	if !strings.Contains(text, "(upstream had fewer matches)") {
		t.Errorf("truncation note missing: %q", text)
	}
	if !strings.Contains(text, "2 skipped for missing fields") {
		t.Errorf("skip note missing: %q", text)
	}
}
