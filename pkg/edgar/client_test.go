package edgar

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

const searchFixture = `{
	"hits": {
		"hits": [
			{
				"_id": "0001193125-26-000123:pressrelease.htm",
				"_source": {
					"display_names": ["Novo Nordisk A/S (NVO) (CIK 0001234567)"],
					"file_type": "8-K",
					"file_date": "2026-08-01"
				}
			},
			{
				"_id": "0001193125-26-000456:deck.htm",
				"_source": {
					"display_names": ["Eli Lilly and Co (LLY) (CIK 0000059478)"],
					"file_type": "10-Q",
					"file_date": "2026-07-15"
				}
			}
		]
	}
}`

func TestSearchFilings(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		if got := r.Header.Get("User-Agent"); got != "abcresearch admin@example.com" {
			t.Errorf("User-Agent = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(searchFixture))
	}))
	defer server.Close()

	client := NewClient(server.URL, "abcresearch admin@example.com")
	filings, err := client.SearchFilings(context.Background(), "semaglutide", 10)
	if err != nil {
		t.Fatalf("SearchFilings returned error: %v", err)
	}

	if len(filings) != 2 {
		t.Fatalf("filings length = %d, want 2", len(filings))
	}
	if filings[0].AccessionNo != "0001193125-26-000123" {
		t.Errorf("AccessionNo = %q", filings[0].AccessionNo)
	}
	if filings[0].FormType != "8-K" {
		t.Errorf("FormType = %q", filings[0].FormType)
	}
	if filings[0].Company != "Novo Nordisk A/S (NVO) (CIK 0001234567)" {
		t.Errorf("Company = %q", filings[0].Company)
	}
	if filings[0].FiledAt != "2026-08-01" {
		t.Errorf("FiledAt = %q", filings[0].FiledAt)
	}
	if filings[0].URL == "" {
		t.Error("URL is empty")
	}
}

func TestSearchFilingsCaches(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Write([]byte(searchFixture))
	}))
	defer server.Close()

	client := NewClient(server.URL, "abcresearch admin@example.com")
	for i := 0; i < 3; i++ {
		if _, err := client.SearchFilings(context.Background(), "semaglutide", 10); err != nil {
			t.Fatalf("SearchFilings returned error: %v", err)
		}
	}
	if requests != 1 {
		t.Errorf("upstream requests = %d, want 1 (cache hit on repeats)", requests)
	}
}

func TestSearchFilingsBounded(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(searchFixture))
	}))
	defer server.Close()

	client := NewClient(server.URL, "ua")
	filings, err := client.SearchFilings(context.Background(), "semaglutide", 1)
	if err != nil {
		t.Fatalf("SearchFilings returned error: %v", err)
	}
	if len(filings) != 1 {
		t.Errorf("filings length = %d, want bounded to 1", len(filings))
	}
}

func TestSearchFilingsUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "throttled", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient(server.URL, "ua")
	if _, err := client.SearchFilings(context.Background(), "anything", 10); err == nil {
		t.Fatal("expected error on upstream failure")
	}
}
