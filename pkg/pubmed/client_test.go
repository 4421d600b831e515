package pubmed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"golang.org/x/time/rate"
)

const esearchFixture = `{"esearchresult":{"idlist":["11111111","22222222"]}}`

const esummaryFixture = `{
	"result": {
		"uids": ["11111111", "22222222"],
		"11111111": {
			"uid": "11111111",
			"title": "Semaglutide outcomes trial",
			"fulljournalname": "New England Journal of Medicine",
			"pubdate": "2026 Jan",
			"authors": [{"name": "Smith J"}, {"name": "Lee K"}]
		},
		"22222222": {
			"uid": "22222222",
			"title": "GLP-1 safety study",
			"fulljournalname": "The Lancet",
			"pubdate": "2025 Nov",
			"authors": []
		}
	}
}`

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case strings.HasSuffix(r.URL.Path, "esearch.fcgi"):
			term := r.URL.Query().Get("term")
			if !strings.Contains(term, "clinical trial[pt]") {
				t.Errorf("term %q missing clinical trial filter", term)
			}
			w.Write([]byte(esearchFixture))
		case strings.HasSuffix(r.URL.Path, "esummary.fcgi"):
			if got := r.URL.Query().Get("id"); got != "11111111,22222222" {
				t.Errorf("id = %q", got)
			}
			w.Write([]byte(esummaryFixture))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
}

func TestSearchPapers(t *testing.T) {
	server := newTestServer(t)
	defer server.Close()

	client := NewClient(server.URL, "", rate.NewLimiter(rate.Inf, 1))
	papers, err := client.SearchPapers(context.Background(), "semaglutide", 30)
	if err != nil {
		t.Fatalf("SearchPapers returned error: %v", err)
	}

	if len(papers) != 2 {
		t.Fatalf("papers length = %d, want 2", len(papers))
	}
	if papers[0].PMID != "11111111" {
		t.Errorf("first PMID = %q, want search order preserved", papers[0].PMID)
	}
	if papers[0].Title != "Semaglutide outcomes trial" {
		t.Errorf("Title = %q", papers[0].Title)
	}
	if papers[0].Journal != "New England Journal of Medicine" {
		t.Errorf("Journal = %q", papers[0].Journal)
	}
	if len(papers[0].Authors) != 2 || papers[0].Authors[0] != "Smith J" {
		t.Errorf("Authors = %v", papers[0].Authors)
	}
}

func TestSearchPapersZeroResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"esearchresult":{"idlist":[]}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "", rate.NewLimiter(rate.Inf, 1))
	papers, err := client.SearchPapers(context.Background(), "nonexistent", 30)
	if err != nil {
		t.Fatalf("SearchPapers returned error: %v", err)
	}
	if papers == nil || len(papers) != 0 {
		t.Errorf("papers = %v, want empty non-nil list", papers)
	}
}

func TestSearchPapersClampsMax(t *testing.T) {
	var gotRetmax string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRetmax = r.URL.Query().Get("retmax")
		w.Write([]byte(`{"esearchresult":{"idlist":[]}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "", rate.NewLimiter(rate.Inf, 1))
	if _, err := client.SearchPapers(context.Background(), "anything", 1000); err != nil {
		t.Fatalf("SearchPapers returned error: %v", err)
	}
	if gotRetmax != "30" {
		t.Errorf("retmax = %q, want clamped to 30", gotRetmax)
	}
}

func TestSearchPapersSendsAPIKey(t *testing.T) {
	var gotKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.URL.Query().Get("api_key")
		w.Write([]byte(`{"esearchresult":{"idlist":[]}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "secret-key", rate.NewLimiter(rate.Inf, 1))
	if _, err := client.SearchPapers(context.Background(), "anything", 10); err != nil {
		t.Fatalf("SearchPapers returned error: %v", err)
	}
	if gotKey != "secret-key" {
		t.Errorf("api_key = %q, want secret-key", gotKey)
	}
}
