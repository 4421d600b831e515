package trials

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

const studiesFixture = `{
	"totalCount": 2,
	"studies": [
		{
			"protocolSection": {
				"identificationModule": {"nctId": "NCT01234567", "briefTitle": "Semaglutide in Obesity"},
				"statusModule": {"overallStatus": "RECRUITING", "startDateStruct": {"date": "2026-03"}},
				"designModule": {"phases": ["PHASE3"], "enrollmentInfo": {"count": 500}},
				"conditionsModule": {"conditions": ["Obesity"]},
				"sponsorCollaboratorsModule": {"leadSponsor": {"name": "Novo Nordisk"}}
			}
		},
		{
			"protocolSection": {
				"identificationModule": {"nctId": "NCT07654321", "briefTitle": "Tirzepatide Study"},
				"statusModule": {"overallStatus": "COMPLETED", "startDateStruct": {}},
				"designModule": {},
				"conditionsModule": {},
				"sponsorCollaboratorsModule": {}
			}
		}
	]
}`

func TestSearchTrials(t *testing.T) {
	var gotPageSize string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPageSize = r.URL.Query().Get("pageSize")
		if got := r.URL.Query().Get("query.term"); got != "semaglutide" {
			t.Errorf("query.term = %q, want semaglutide", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(studiesFixture))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	records, total, err := client.SearchTrials(context.Background(), "semaglutide", 50)
	if err != nil {
		t.Fatalf("SearchTrials returned error: %v", err)
	}

	if gotPageSize != "50" {
		t.Errorf("pageSize = %q, want 50", gotPageSize)
	}
	if total != 2 {
		t.Errorf("total = %d, want 2", total)
	}
	if len(records) != 2 {
		t.Fatalf("records length = %d, want 2", len(records))
	}

	first := records[0]
	if first.NCTID != "NCT01234567" {
		t.Errorf("NCTID = %q", first.NCTID)
	}
	if first.Title != "Semaglutide in Obesity" {
		t.Errorf("Title = %q", first.Title)
	}
	if first.Status != "RECRUITING" {
		t.Errorf("Status = %q", first.Status)
	}
	if len(first.Phases) != 1 || first.Phases[0] != "PHASE3" {
		t.Errorf("Phases = %v", first.Phases)
	}
	if first.Sponsor != "Novo Nordisk" {
		t.Errorf("Sponsor = %q", first.Sponsor)
	}
	if first.Enrollment != 500 {
		t.Errorf("Enrollment = %d", first.Enrollment)
	}
	if first.StartDate == nil {
		t.Fatal("StartDate = nil, want parsed month date")
	}
	if first.StartDate.Year() != 2026 || first.StartDate.Month() != 3 {
		t.Errorf("StartDate = %v", first.StartDate)
	}

	if records[1].StartDate != nil {
		t.Errorf("missing start date should map to nil, got %v", records[1].StartDate)
	}
}

func TestSearchTrialsClampsPageSize(t *testing.T) {
	var gotPageSize string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPageSize = r.URL.Query().Get("pageSize")
		w.Write([]byte(`{"studies":[],"totalCount":0}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	if _, _, err := client.SearchTrials(context.Background(), "anything", 500); err != nil {
		t.Fatalf("SearchTrials returned error: %v", err)
	}
	if gotPageSize != "50" {
		t.Errorf("pageSize = %q, want clamped to 50", gotPageSize)
	}
}

func TestSearchTrialsUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	if _, _, err := client.SearchTrials(context.Background(), "anything", 10); err == nil {
		t.Fatal("expected error on upstream failure")
	}
}

func TestParseStartDate(t *testing.T) {
	tests := []struct {
		raw     string
		wantNil bool
	}{
		{"2026-03-15", false},
		{"2026-03", false},
		{"2026", false},
		{"", true},
		{"March 2026", true},
	}

	for _, tt := range tests {
		got := parseStartDate(tt.raw)
		if (got == nil) != tt.wantNil {
			t.Errorf("parseStartDate(%q) = %v, wantNil = %v", tt.raw, got, tt.wantNil)
		}
	}
}
