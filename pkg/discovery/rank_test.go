package discovery

import (
	"testing"
	"time"

	"abcresearch-be/internal/dto"
)

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestRankTrialsPerfectScore(t *testing.T) {
	threeMonthsAgo := time.Now().AddDate(0, -3, 0)
	trials := []dto.TrialRecord{
		{
			NCTID:     "NCT12345678",
			Title:     "GLP-1 Receptor Agonist in Type 2 Diabetes",
			Status:    "RECRUITING",
			Phases:    []string{"PHASE3"},
			StartDate: timePtr(threeMonthsAgo),
		},
	}

	ranked := RankTrials(trials, "GLP-1 receptor agonist diabetes")

	if ranked[0].Score != 100 {
		t.Errorf("Score = %d, want 100", ranked[0].Score)
	}
}

func TestRankTrialsSortedDescending(t *testing.T) {
	trials := []dto.TrialRecord{
		{NCTID: "NCT00000001", Title: "Unrelated study", Status: "WITHDRAWN"},
		{NCTID: "NCT00000002", Title: "Semaglutide obesity trial", Status: "RECRUITING", Phases: []string{"PHASE3"}},
		{NCTID: "NCT00000003", Title: "Semaglutide study", Status: "COMPLETED", Phases: []string{"PHASE1"}},
	}

	ranked := RankTrials(trials, "semaglutide obesity")

	for i := 1; i < len(ranked); i++ {
		if ranked[i].Score > ranked[i-1].Score {
			t.Errorf("ranked[%d].Score = %d exceeds ranked[%d].Score = %d", i, ranked[i].Score, i-1, ranked[i-1].Score)
		}
	}
	if ranked[0].NCTID != "NCT00000002" {
		t.Errorf("top result = %s, want NCT00000002", ranked[0].NCTID)
	}
}

func TestRankTrialsTiesKeepMergeOrder(t *testing.T) {
	// Identical signals produce identical scores; the stable sort must
	// keep the input order.
	trials := []dto.TrialRecord{
		{NCTID: "NCT00000010", Title: "Semaglutide trial", Status: "RECRUITING", Phases: []string{"PHASE2"}},
		{NCTID: "NCT00000011", Title: "Semaglutide trial", Status: "RECRUITING", Phases: []string{"PHASE2"}},
		{NCTID: "NCT00000012", Title: "Semaglutide trial", Status: "RECRUITING", Phases: []string{"PHASE2"}},
	}

	ranked := RankTrials(trials, "semaglutide")

	want := []string{"NCT00000010", "NCT00000011", "NCT00000012"}
	for i, id := range want {
		if ranked[i].NCTID != id {
			t.Errorf("ranked[%d] = %s, want %s", i, ranked[i].NCTID, id)
		}
	}
}

func TestTitleRelevance(t *testing.T) {
	tests := []struct {
		name  string
		title string
		query string
		want  float64
	}{
		{
			name:  "all words match",
			title: "GLP-1 Receptor Agonist in Type 2 Diabetes",
			query: "GLP-1 receptor agonist diabetes",
			want:  1.0,
		},
		{
			name:  "half the words match",
			title: "Semaglutide in adults",
			query: "semaglutide pediatric",
			want:  0.5,
		},
		{
			name:  "short words are ignored",
			title: "A study of insulin",
			query: "of in an insulin",
			want:  1.0,
		},
		{
			name:  "no usable words",
			title: "Any title",
			query: "a of in",
			want:  0,
		},
		{
			name:  "no match",
			title: "Cardiology outcomes",
			query: "oncology",
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := titleRelevance(tt.title, tt.query)
			if got != tt.want {
				t.Errorf("titleRelevance = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStatusScore(t *testing.T) {
	tests := []struct {
		status string
		want   float64
	}{
		{"RECRUITING", 1.0},
		{"ACTIVE_NOT_RECRUITING", 0.7},
		{"ENROLLING_BY_INVITATION", 0.6},
		{"NOT_YET_RECRUITING", 0.5},
		{"COMPLETED", 0.3},
		{"TERMINATED", 0.1},
		{"WITHDRAWN", 0.1},
		{"recruiting", 1.0},
		{"SOMETHING_ELSE", 0.4},
		{"", 0.4},
	}

	for _, tt := range tests {
		if got := statusScore(tt.status); got != tt.want {
			t.Errorf("statusScore(%q) = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestPhaseScore(t *testing.T) {
	tests := []struct {
		name   string
		phases []string
		want   float64
	}{
		{"phase 3 outranks phase 4", []string{"PHASE3"}, 1.0},
		{"phase 4", []string{"PHASE4"}, 0.9},
		{"phase 2", []string{"PHASE2"}, 0.8},
		{"phase 1", []string{"PHASE1"}, 0.6},
		{"highest listed wins", []string{"PHASE1", "PHASE3"}, 1.0},
		{"mixed with phase 4", []string{"PHASE3", "PHASE4"}, 0.9},
		{"early phase", []string{"EARLY_PHASE1"}, 0.6},
		{"no phases", nil, 0.4},
		{"unrecognized", []string{"NA"}, 0.4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := phaseScore(tt.phases)
			if got != tt.want {
				t.Errorf("phaseScore(%v) = %v, want %v", tt.phases, got, tt.want)
			}
		})
	}
}

func TestRecencyScore(t *testing.T) {
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		start *time.Time
		want  float64
	}{
		{"three months ago", timePtr(now.AddDate(0, -3, 0)), 1.0},
		{"nine months ago", timePtr(now.AddDate(0, -9, 0)), 0.8},
		{"eighteen months ago", timePtr(now.AddDate(0, -18, 0)), 0.6},
		{"thirty months ago", timePtr(now.AddDate(0, -30, 0)), 0.4},
		{"five years ago", timePtr(now.AddDate(-5, 0, 0)), 0.2},
		{"missing start date", nil, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := recencyScore(tt.start, now)
			if got != tt.want {
				t.Errorf("recencyScore = %v, want %v", got, tt.want)
			}
		})
	}
}
