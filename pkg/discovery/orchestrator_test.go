package discovery

import (
	"context"
	"errors"
	"testing"

	"abcresearch-be/internal/dto"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

type stubStrategies struct {
	strategies []dto.SearchStrategy
}

func (s stubStrategies) Generate(ctx context.Context, query string) []dto.SearchStrategy {
	return s.strategies
}

type stubTrials struct {
	byQuery map[string][]dto.TrialRecord
	err     error
}

func (s stubTrials) SearchTrials(ctx context.Context, query string, pageSize int) ([]dto.TrialRecord, int, error) {
	if s.err != nil {
		return nil, 0, s.err
	}
	trials := s.byQuery[query]
	return trials, len(trials), nil
}

type stubPapers struct {
	papers []dto.PaperRecord
	err    error
}

func (s stubPapers) SearchPapers(ctx context.Context, query string, maxResults int) ([]dto.PaperRecord, error) {
	return s.papers, s.err
}

type stubReleases struct {
	releases []dto.PressRelease
	err      error
}

func (s stubReleases) SearchReleases(ctx context.Context, query string, maxResults int) ([]dto.PressRelease, error) {
	return s.releases, s.err
}

type stubFilings struct {
	filings []dto.Filing
	err     error
}

func (s stubFilings) SearchFilings(ctx context.Context, query string, maxResults int) ([]dto.Filing, error) {
	return s.filings, s.err
}

func testLimits() Limits {
	return Limits{TrialPageSize: 50, PaperMaxResults: 30, NewsMaxResults: 10, FilingsMax: 10}
}

func twoStrategies() []dto.SearchStrategy {
	return []dto.SearchStrategy{
		{Query: "first angle", Priority: dto.PriorityHigh, SearchType: dto.SearchTypeIndication},
		{Query: "second angle", Priority: dto.PriorityMedium, SearchType: dto.SearchTypeSynonym},
	}
}

func TestDiscoverRejectsEmptyQuery(t *testing.T) {
	o := NewOrchestrator(
		stubStrategies{}, stubTrials{}, stubPapers{}, stubReleases{}, stubFilings{},
		testLimits(), nopLogger{},
	)

	for _, query := range []string{"", "   ", "\t\n"} {
		if _, err := o.Discover(context.Background(), query); !errors.Is(err, ErrEmptyQuery) {
			t.Errorf("Discover(%q) error = %v, want ErrEmptyQuery", query, err)
		}
	}
}

func TestDiscoverMergesAcrossStrategies(t *testing.T) {
	trials := stubTrials{byQuery: map[string][]dto.TrialRecord{
		"first angle": {
			{NCTID: "NCT00000001", Title: "Shared trial", Status: "RECRUITING"},
			{NCTID: "NCT00000002", Title: "Only first"},
		},
		"second angle": {
			{NCTID: "NCT00000001", Title: "Shared trial again", Status: "COMPLETED"},
			{NCTID: "NCT00000003", Title: "Only second"},
		},
	}}

	o := NewOrchestrator(
		stubStrategies{strategies: twoStrategies()},
		trials,
		stubPapers{papers: []dto.PaperRecord{{PMID: "11111", Title: "A paper"}}},
		stubReleases{},
		stubFilings{},
		testLimits(), nopLogger{},
	)

	resp, err := o.Discover(context.Background(), "some query")
	if err != nil {
		t.Fatalf("Discover returned error: %v", err)
	}

	if len(resp.Trials) != 3 {
		t.Fatalf("trials length = %d, want 3", len(resp.Trials))
	}

	seen := make(map[string]int)
	var shared *dto.RankedTrialRecord
	for i := range resp.Trials {
		seen[resp.Trials[i].NCTID]++
		if resp.Trials[i].NCTID == "NCT00000001" {
			shared = &resp.Trials[i]
		}
	}
	for id, count := range seen {
		if count != 1 {
			t.Errorf("NCTID %s appears %d times, want 1", id, count)
		}
	}
	if shared == nil || shared.Title != "Shared trial" {
		t.Errorf("shared trial should carry fields from the first strategy")
	}

	if resp.StrategiesUsed != 2 {
		t.Errorf("StrategiesUsed = %d, want 2", resp.StrategiesUsed)
	}
	if len(resp.SearchStrategies) != 2 {
		t.Errorf("SearchStrategies length = %d, want 2", len(resp.SearchStrategies))
	}
	if resp.SearchStrategies[0].Count != 2 {
		t.Errorf("first strategy count = %d, want 2 raw results", resp.SearchStrategies[0].Count)
	}
	if resp.TotalCount != 4 {
		t.Errorf("TotalCount = %d, want 4", resp.TotalCount)
	}
}

func TestDiscoverAbsorbsTrialFailures(t *testing.T) {
	o := NewOrchestrator(
		stubStrategies{strategies: twoStrategies()},
		stubTrials{err: errors.New("registry down")},
		stubPapers{papers: []dto.PaperRecord{{PMID: "11111"}}},
		stubReleases{releases: []dto.PressRelease{{Title: "News"}}},
		stubFilings{},
		testLimits(), nopLogger{},
	)

	resp, err := o.Discover(context.Background(), "some query")
	if err != nil {
		t.Fatalf("Discover returned error: %v", err)
	}

	if len(resp.Trials) != 0 {
		t.Errorf("trials length = %d, want 0", len(resp.Trials))
	}
	if resp.Trials == nil {
		t.Errorf("trials should be an empty list, not nil")
	}
	if resp.StrategiesUsed != 2 {
		t.Errorf("StrategiesUsed = %d, want 2", resp.StrategiesUsed)
	}
	if len(resp.Papers) != 1 {
		t.Errorf("papers length = %d, want 1; independent pipelines must survive", len(resp.Papers))
	}
	if len(resp.PressReleases) != 1 {
		t.Errorf("press releases length = %d, want 1", len(resp.PressReleases))
	}
}

func TestDiscoverAbsorbsAuxiliaryFailures(t *testing.T) {
	trials := stubTrials{byQuery: map[string][]dto.TrialRecord{
		"first angle": {{NCTID: "NCT00000001", Title: "A trial"}},
	}}

	o := NewOrchestrator(
		stubStrategies{strategies: twoStrategies()},
		trials,
		stubPapers{err: errors.New("index down")},
		stubReleases{err: errors.New("feed down")},
		stubFilings{err: errors.New("edgar down")},
		testLimits(), nopLogger{},
	)

	resp, err := o.Discover(context.Background(), "some query")
	if err != nil {
		t.Fatalf("Discover returned error: %v", err)
	}

	if len(resp.Trials) != 1 {
		t.Errorf("trials length = %d, want 1", len(resp.Trials))
	}
	if resp.Papers == nil || len(resp.Papers) != 0 {
		t.Errorf("papers should degrade to an empty list")
	}
	if resp.PressReleases == nil || len(resp.PressReleases) != 0 {
		t.Errorf("press releases should degrade to an empty list")
	}
	if resp.IRDecks == nil || len(resp.IRDecks) != 0 {
		t.Errorf("filings should degrade to an empty list")
	}
}
