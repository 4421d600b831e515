package discovery

import (
	"testing"

	"abcresearch-be/internal/dto"
)

func TestMergeTrialsDeduplicates(t *testing.T) {
	lists := [][]dto.TrialRecord{
		{
			{NCTID: "NCT00000001", Title: "From strategy one", Status: "RECRUITING"},
			{NCTID: "NCT00000002", Title: "Unique to strategy one"},
		},
		{
			{NCTID: "NCT00000001", Title: "From strategy two", Status: "COMPLETED"},
			{NCTID: "NCT00000003", Title: "Unique to strategy two"},
		},
	}

	merged := MergeTrials(lists)

	if len(merged) != 3 {
		t.Fatalf("merged length = %d, want 3", len(merged))
	}

	seen := make(map[string]int)
	for _, trial := range merged {
		seen[trial.NCTID]++
	}
	for id, count := range seen {
		if count != 1 {
			t.Errorf("NCTID %s appears %d times, want 1", id, count)
		}
	}
}

func TestMergeTrialsFirstSeenWins(t *testing.T) {
	lists := [][]dto.TrialRecord{
		{{NCTID: "NCT00000001", Title: "From strategy one", Status: "RECRUITING"}},
		{{NCTID: "NCT00000001", Title: "From strategy two", Status: "COMPLETED"}},
	}

	merged := MergeTrials(lists)

	if len(merged) != 1 {
		t.Fatalf("merged length = %d, want 1", len(merged))
	}
	if merged[0].Title != "From strategy one" {
		t.Errorf("kept title = %q, want the strategy-one record", merged[0].Title)
	}
	if merged[0].Status != "RECRUITING" {
		t.Errorf("kept status = %q, want RECRUITING", merged[0].Status)
	}
}

func TestMergeTrialsPreservesOrder(t *testing.T) {
	lists := [][]dto.TrialRecord{
		{{NCTID: "NCT00000003"}, {NCTID: "NCT00000001"}},
		{{NCTID: "NCT00000002"}},
	}

	merged := MergeTrials(lists)

	want := []string{"NCT00000003", "NCT00000001", "NCT00000002"}
	for i, id := range want {
		if merged[i].NCTID != id {
			t.Errorf("merged[%d] = %s, want %s", i, merged[i].NCTID, id)
		}
	}
}

func TestMergePapersDeduplicates(t *testing.T) {
	lists := [][]dto.PaperRecord{
		{{PMID: "11111", Title: "First"}, {PMID: "22222"}},
		{{PMID: "11111", Title: "Duplicate"}},
	}

	merged := MergePapers(lists)

	if len(merged) != 2 {
		t.Fatalf("merged length = %d, want 2", len(merged))
	}
	if merged[0].Title != "First" {
		t.Errorf("kept title = %q, want first occurrence", merged[0].Title)
	}
}

func TestMergeTrialsEmptyInput(t *testing.T) {
	if got := MergeTrials(nil); len(got) != 0 {
		t.Errorf("MergeTrials(nil) length = %d, want 0", len(got))
	}
	if got := MergeTrials([][]dto.TrialRecord{nil, {}}); len(got) != 0 {
		t.Errorf("MergeTrials of empty lists length = %d, want 0", len(got))
	}
}
