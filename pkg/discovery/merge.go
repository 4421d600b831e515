package discovery

import "abcresearch-be/internal/dto"

// MergeTrials concatenates per-strategy trial lists in strategy order and
// deduplicates by NCTID with a single skip-on-exists pass. First seen wins:
// a trial surfaced by strategy 1 keeps its strategy-1 fields even when a
// later strategy returns the same NCTID.
func MergeTrials(lists [][]dto.TrialRecord) []dto.TrialRecord {
	seen := make(map[string]struct{})
	var merged []dto.TrialRecord
	for _, list := range lists {
		for _, trial := range list {
			if _, ok := seen[trial.NCTID]; ok {
				continue
			}
			seen[trial.NCTID] = struct{}{}
			merged = append(merged, trial)
		}
	}
	return merged
}

// MergePapers applies the same first-seen-wins rule keyed on PMID.
func MergePapers(lists [][]dto.PaperRecord) []dto.PaperRecord {
	seen := make(map[string]struct{})
	var merged []dto.PaperRecord
	for _, list := range lists {
		for _, paper := range list {
			if _, ok := seen[paper.PMID]; ok {
				continue
			}
			seen[paper.PMID] = struct{}{}
			merged = append(merged, paper)
		}
	}
	return merged
}
