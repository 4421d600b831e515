package discovery

import (
	"math"
	"sort"
	"strings"
	"time"

	"abcresearch-be/internal/dto"
)

// Component weights. They sum to 1 so the rounded score lands in [0,100].
const (
	titleWeight   = 0.4
	statusWeight  = 0.3
	phaseWeight   = 0.2
	recencyWeight = 0.1
)

var statusScores = map[string]float64{
	"RECRUITING":              1.0,
	"ACTIVE_NOT_RECRUITING":   0.7,
	"ENROLLING_BY_INVITATION": 0.6,
	"NOT_YET_RECRUITING":      0.5,
	"COMPLETED":               0.3,
	"TERMINATED":              0.1,
	"WITHDRAWN":               0.1,
}

const unknownStatusScore = 0.4

// Highest listed phase wins. Phase 3 intentionally outranks Phase 4 here;
// the table encodes pivotal-trial interest, not trial maturity.
var phaseScores = map[int]float64{
	4: 0.9,
	3: 1.0,
	2: 0.8,
	1: 0.6,
}

const noPhaseScore = 0.4

// RankTrials scores each trial against the original user query and returns
// the list sorted by descending score. The sort is stable: ties keep merge
// order. Scoring is a pure function of (trial, query); it never looks at
// which strategy produced a record.
func RankTrials(trials []dto.TrialRecord, userQuery string) []dto.RankedTrialRecord {
	ranked := make([]dto.RankedTrialRecord, len(trials))
	for i, trial := range trials {
		score, reasons := scoreTrial(trial, userQuery)
		ranked[i] = dto.RankedTrialRecord{
			TrialRecord: trial,
			Score:       score,
			Reasons:     reasons,
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

func scoreTrial(trial dto.TrialRecord, userQuery string) (int, []string) {
	var reasons []string

	title := titleRelevance(trial.Title, userQuery)
	if title >= 0.75 {
		reasons = append(reasons, "Strong title match")
	}

	status := statusScore(trial.Status)
	if strings.EqualFold(trial.Status, "RECRUITING") {
		reasons = append(reasons, "Currently recruiting")
	}

	phase, phaseNum := phaseScore(trial.Phases)
	if phaseNum >= 3 {
		reasons = append(reasons, "Late-stage trial")
	}

	recency := recencyScore(trial.StartDate, time.Now())
	if recency >= 0.8 {
		reasons = append(reasons, "Recently started")
	}

	weighted := title*titleWeight + status*statusWeight + phase*phaseWeight + recency*recencyWeight
	return int(math.Round(weighted * 100)), reasons
}

// titleRelevance is the fraction of query words (length > 2, case
// insensitive) found as substrings of the title. Zero usable words
// scores 0.
func titleRelevance(title, userQuery string) float64 {
	loweredTitle := strings.ToLower(title)

	var usable, matched int
	for _, word := range strings.Fields(strings.ToLower(userQuery)) {
		if len(word) <= 2 {
			continue
		}
		usable++
		if strings.Contains(loweredTitle, word) {
			matched++
		}
	}

	if usable == 0 {
		return 0
	}
	return float64(matched) / float64(usable)
}

func statusScore(status string) float64 {
	if score, ok := statusScores[strings.ToUpper(status)]; ok {
		return score
	}
	return unknownStatusScore
}

// phaseScore picks the highest-numbered listed phase and maps it through
// the score table. Returns the score and the phase number for reasons.
func phaseScore(phases []string) (float64, int) {
	highest := 0
	for _, phase := range phases {
		for _, r := range phase {
			if r >= '1' && r <= '4' {
				n := int(r - '0')
				if n > highest {
					highest = n
				}
			}
		}
	}

	if score, ok := phaseScores[highest]; ok {
		return score, highest
	}
	return noPhaseScore, 0
}

// recencyScore buckets months since the start date. A missing start date
// scores 0.5, which is distinct from the oldest bucket.
func recencyScore(startDate *time.Time, now time.Time) float64 {
	if startDate == nil {
		return 0.5
	}

	months := now.Sub(*startDate).Hours() / (24 * 30)
	switch {
	case months < 6:
		return 1.0
	case months < 12:
		return 0.8
	case months < 24:
		return 0.6
	case months < 36:
		return 0.4
	default:
		return 0.2
	}
}
