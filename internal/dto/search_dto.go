package dto

import "time"

// Strategy priority levels, as emitted by the strategy generator.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Strategy search angles.
const (
	SearchTypeMechanism  = "mechanism"
	SearchTypeIndication = "indication"
	SearchTypeStage      = "stage"
	SearchTypeSynonym    = "synonym"
	SearchTypeBroad      = "broad"
)

// SearchStrategy is one LLM-generated query angle. Immutable, at most 5 per
// request, never persisted.
type SearchStrategy struct {
	Query       string `json:"query"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	SearchType  string `json:"searchType"`
}

// TrialRecord is one registry study. Identity is NCTID: two records with the
// same NCTID are the same trial regardless of which strategy surfaced them.
type TrialRecord struct {
	NCTID      string     `json:"nctId"`
	Title      string     `json:"title"`
	Status     string     `json:"status"`
	Phases     []string   `json:"phases"`
	Conditions []string   `json:"conditions"`
	Sponsor    string     `json:"sponsor"`
	Enrollment int        `json:"enrollment"`
	StartDate  *time.Time `json:"startDate,omitempty"`
}

// PaperRecord is one literature index entry, keyed by PMID.
type PaperRecord struct {
	PMID     string   `json:"pmid"`
	Title    string   `json:"title"`
	Abstract string   `json:"abstract,omitempty"`
	Journal  string   `json:"journal"`
	PubDate  string   `json:"pubDate"`
	Authors  []string `json:"authors"`
}

// RankedTrialRecord adds a relevance score in [0,100] and human-readable
// reasons. Derived per request, never persisted.
type RankedTrialRecord struct {
	TrialRecord
	Score   int      `json:"score"`
	Reasons []string `json:"reasons"`
}

// StrategyResult pairs one strategy with its raw (pre-dedup) trial list.
// Surfaced for UI transparency only; the canonical list is the merged one.
type StrategyResult struct {
	Strategy SearchStrategy `json:"strategy"`
	Trials   []TrialRecord  `json:"trials"`
	Count    int            `json:"count"`
}

type PressRelease struct {
	Title       string     `json:"title"`
	Source      string     `json:"source"`
	URL         string     `json:"url"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
	Summary     string     `json:"summary,omitempty"`
}

// Filing is an investor-facing SEC document (IR deck, 8-K, 10-K...).
type Filing struct {
	AccessionNo string `json:"accessionNo"`
	FormType    string `json:"formType"`
	Company     string `json:"company"`
	FiledAt     string `json:"filedAt"`
	URL         string `json:"url"`
}

type DiscoverySearchRequest struct {
	Query string `json:"query" validate:"required"`
}

// DiscoveryResponse is the unified bundle returned to the client.
type DiscoveryResponse struct {
	Trials           []RankedTrialRecord `json:"trials"`
	Papers           []PaperRecord       `json:"papers"`
	PressReleases    []PressRelease      `json:"pressReleases"`
	IRDecks          []Filing            `json:"irDecks"`
	TotalCount       int                 `json:"totalCount"`
	SearchStrategies []StrategyResult    `json:"searchStrategies"`
	StrategiesUsed   int                 `json:"strategiesUsed"`
}
