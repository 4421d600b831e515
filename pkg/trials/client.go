package trials

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"abcresearch-be/internal/dto"
)

const (
	defaultBaseURL  = "https://clinicaltrials.gov/api/v2"
	maxPageSize     = 50
	defaultPageSize = 20
)

// Client searches the ClinicalTrials.gov v2 registry.
type Client struct {
	baseURL string
	client  *http.Client
}

func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// --- Registry response shapes (internal to this package) ---

type studiesResponse struct {
	Studies    []study `json:"studies"`
	TotalCount int     `json:"totalCount"`
}

type study struct {
	ProtocolSection protocolSection `json:"protocolSection"`
}

type protocolSection struct {
	Identification identificationModule `json:"identificationModule"`
	Status         statusModule         `json:"statusModule"`
	Design         designModule         `json:"designModule"`
	Conditions     conditionsModule     `json:"conditionsModule"`
	Sponsor        sponsorModule        `json:"sponsorCollaboratorsModule"`
}

type identificationModule struct {
	NCTID      string `json:"nctId"`
	BriefTitle string `json:"briefTitle"`
}

type statusModule struct {
	OverallStatus  string     `json:"overallStatus"`
	StartDateStuct dateStruct `json:"startDateStruct"`
}

type dateStruct struct {
	Date string `json:"date"`
}

type designModule struct {
	Phases         []string       `json:"phases"`
	EnrollmentInfo enrollmentInfo `json:"enrollmentInfo"`
}

type enrollmentInfo struct {
	Count int `json:"count"`
}

type conditionsModule struct {
	Conditions []string `json:"conditions"`
}

type sponsorModule struct {
	LeadSponsor leadSponsor `json:"leadSponsor"`
}

type leadSponsor struct {
	Name string `json:"name"`
}

// SearchTrials queries the registry for one strategy phrase. The page
// size is clamped to the registry's 50-record ceiling.
func (c *Client) SearchTrials(ctx context.Context, query string, pageSize int) ([]dto.TrialRecord, int, error) {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	params := url.Values{}
	params.Set("query.term", query)
	params.Set("pageSize", strconv.Itoa(pageSize))
	params.Set("countTotal", "true")
	params.Set("format", "json")

	endpoint := fmt.Sprintf("%s/studies?%s", c.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("registry request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, 0, fmt.Errorf("registry error (status %d): %s", resp.StatusCode, string(bodyBytes))
	}

	var studiesResp studiesResponse
	if err := json.Unmarshal(bodyBytes, &studiesResp); err != nil {
		return nil, 0, fmt.Errorf("failed to decode response: %w", err)
	}

	records := make([]dto.TrialRecord, 0, len(studiesResp.Studies))
	for _, s := range studiesResp.Studies {
		records = append(records, toRecord(s))
	}
	return records, studiesResp.TotalCount, nil
}

func toRecord(s study) dto.TrialRecord {
	p := s.ProtocolSection
	return dto.TrialRecord{
		NCTID:      p.Identification.NCTID,
		Title:      p.Identification.BriefTitle,
		Status:     p.Status.OverallStatus,
		Phases:     p.Design.Phases,
		Conditions: p.Conditions.Conditions,
		Sponsor:    p.Sponsor.LeadSponsor.Name,
		Enrollment: p.Design.EnrollmentInfo.Count,
		StartDate:  parseStartDate(p.Status.StartDateStuct.Date),
	}
}

// parseStartDate accepts the registry's full and partial date forms.
// A month-only date resolves to the first of the month.
func parseStartDate(raw string) *time.Time {
	if raw == "" {
		return nil
	}
	for _, layout := range []string{"2006-01-02", "2006-01", "2006"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t
		}
	}
	return nil
}
