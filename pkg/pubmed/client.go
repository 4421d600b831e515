package pubmed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"abcresearch-be/internal/dto"

	"golang.org/x/time/rate"
)

const (
	defaultBaseURL = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils"
	maxResults     = 30

	// Appended to every strategy query so only clinical-trial-type
	// publications come back.
	trialFilter = "AND clinical trial[pt]"
)

// Client searches the PubMed literature index through the E-utilities
// API. NCBI throttles unkeyed clients to 3 requests per second, so the
// limiter is mandatory and owned by the caller rather than hidden in
// package state.
type Client struct {
	baseURL string
	apiKey  string
	limiter *rate.Limiter
	client  *http.Client
}

func NewClient(baseURL, apiKey string, limiter *rate.Limiter) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		limiter: limiter,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// NewLimiter returns the limiter NCBI expects: 3 req/s without an API
// key, 10 req/s with one.
func NewLimiter(hasAPIKey bool) *rate.Limiter {
	if hasAPIKey {
		return rate.NewLimiter(rate.Limit(10), 10)
	}
	return rate.NewLimiter(rate.Limit(3), 3)
}

// --- E-utilities response shapes ---

type esearchResponse struct {
	ESearchResult struct {
		IdList []string `json:"idlist"`
	} `json:"esearchresult"`
}

type esummaryResponse struct {
	Result map[string]json.RawMessage `json:"result"`
}

type summaryDoc struct {
	UID             string `json:"uid"`
	Title           string `json:"title"`
	FullJournalName string `json:"fulljournalname"`
	PubDate         string `json:"pubdate"`
	Authors         []struct {
		Name string `json:"name"`
	} `json:"authors"`
}

// SearchPapers runs esearch then esummary for one strategy phrase.
// Results are bounded at 30 per call.
func (c *Client) SearchPapers(ctx context.Context, query string, max int) ([]dto.PaperRecord, error) {
	if max <= 0 || max > maxResults {
		max = maxResults
	}

	ids, err := c.search(ctx, query, max)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []dto.PaperRecord{}, nil
	}

	return c.summaries(ctx, ids)
}

func (c *Client) search(ctx context.Context, query string, max int) ([]string, error) {
	params := url.Values{}
	params.Set("db", "pubmed")
	params.Set("term", fmt.Sprintf("(%s) %s", query, trialFilter))
	params.Set("retmode", "json")
	params.Set("retmax", strconv.Itoa(max))
	if c.apiKey != "" {
		params.Set("api_key", c.apiKey)
	}

	var esearch esearchResponse
	if err := c.get(ctx, "esearch.fcgi", params, &esearch); err != nil {
		return nil, err
	}
	return esearch.ESearchResult.IdList, nil
}

func (c *Client) summaries(ctx context.Context, ids []string) ([]dto.PaperRecord, error) {
	params := url.Values{}
	params.Set("db", "pubmed")
	params.Set("id", strings.Join(ids, ","))
	params.Set("retmode", "json")
	if c.apiKey != "" {
		params.Set("api_key", c.apiKey)
	}

	var esummary esummaryResponse
	if err := c.get(ctx, "esummary.fcgi", params, &esummary); err != nil {
		return nil, err
	}

	// The result map is keyed by UID plus a "uids" index entry; walk the
	// id list so output order matches search relevance order.
	records := make([]dto.PaperRecord, 0, len(ids))
	for _, id := range ids {
		raw, ok := esummary.Result[id]
		if !ok {
			continue
		}
		var doc summaryDoc
		if err := json.Unmarshal(raw, &doc); err != nil {
			continue
		}
		authors := make([]string, 0, len(doc.Authors))
		for _, a := range doc.Authors {
			authors = append(authors, a.Name)
		}
		records = append(records, dto.PaperRecord{
			PMID:    id,
			Title:   doc.Title,
			Journal: doc.FullJournalName,
			PubDate: doc.PubDate,
			Authors: authors,
		})
	}
	return records, nil
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values, out interface{}) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limiter wait: %w", err)
		}
	}

	reqURL := fmt.Sprintf("%s/%s?%s", c.baseURL, endpoint, params.Encode())
	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("pubmed request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("pubmed error (status %d): %s", resp.StatusCode, string(bodyBytes))
	}

	if err := json.Unmarshal(bodyBytes, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
