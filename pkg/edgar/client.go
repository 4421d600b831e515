package edgar

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"abcresearch-be/internal/dto"

	gocache "github.com/patrickmn/go-cache"
)

const (
	defaultBaseURL = "https://efts.sec.gov/LATEST/search-index"

	// Investor-facing form types worth surfacing next to trial results.
	defaultForms = "8-K,10-K,10-Q,S-1,424B"
)

// Client searches SEC EDGAR full-text search for investor filings.
// The SEC requires a descriptive User-Agent on every request and
// throttles aggressively, so identical queries are served from an
// in-process cache for a few minutes.
type Client struct {
	baseURL   string
	userAgent string
	cache     *gocache.Cache
	client    *http.Client
}

func NewClient(baseURL, userAgent string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL:   baseURL,
		userAgent: userAgent,
		cache:     gocache.New(5*time.Minute, 10*time.Minute),
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// --- EDGAR full-text search response shapes ---

type searchResponse struct {
	Hits struct {
		Hits []hit `json:"hits"`
	} `json:"hits"`
}

type hit struct {
	ID     string `json:"_id"`
	Source struct {
		DisplayNames []string `json:"display_names"`
		FileType     string   `json:"file_type"`
		FileDate     string   `json:"file_date"`
	} `json:"_source"`
}

func (c *Client) SearchFilings(ctx context.Context, query string, maxResults int) ([]dto.Filing, error) {
	if maxResults <= 0 {
		maxResults = 10
	}

	cacheKey := fmt.Sprintf("%s|%d", query, maxResults)
	if cached, ok := c.cache.Get(cacheKey); ok {
		return cached.([]dto.Filing), nil
	}

	params := url.Values{}
	params.Set("q", fmt.Sprintf("%q", query))
	params.Set("forms", defaultForms)

	reqURL := fmt.Sprintf("%s?%s", c.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("edgar request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("edgar error (status %d): %s", resp.StatusCode, string(bodyBytes))
	}

	var searchResp searchResponse
	if err := json.Unmarshal(bodyBytes, &searchResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	filings := make([]dto.Filing, 0, maxResults)
	for _, h := range searchResp.Hits.Hits {
		if len(filings) >= maxResults {
			break
		}
		filings = append(filings, toFiling(h))
	}

	c.cache.Set(cacheKey, filings, gocache.DefaultExpiration)
	return filings, nil
}

func toFiling(h hit) dto.Filing {
	// The hit id is "<accession>:<primary document>".
	accession := h.ID
	document := ""
	if idx := strings.Index(h.ID, ":"); idx >= 0 {
		accession = h.ID[:idx]
		document = h.ID[idx+1:]
	}

	company := ""
	if len(h.Source.DisplayNames) > 0 {
		company = h.Source.DisplayNames[0]
	}

	return dto.Filing{
		AccessionNo: accession,
		FormType:    h.Source.FileType,
		Company:     company,
		FiledAt:     h.Source.FileDate,
		URL:         fmt.Sprintf("https://www.sec.gov/Archives/edgar/data/%s/%s", strings.ReplaceAll(accession, "-", ""), document),
	}
}
