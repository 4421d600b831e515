package marker

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

const defaultBaseURL = "https://www.datalab.to/api/v1/marker"

// Client submits PDFs to the Datalab Marker API and polls for results.
// The API is asynchronous: submission returns a check URL which is
// polled until the job reports complete.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		client: &http.Client{
			Timeout: 5 * time.Minute,
		},
	}
}

type SubmitResult struct {
	RequestID string `json:"request_id"`
	CheckURL  string `json:"request_check_url"`
	Success   bool   `json:"success"`
	Error     string `json:"error"`
}

type Result struct {
	Status   string          `json:"status"`
	Success  bool            `json:"success"`
	Markdown string          `json:"markdown"`
	JSON     json.RawMessage `json:"json"`
	Error    string          `json:"error"`
}

const (
	StatusProcessing = "processing"
	StatusComplete   = "complete"
)

// Submit uploads a PDF for conversion to markdown. The returned check
// URL is polled with Check or Wait.
func (c *Client) Submit(ctx context.Context, filename string, file io.Reader) (*SubmitResult, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("failed to copy file: %w", err)
	}

	fields := map[string]string{
		"output_format": "markdown",
		"force_ocr":     "false",
		"paginate":      "false",
	}
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return nil, fmt.Errorf("failed to write field %s: %w", key, err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to close multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL, &body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("X-Api-Key", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("marker submission failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var submitResult SubmitResult
	if err := json.Unmarshal(bodyBytes, &submitResult); err != nil {
		return nil, fmt.Errorf("unexpected non-JSON response (status %d): %s", resp.StatusCode, string(bodyBytes))
	}

	if resp.StatusCode >= 400 || !submitResult.Success {
		return nil, fmt.Errorf("marker submission failed: %s", submitResult.Error)
	}
	if submitResult.CheckURL == "" {
		return nil, fmt.Errorf("marker response missing request_check_url")
	}
	return &submitResult, nil
}

// Check polls the job once.
func (c *Client) Check(ctx context.Context, checkURL string) (*Result, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", checkURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("X-Api-Key", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("marker poll failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var result Result
	if err := json.Unmarshal(bodyBytes, &result); err != nil {
		return nil, fmt.Errorf("unexpected non-JSON poll response (status %d): %s", resp.StatusCode, string(bodyBytes))
	}
	return &result, nil
}

// Wait polls until the job completes or the context expires.
func (c *Client) Wait(ctx context.Context, checkURL string, interval time.Duration) (*Result, error) {
	if interval <= 0 {
		interval = 3 * time.Second
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("timed out waiting for marker job: %w", ctx.Err())
		case <-ticker.C:
		}

		result, err := c.Check(ctx, checkURL)
		if err != nil {
			return nil, err
		}

		switch result.Status {
		case StatusComplete:
			if !result.Success {
				return nil, fmt.Errorf("marker job failed: %s", result.Error)
			}
			return result, nil
		case StatusProcessing, "":
			// keep polling
		default:
			return nil, fmt.Errorf("unexpected status from marker: %s", result.Status)
		}
	}
}
