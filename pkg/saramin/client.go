// Package saramin is the HTTP client for the external scraping/matching
// services. The endpoints are opaque collaborators returning loosely-typed
// JSON; callers fall back to the bundled payloads in fallback.go whenever a
// request fails, so the dashboard stays populated offline.
package saramin

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultTimeout = 15 * time.Second

// Config configures the client. HTTPClient is injectable for tests.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient instantiates a client against the scraping service.
func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("saramin: base URL is required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}

	return &Client{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		httpClient: httpClient,
	}, nil
}

// AllJobs fetches the full scraped posting list.
func (c *Client) AllJobs(ctx context.Context) (*AllJobsResponse, error) {
	var out AllJobsResponse
	if err := c.get(ctx, "/all-jobs", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RecommendedJobs fetches the match-scored recommendation list.
func (c *Client) RecommendedJobs(ctx context.Context) (*RecommendedResponse, error) {
	var out RecommendedResponse
	if err := c.get(ctx, "/recommended-jobs", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RunAutoMatching triggers the remote matching run and returns its outcome.
func (c *Client) RunAutoMatching(ctx context.Context) (*MatchingResponse, error) {
	var out MatchingResponse
	if err := c.get(ctx, "/run-auto-job-matching", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ApplySaraminJobs triggers the remote bulk-apply run.
func (c *Client) ApplySaraminJobs(ctx context.Context) (*ApplyResponse, error) {
	var out ApplyResponse
	if err := c.get(ctx, "/apply-saramin-jobs", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TriggerScrape asks the service to start a fresh scraping pass.
func (c *Client) TriggerScrape(ctx context.Context) (*ScrapeResponse, error) {
	var out ScrapeResponse
	if err := c.get(ctx, "/test", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("saramin: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("saramin: request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("saramin: API error (%d): %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("saramin: decode response: %w", err)
	}
	return nil
}
