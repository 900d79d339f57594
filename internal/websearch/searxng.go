package websearch

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// maxResults bounds how many search hits are passed back to the agent.
const maxResults = 5

// Result is a single web search hit.
type Result struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Content string `json:"content"`
}

type searchResponse struct {
	Results []Result `json:"results"`
}

// Client queries a SearXNG instance over its JSON API.
type Client struct {
	http    *resty.Client
	baseURL string
}

// NewClient creates a web search client for the given SearXNG base URL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	client := resty.New().
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	return &Client{
		http:    client,
		baseURL: baseURL,
	}
}

// Search runs a query against the search engine and returns ranked results.
func (c *Client) Search(ctx context.Context, query string) ([]Result, error) {
	var parsed searchResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"q":      query,
			"format": "json",
		}).
		SetResult(&parsed).
		Get(c.baseURL + "/search")
	if err != nil {
		return nil, fmt.Errorf("failed to search the web: %w", err)
	}

	if resp.IsError() {
		return nil, fmt.Errorf("search engine returned status %d", resp.StatusCode())
	}

	results := parsed.Results
	if len(results) > maxResults {
		results = results[:maxResults]
	}

	return results, nil
}
