package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/duplocloud-labs/assistant/internal/types"
)

// queryTimeout bounds how long the client waits for an answer.
const queryTimeout = 30 * time.Second

// Client talks to the assistant API.
type Client struct {
	http *resty.Client
}

// NewClient creates an API client for the given base URL.
func NewClient(baseURL string) *Client {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(queryTimeout).
		SetHeader("Content-Type", "application/json")

	return &Client{http: client}
}

// Query sends a question to the assistant and returns its answer.
func (c *Client) Query(ctx context.Context, text string) (*types.QueryResponse, error) {
	var out types.QueryResponse
	var apiErr types.ErrorResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(types.QueryRequest{Text: text}).
		SetResult(&out).
		SetError(&apiErr).
		Post("/api/query")
	if err != nil {
		return nil, fmt.Errorf("failed to reach the assistant: %w", err)
	}

	if resp.IsError() {
		if apiErr.Detail != "" {
			return nil, fmt.Errorf("assistant error: %s", apiErr.Detail)
		}
		return nil, fmt.Errorf("assistant returned status %d", resp.StatusCode())
	}

	return &out, nil
}
