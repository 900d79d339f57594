package assistant

import (
	"context"
	"fmt"
	"strings"

	"github.com/duplocloud-labs/assistant/internal/websearch"
)

//go:generate mockgen -source=tools.go -destination=mock_tools.go -package=assistant

// Tool is a capability the agent can invoke by name. The tool set is fixed at
// assistant initialization and never changes per request.
type Tool interface {
	Name() string
	Description() string
	Invoke(ctx context.Context, query string) (string, error)
}

// WebSearcher defines the interface for web search
type WebSearcher interface {
	Search(ctx context.Context, query string) ([]websearch.Result, error)
}

// DocSearchTool searches the documentation knowledge base.
type DocSearchTool struct {
	retriever Retriever
}

// NewDocSearchTool creates a documentation search tool
func NewDocSearchTool(retriever Retriever) *DocSearchTool {
	return &DocSearchTool{retriever: retriever}
}

func (t *DocSearchTool) Name() string { return "search_docs" }

func (t *DocSearchTool) Description() string {
	return "Search the DuploCloud documentation for passages relevant to a query."
}

// Invoke returns the matching passages with their source document names.
func (t *DocSearchTool) Invoke(ctx context.Context, query string) (string, error) {
	passages, err := t.retriever.Search(ctx, query)
	if err != nil {
		return "", fmt.Errorf("failed to search documentation: %w", err)
	}

	if len(passages) == 0 {
		return "No matching documentation found.", nil
	}

	var b strings.Builder
	for _, passage := range passages {
		fmt.Fprintf(&b, "[%s]\n%s\n\n", passage.Source, passage.Text)
	}
	return strings.TrimSpace(b.String()), nil
}

// WebSearchTool searches the web for current events or general knowledge.
type WebSearchTool struct {
	searcher WebSearcher
}

// NewWebSearchTool creates a web search tool
func NewWebSearchTool(searcher WebSearcher) *WebSearchTool {
	return &WebSearchTool{searcher: searcher}
}

func (t *WebSearchTool) Name() string { return "search_web" }

func (t *WebSearchTool) Description() string {
	return "Search the web for current events or general knowledge."
}

// Invoke returns result snippets with their titles and links so the agent can
// cite sources.
func (t *WebSearchTool) Invoke(ctx context.Context, query string) (string, error) {
	results, err := t.searcher.Search(ctx, query)
	if err != nil {
		return "", fmt.Errorf("failed to search the web: %w", err)
	}

	if len(results) == 0 {
		return "No web results found.", nil
	}

	var b strings.Builder
	for _, result := range results {
		fmt.Fprintf(&b, "- %s (%s): %s\n", result.Title, result.URL, result.Content)
	}
	return strings.TrimSpace(b.String()), nil
}
