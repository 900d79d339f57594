package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/duplocloud-labs/assistant/internal/rag"
)

// ErrNoAnswer reports that the documentation could not answer the query. It is
// a routing signal, not a failure: the orchestrator falls through to the agent.
var ErrNoAnswer = errors.New("no documentation answer")

//go:generate mockgen -source=answerer.go -destination=mock_answerer.go -package=assistant

// Retriever defines the interface for knowledge base search
type Retriever interface {
	Search(ctx context.Context, query string) ([]rag.Passage, error)
}

// AnswerGenerator defines the interface for grounded answer generation
type AnswerGenerator interface {
	GenerateAnswer(ctx context.Context, contextText, question string) (string, error)
}

// DocsAnswerer answers queries strictly from retrieved documentation passages.
type DocsAnswerer struct {
	retriever Retriever
	llm       AnswerGenerator
}

// NewDocsAnswerer creates a documentation-grounded answerer
func NewDocsAnswerer(retriever Retriever, llm AnswerGenerator) *DocsAnswerer {
	return &DocsAnswerer{
		retriever: retriever,
		llm:       llm,
	}
}

// Answer retrieves the top passages for the query and asks the model to answer
// using only the retrieved text. Returns ErrNoAnswer when retrieval yields
// nothing usable or the model declines; other errors propagate.
func (a *DocsAnswerer) Answer(ctx context.Context, query string) (string, error) {
	passages, err := a.retriever.Search(ctx, query)
	if err != nil {
		return "", fmt.Errorf("failed to retrieve passages: %w", err)
	}

	if len(passages) == 0 {
		return "", ErrNoAnswer
	}

	var contextBuilder strings.Builder
	for i, passage := range passages {
		fmt.Fprintf(&contextBuilder, "[Document %d: %s, Score: %.4f]\n%s\n\n", i+1, passage.Source, passage.Score, passage.Text)
	}

	answer, err := a.llm.GenerateAnswer(ctx, strings.TrimSpace(contextBuilder.String()), query)
	if err != nil {
		return "", fmt.Errorf("failed to generate answer: %w", err)
	}

	if answer == "" {
		return "", ErrNoAnswer
	}

	return answer, nil
}
