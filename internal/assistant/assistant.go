package assistant

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

//go:generate mockgen -source=assistant.go -destination=mock_assistant.go -package=assistant

// DocumentationAnswerer defines the documentation-grounded answer path
type DocumentationAnswerer interface {
	Answer(ctx context.Context, query string) (string, error)
}

// AgentRunner defines the tool-using agent path
type AgentRunner interface {
	Run(ctx context.Context, query string) (string, error)
}

// Assistant routes a query through the documentation path first, falls back to
// the tool-using agent, and always returns a well-formed Result. Immutable
// after construction; safe for concurrent use.
type Assistant struct {
	answerer     DocumentationAnswerer
	agent        AgentRunner
	docsTimeout  time.Duration
	agentTimeout time.Duration
}

// New creates the assistant orchestrator. Either path may be nil, in which
// case it is skipped. Non-positive timeouts disable the per-path deadline.
func New(answerer DocumentationAnswerer, agent AgentRunner, docsTimeout, agentTimeout time.Duration) *Assistant {
	return &Assistant{
		answerer:     answerer,
		agent:        agent,
		docsTimeout:  docsTimeout,
		agentTimeout: agentTimeout,
	}
}

// Respond answers the query. It never returns an error: every failure inside a
// path is logged and causes fallthrough, ending at the fixed apology.
func (a *Assistant) Respond(ctx context.Context, query string) Result {
	if a.answerer != nil {
		answer, err := a.tryDocs(ctx, query)
		switch {
		case err == nil:
			return Result{Answer: answer, Source: SourceDocumentation, Confidence: ConfidenceHigh}
		case errors.Is(err, ErrNoAnswer):
			slog.Info("No documentation answer, trying agent", "query", query)
		default:
			slog.Error("Documentation path failed", "error", err, "query", query)
		}
	}

	if a.agent != nil {
		answer, err := a.tryAgent(ctx, query)
		if err == nil {
			return Result{Answer: answer, Source: SourceWebSearch, Confidence: ConfidenceMedium}
		}
		slog.Error("Agent path failed", "error", err, "query", query)
	}

	return Result{Answer: Apology, Confidence: ConfidenceLow}
}

func (a *Assistant) tryDocs(ctx context.Context, query string) (string, error) {
	if a.docsTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.docsTimeout)
		defer cancel()
	}
	return a.answerer.Answer(ctx, query)
}

func (a *Assistant) tryAgent(ctx context.Context, query string) (string, error) {
	if a.agentTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.agentTimeout)
		defer cancel()
	}
	return a.agent.Run(ctx, query)
}
