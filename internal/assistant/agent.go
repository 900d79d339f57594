package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/shared"
)

// ErrStepLimit reports that the agent exhausted its step limit without
// producing a final answer. The orchestrator maps it to the fixed apology.
var ErrStepLimit = errors.New("agent step limit reached")

const agentSystemPrompt = `You are a helpful assistant that answers questions using the available tools.

For information about DuploCloud, search the documentation with search_docs before using search_web.
Use search_web when the documentation does not have the answer, or when the question needs current events or general knowledge.
When the answer comes from a web search, cite the link.
List the source of your answer (document name, web link) at the end.`

//go:generate mockgen -source=agent.go -destination=mock_chatmodel.go -package=assistant

// ChatModel performs a single tool-calling completion step.
type ChatModel interface {
	Chat(ctx context.Context, messages []openai.ChatCompletionMessageParamUnion, tools []openai.ChatCompletionToolUnionParam) (*openai.ChatCompletionMessage, error)
}

// Agent iteratively invokes tools until the model emits a final answer or the
// step limit is reached. The loop is sequential: each step depends on the
// previous tool results.
type Agent struct {
	model    ChatModel
	tools    []Tool
	byName   map[string]Tool
	maxSteps int
}

// NewAgent creates an agent with a fixed tool set and an explicit step bound.
func NewAgent(model ChatModel, tools []Tool, maxSteps int) *Agent {
	byName := make(map[string]Tool, len(tools))
	for _, tool := range tools {
		byName[tool.Name()] = tool
	}

	return &Agent{
		model:    model,
		tools:    tools,
		byName:   byName,
		maxSteps: maxSteps,
	}
}

// Run answers the query through the tool-calling loop.
func (a *Agent) Run(ctx context.Context, query string) (string, error) {
	messages := []openai.ChatCompletionMessageParamUnion{
		openai.SystemMessage(agentSystemPrompt),
		openai.UserMessage(query),
	}
	toolParams := a.toolParams()

	for step := 0; step < a.maxSteps; step++ {
		msg, err := a.model.Chat(ctx, messages, toolParams)
		if err != nil {
			return "", fmt.Errorf("failed agent step %d: %w", step, err)
		}

		if len(msg.ToolCalls) == 0 {
			answer := strings.TrimSpace(msg.Content)
			if answer == "" {
				return "", fmt.Errorf("agent produced an empty answer at step %d", step)
			}
			return answer, nil
		}

		messages = append(messages, msg.ToParam())
		for _, call := range msg.ToolCalls {
			output := a.invokeTool(ctx, call.Function.Name, call.Function.Arguments)
			messages = append(messages, openai.ToolMessage(output, call.ID))
		}
	}

	return "", ErrStepLimit
}

// invokeTool dispatches a tool call by name. Failures are reported back to the
// model as tool output so it can recover or try another tool.
func (a *Agent) invokeTool(ctx context.Context, name, arguments string) string {
	tool, ok := a.byName[name]
	if !ok {
		return fmt.Sprintf("unknown tool %q", name)
	}

	var args struct {
		Query string `json:"query"`
	}
	if err := json.Unmarshal([]byte(arguments), &args); err != nil {
		return fmt.Sprintf("invalid arguments for %s: %v", name, err)
	}

	slog.Info("Agent invoking tool", "tool", name, "query", args.Query)

	output, err := tool.Invoke(ctx, args.Query)
	if err != nil {
		slog.Error("Tool invocation failed", "tool", name, "error", err)
		return fmt.Sprintf("tool %s failed: %v", name, err)
	}
	return output
}

func (a *Agent) toolParams() []openai.ChatCompletionToolUnionParam {
	params := make([]openai.ChatCompletionToolUnionParam, 0, len(a.tools))
	for _, tool := range a.tools {
		params = append(params, openai.ChatCompletionFunctionTool(shared.FunctionDefinitionParam{
			Name:        tool.Name(),
			Description: openai.String(tool.Description()),
			Parameters: openai.FunctionParameters{
				"type": "object",
				"properties": map[string]any{
					"query": map[string]any{
						"type":        "string",
						"description": "The search query",
					},
				},
				"required": []string{"query"},
			},
		}))
	}
	return params
}
