package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/packages/param"
	"github.com/openai/openai-go/v2/shared"
)

const groundedSystemPrompt = `You are an assistant that answers questions about DuploCloud using only the provided documentation excerpts.
Answer precisely and stay within the given context.
If the context does not contain the information needed to answer, reply with an empty answer.`

const groundedAnswerTemplate = `Use the documentation excerpts below to answer the question.

Documentation:
{context}

Question: {question}

Give a precise answer based only on the documentation above.`

// GenerateAnswer generates an answer grounded in the given documentation context.
func (c *Client) GenerateAnswer(ctx context.Context, contextText, question string) (string, error) {
	answerPrompt := strings.ReplaceAll(groundedAnswerTemplate, "{context}", contextText)
	answerPrompt = strings.ReplaceAll(answerPrompt, "{question}", question)

	res, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: shared.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(groundedSystemPrompt),
			openai.UserMessage(answerPrompt),
		},
		Temperature: param.Opt[float64]{Value: 0},
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate completion: %w", err)
	}

	if len(res.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}

	return strings.TrimSpace(res.Choices[0].Message.Content), nil
}

// Chat performs a single tool-calling completion step. The returned message
// either carries final content or tool calls for the caller to dispatch.
func (c *Client) Chat(ctx context.Context, messages []openai.ChatCompletionMessageParamUnion, tools []openai.ChatCompletionToolUnionParam) (*openai.ChatCompletionMessage, error) {
	res, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       shared.ChatModel(c.model),
		Messages:    messages,
		Tools:       tools,
		Temperature: param.Opt[float64]{Value: 0},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate completion: %w", err)
	}

	if len(res.Choices) == 0 {
		return nil, fmt.Errorf("no choices in response")
	}

	return &res.Choices[0].Message, nil
}

// GenerateEmbedding generates an embedding for the given text
func (c *Client) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	input := openai.EmbeddingNewParamsInputUnion{
		OfString: param.Opt[string]{Value: text},
	}
	res, err := c.client.Embeddings.New(ctx, openai.EmbeddingNewParams{
		Model: openai.EmbeddingModel(c.embedModel),
		Input: input,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate embedding: %w", err)
	}

	if len(res.Data) == 0 {
		return nil, fmt.Errorf("no embedding data in response")
	}

	// Convert []float64 to []float32 for Qdrant
	embedding := make([]float32, len(res.Data[0].Embedding))
	for i, v := range res.Data[0].Embedding {
		embedding[i] = float32(v)
	}

	return embedding, nil
}
