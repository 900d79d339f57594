package assistant

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
)

func TestAssistant_Respond(t *testing.T) {
	tests := []struct {
		name       string
		setupMocks func(*MockDocumentationAnswerer, *MockAgentRunner)
		want       Result
	}{
		{
			name: "documentation answer wins",
			setupMocks: func(answerer *MockDocumentationAnswerer, agent *MockAgentRunner) {
				answerer.EXPECT().
					Answer(gomock.Any(), "What is a DuploCloud tenant?").
					Return("A tenant is an isolated environment.", nil)
			},
			want: Result{
				Answer:     "A tenant is an isolated environment.",
				Source:     SourceDocumentation,
				Confidence: ConfidenceHigh,
			},
		},
		{
			name: "no documentation answer falls through to agent",
			setupMocks: func(answerer *MockDocumentationAnswerer, agent *MockAgentRunner) {
				answerer.EXPECT().Answer(gomock.Any(), gomock.Any()).Return("", ErrNoAnswer)
				agent.EXPECT().
					Run(gomock.Any(), gomock.Any()).
					Return("It is sunny in Paris today (example.com).", nil)
			},
			want: Result{
				Answer:     "It is sunny in Paris today (example.com).",
				Source:     SourceWebSearch,
				Confidence: ConfidenceMedium,
			},
		},
		{
			name: "documentation failure is recovered, agent answers",
			setupMocks: func(answerer *MockDocumentationAnswerer, agent *MockAgentRunner) {
				answerer.EXPECT().Answer(gomock.Any(), gomock.Any()).Return("", errors.New("qdrant unreachable"))
				agent.EXPECT().Run(gomock.Any(), gomock.Any()).Return("Answer from the web.", nil)
			},
			want: Result{
				Answer:     "Answer from the web.",
				Source:     SourceWebSearch,
				Confidence: ConfidenceMedium,
			},
		},
		{
			name: "both paths fail yields the fixed apology",
			setupMocks: func(answerer *MockDocumentationAnswerer, agent *MockAgentRunner) {
				answerer.EXPECT().Answer(gomock.Any(), gomock.Any()).Return("", ErrNoAnswer)
				agent.EXPECT().Run(gomock.Any(), gomock.Any()).Return("", ErrStepLimit)
			},
			want: Result{
				Answer:     Apology,
				Source:     "",
				Confidence: ConfidenceLow,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockAnswerer := NewMockDocumentationAnswerer(ctrl)
			mockAgent := NewMockAgentRunner(ctrl)
			tt.setupMocks(mockAnswerer, mockAgent)

			a := New(mockAnswerer, mockAgent, 30*time.Second, 90*time.Second)
			got := a.Respond(context.Background(), "What is a DuploCloud tenant?")

			if got != tt.want {
				t.Errorf("Respond() = %+v, want %+v", got, tt.want)
			}
			if got.Answer == "" {
				t.Error("Respond() returned an empty answer")
			}
		})
	}
}

func TestAssistant_Respond_NoKnowledgeBase(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAgent := NewMockAgentRunner(ctrl)
	mockAgent.EXPECT().Run(gomock.Any(), gomock.Any()).Return("Agent-only answer.", nil)

	a := New(nil, mockAgent, 0, 0)
	got := a.Respond(context.Background(), "anything")

	if got.Confidence != ConfidenceMedium {
		t.Errorf("Respond() confidence = %q, want %q", got.Confidence, ConfidenceMedium)
	}
	if got.Answer != "Agent-only answer." {
		t.Errorf("Respond() answer = %q", got.Answer)
	}
}

func TestAssistant_Respond_NoPathsConfigured(t *testing.T) {
	a := New(nil, nil, 0, 0)
	got := a.Respond(context.Background(), "anything")

	want := Result{Answer: Apology, Confidence: ConfidenceLow}
	if got != want {
		t.Errorf("Respond() = %+v, want %+v", got, want)
	}
}

func TestAssistant_Respond_AppliesPathTimeouts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAnswerer := NewMockDocumentationAnswerer(ctrl)
	mockAnswerer.EXPECT().
		Answer(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string) (string, error) {
			if _, ok := ctx.Deadline(); !ok {
				t.Error("documentation path context has no deadline")
			}
			return "answer", nil
		})

	a := New(mockAnswerer, nil, 30*time.Second, 90*time.Second)
	a.Respond(context.Background(), "query")
}
