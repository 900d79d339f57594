package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/duplocloud-labs/assistant/internal/assistant"
	"github.com/duplocloud-labs/assistant/internal/types"
)

func TestHandler_QueryHandler(t *testing.T) {
	tests := []struct {
		name        string
		requestBody interface{}
		nilAssist   bool
		setupMocks  func(*MockQueryAssistant)
		wantStatus  int
		wantBody    *types.QueryResponse
	}{
		{
			name:        "documentation answer",
			requestBody: types.QueryRequest{Text: "What is a DuploCloud tenant?"},
			setupMocks: func(m *MockQueryAssistant) {
				m.EXPECT().
					Respond(gomock.Any(), "What is a DuploCloud tenant?").
					Return(assistant.Result{
						Answer:     "A tenant is an isolated environment.",
						Source:     assistant.SourceDocumentation,
						Confidence: assistant.ConfidenceHigh,
					})
			},
			wantStatus: http.StatusOK,
			wantBody: &types.QueryResponse{
				Answer:     "A tenant is an isolated environment.",
				Source:     "documentation",
				Confidence: "high",
			},
		},
		{
			name:        "apology fallback is still 200",
			requestBody: types.QueryRequest{Text: "unanswerable"},
			setupMocks: func(m *MockQueryAssistant) {
				m.EXPECT().
					Respond(gomock.Any(), "unanswerable").
					Return(assistant.Result{
						Answer:     assistant.Apology,
						Confidence: assistant.ConfidenceLow,
					})
			},
			wantStatus: http.StatusOK,
			wantBody: &types.QueryResponse{
				Answer:     assistant.Apology,
				Confidence: "low",
			},
		},
		{
			name:        "invalid JSON",
			requestBody: "not json",
			setupMocks:  func(*MockQueryAssistant) {},
			wantStatus:  http.StatusBadRequest,
		},
		{
			name:        "empty text",
			requestBody: types.QueryRequest{Text: ""},
			setupMocks:  func(*MockQueryAssistant) {},
			wantStatus:  http.StatusBadRequest,
		},
		{
			name:        "missing assistant is the one 500",
			requestBody: types.QueryRequest{Text: "query"},
			nilAssist:   true,
			setupMocks:  func(*MockQueryAssistant) {},
			wantStatus:  http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockAssistant := NewMockQueryAssistant(ctrl)
			tt.setupMocks(mockAssistant)

			var handler *Handler
			if tt.nilAssist {
				handler = NewHandlers(nil)
			} else {
				handler = NewHandlers(mockAssistant)
			}

			var body []byte
			var err error
			if str, ok := tt.requestBody.(string); ok {
				body = []byte(str)
			} else {
				body, err = json.Marshal(tt.requestBody)
				if err != nil {
					t.Fatalf("Failed to marshal request body: %v", err)
				}
			}

			req := httptest.NewRequest(http.MethodPost, "/api/query", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			handler.QueryHandler(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("QueryHandler() status = %d, want %d", w.Code, tt.wantStatus)
			}

			if tt.wantBody != nil {
				var got types.QueryResponse
				if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
					t.Fatalf("QueryHandler() invalid JSON response: %v", err)
				}
				if got != *tt.wantBody {
					t.Errorf("QueryHandler() body = %+v, want %+v", got, *tt.wantBody)
				}
			}

			if tt.wantStatus != http.StatusOK {
				var errResp types.ErrorResponse
				if err := json.Unmarshal(w.Body.Bytes(), &errResp); err != nil {
					t.Fatalf("QueryHandler() invalid error JSON: %v", err)
				}
				if errResp.Detail == "" {
					t.Error("QueryHandler() error response missing detail")
				}
			}
		})
	}
}

func TestHealthHandler(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	HealthHandler(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("HealthHandler() status = %d, want %d", w.Code, http.StatusOK)
	}

	var response types.HealthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("HealthHandler() invalid JSON: %v", err)
	}
	if response.Status != "healthy" {
		t.Errorf("HealthHandler() status = %q, want %q", response.Status, "healthy")
	}
}

func TestRouter_Routes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAssistant := NewMockQueryAssistant(ctrl)
	mockAssistant.EXPECT().
		Respond(gomock.Any(), "routed query").
		Return(assistant.Result{Answer: "routed answer", Confidence: assistant.ConfidenceHigh, Source: "documentation"})

	router := NewRouter(NewHandlers(mockAssistant))
	server := httptest.NewServer(router)
	defer server.Close()

	// Health is served regardless of orchestrator state
	resp, err := http.Get(server.URL + "/health")
	if err != nil {
		t.Fatalf("GET /health failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("GET /health status = %d, want %d", resp.StatusCode, http.StatusOK)
	}

	body, _ := json.Marshal(types.QueryRequest{Text: "routed query"})
	resp, err = http.Post(server.URL+"/api/query", "application/json", bytes.NewBuffer(body))
	if err != nil {
		t.Fatalf("POST /api/query failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("POST /api/query status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
}
