package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/duplocloud-labs/assistant/internal/assistant"
	"github.com/duplocloud-labs/assistant/internal/types"
)

//go:generate mockgen -source=handlers.go -destination=mock_queryassistant.go -package=http

// QueryAssistant defines the orchestrator surface the API depends on
type QueryAssistant interface {
	Respond(ctx context.Context, query string) assistant.Result
}

type Handler struct {
	assistant QueryAssistant
}

// NewHandlers initializes handlers with dependencies
func NewHandlers(queryAssistant QueryAssistant) *Handler {
	return &Handler{
		assistant: queryAssistant,
	}
}

// QueryHandler serves POST /api/query. The orchestrator always returns a
// well-formed result, so this path answers 200 even when both answer paths
// failed; 500 is reserved for a missing orchestrator.
func (h *Handler) QueryHandler(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var req types.QueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Text == "" {
		errorResponse(w, http.StatusBadRequest, "text is required")
		return
	}

	if h.assistant == nil {
		errorResponse(w, http.StatusInternalServerError, "assistant not initialized")
		return
	}

	result := h.assistant.Respond(r.Context(), req.Text)

	response := types.QueryResponse{
		Answer:     result.Answer,
		Source:     result.Source,
		Confidence: string(result.Confidence),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		slog.Error("Error encoding response", "error", err)
	}
}

// HealthHandler serves GET /health.
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(types.HealthResponse{Status: "healthy"}); err != nil {
		slog.Error("Error encoding health response", "error", err)
	}
}

func errorResponse(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(types.ErrorResponse{Detail: detail}); err != nil {
		slog.Error("Error encoding error response", "error", err, "status", status)
	}
}
