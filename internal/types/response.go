package types

// QueryRequest is the body of POST /api/query.
type QueryRequest struct {
	Text string `json:"text"`
}

// QueryResponse is the canonical answer shape returned by the API.
// Answer is always non-empty; Source is set only when a grounded path
// (documentation or web search) produced the answer.
type QueryResponse struct {
	Answer     string `json:"answer"`
	Source     string `json:"source,omitempty"`
	Confidence string `json:"confidence"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}

// ErrorResponse is returned on non-200 statuses.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
