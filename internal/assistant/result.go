package assistant

// Confidence is a coarse label for which path produced an answer, not a
// statistical probability.
type Confidence string

const (
	// ConfidenceHigh means the answer came from the documentation.
	ConfidenceHigh Confidence = "high"
	// ConfidenceMedium means the answer came from the tool-using agent.
	ConfidenceMedium Confidence = "medium"
	// ConfidenceLow means both paths failed and the fixed apology was returned.
	ConfidenceLow Confidence = "low"
)

// Source descriptors for grounded answers.
const (
	SourceDocumentation = "documentation"
	SourceWebSearch     = "web search"
)

// Apology is the fixed fallback answer returned when no path succeeds.
const Apology = "I'm sorry, I couldn't find a good answer to your question."

// Result is the canonical answer shape. Answer is always non-empty; Source is
// empty only for the apology fallback.
type Result struct {
	Answer     string
	Source     string
	Confidence Confidence
}
