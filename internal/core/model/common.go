package model

// Token estimation heuristics. These approximate token counts from message
// text; they are estimates, not tokenizer output.
const (
	// CharsPerToken is the documented ~4 characters per token ratio.
	CharsPerToken = 4
	// TokensPerToolCall is the flat overhead charged per tool call.
	TokensPerToolCall = 10
)

// CostPerToken is the flat blended rate applied after aggregation. There is
// no per-model pricing in the session-derived path.
const CostPerToken = 0.000001

// ModelLabel is the synthetic model name used for session-derived stats;
// session transcripts carry no per-model attribution.
const ModelLabel = "copilot"

// Export envelope identity.
const (
	ProducerName  = "copilot-status"
	FormatVersion = "1.0"
)
