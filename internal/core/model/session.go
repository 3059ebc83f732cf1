package model

// Message roles accepted by the session schema. Any other value fails
// validation for the whole session.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleTool      = "tool"
	RoleSystem    = "system"
)

// ValidRole reports whether role belongs to the closed role set.
func ValidRole(role string) bool {
	switch role {
	case RoleUser, RoleAssistant, RoleTool, RoleSystem:
		return true
	}
	return false
}

// ToolCallTypeFunction is the only tool call discriminator the Copilot CLI
// currently writes.
const ToolCallTypeFunction = "function"

// Session is one recorded transcript between a user and the Copilot CLI,
// stored as a single JSON file in the session directory.
type Session struct {
	SessionID    string          `json:"sessionId"`
	StartTime    string          `json:"startTime,omitempty"`
	EndTime      string          `json:"endTime,omitempty"`
	ChatMessages []Message       `json:"chatMessages"`
	Timeline     []TimelineEvent `json:"timeline,omitempty"`
}

// Message is a single chat entry within a session.
type Message struct {
	Role      string     `json:"role"`
	Content   string     `json:"content,omitempty"`
	ToolCalls []ToolCall `json:"toolCalls,omitempty"`
	Timestamp string     `json:"timestamp,omitempty"`
}

// ToolCall is a structured function-invocation request embedded in a
// message. The argument payload is kept as the raw string the CLI wrote;
// the engine only counts calls, it never interprets arguments.
type ToolCall struct {
	ID       string       `json:"id,omitempty"`
	Type     string       `json:"type,omitempty"`
	Function FunctionCall `json:"function"`
}

type FunctionCall struct {
	Name      string `json:"name,omitempty"`
	Arguments string `json:"arguments,omitempty"`
}

// TimelineEvent is opaque to the aggregation engine. It is decoded loosely
// and carried through so exported sessions keep whatever the CLI wrote.
type TimelineEvent map[string]any
