// Package metrics derives per-session figures from parsed transcripts.
package metrics

import (
	"time"

	"github.com/dthphuong/copilot-status/internal/core/model"
)

// Estimate computes SessionMetrics for a validated session. It is a pure
// function: now is injected so duration for still-open sessions stays
// deterministic in tests. Absent optional fields degrade to zero, never to
// an error.
func Estimate(session *model.Session, now time.Time) model.SessionMetrics {
	m := model.SessionMetrics{
		SessionID: session.SessionID,
		StartTime: session.StartTime,
		EndTime:   session.EndTime,
		Messages:  len(session.ChatMessages),
	}

	for _, msg := range session.ChatMessages {
		switch msg.Role {
		case model.RoleUser:
			m.UserMessages++
		case model.RoleAssistant:
			m.AssistantMessages++
		case model.RoleTool:
			m.ToolMessages++
		}
		m.ToolCalls += len(msg.ToolCalls)
	}

	// Prompts are user-authored messages, not total messages. This is the
	// figure every prompt-denominated average upstream is built on.
	m.Prompts = m.UserMessages
	m.Tokens = EstimateTokens(session.ChatMessages)
	m.Duration = duration(session, now)

	return m
}

// EstimateTokens approximates the token usage of a message sequence:
// ceil(len(content)/4) per message plus a flat 10 tokens per tool call.
// This is a heuristic, not tokenizer output; callers must treat it as an
// estimate.
func EstimateTokens(messages []model.Message) int {
	tokens := 0
	for _, msg := range messages {
		if msg.Content != "" {
			tokens += (len(msg.Content) + model.CharsPerToken - 1) / model.CharsPerToken
		}
		tokens += model.TokensPerToolCall * len(msg.ToolCalls)
	}
	return tokens
}

// duration measures (endTime or now) - startTime in whole seconds, rounded
// to nearest. A missing or unparsable startTime yields 0.
func duration(session *model.Session, now time.Time) int64 {
	start, err := time.Parse(time.RFC3339, session.StartTime)
	if session.StartTime == "" || err != nil {
		return 0
	}

	end := now
	if session.EndTime != "" {
		if parsed, err := time.Parse(time.RFC3339, session.EndTime); err == nil {
			end = parsed
		}
	}

	secs := int64(end.Sub(start).Round(time.Second) / time.Second)
	if secs < 0 {
		return 0
	}
	return secs
}
