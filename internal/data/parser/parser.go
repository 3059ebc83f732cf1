// Package parser loads and validates Copilot CLI session transcripts.
package parser

import (
	"fmt"
	"os"
	"strings"

	"github.com/bytedance/sonic"

	"github.com/dthphuong/copilot-status/internal/core/model"
	"github.com/dthphuong/copilot-status/internal/util"
)

// Load reads and structurally validates one session file. The returned
// session is exactly what the CLI wrote; no normalization is applied beyond
// type checking, so downstream consumers must tolerate absent optional
// fields. Load performs a pure read and never mutates the file.
func Load(path string) (*model.Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &Error{Kind: ErrNotFound, Path: path, Err: err}
		}
		if os.IsPermission(err) {
			return nil, &Error{Kind: ErrPermissionDenied, Path: path, Err: err}
		}
		return nil, fmt.Errorf("read session file %s: %w", path, err)
	}

	if strings.TrimSpace(string(data)) == "" {
		return nil, &Error{Kind: ErrEmptyFile, Path: path}
	}

	// Decode loosely first so malformed JSON and schema violations are
	// reported as distinct failures.
	var raw any
	if err := sonic.Unmarshal(data, &raw); err != nil {
		return nil, &Error{Kind: ErrMalformedJSON, Path: path, Err: err}
	}

	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, &Error{Kind: ErrSchemaViolation, Path: path, Reason: "top-level value is not an object"}
	}

	if reason := validateSchema(obj); reason != "" {
		return nil, &Error{Kind: ErrSchemaViolation, Path: path, Reason: reason}
	}

	var session model.Session
	if err := sonic.Unmarshal(data, &session); err != nil {
		return nil, &Error{Kind: ErrSchemaViolation, Path: path, Err: err}
	}

	util.LogDebugf("Loaded session %s with %d messages from %s",
		session.SessionID, len(session.ChatMessages), path)
	return &session, nil
}

// validateSchema checks the structural requirements on the raw document and
// returns a human-readable reason on the first violation.
func validateSchema(obj map[string]any) string {
	id, ok := obj["sessionId"]
	if !ok {
		return "missing sessionId"
	}
	idStr, ok := id.(string)
	if !ok {
		return "sessionId is not a string"
	}
	if idStr == "" {
		return "sessionId is empty"
	}

	messages, ok := obj["chatMessages"]
	if !ok {
		return "missing chatMessages"
	}
	list, ok := messages.([]any)
	if !ok {
		return "chatMessages is not an array"
	}

	for i, entry := range list {
		msg, ok := entry.(map[string]any)
		if !ok {
			return fmt.Sprintf("chatMessages[%d] is not an object", i)
		}
		role, ok := msg["role"].(string)
		if !ok {
			return fmt.Sprintf("chatMessages[%d] missing role", i)
		}
		if !model.ValidRole(role) {
			return fmt.Sprintf("chatMessages[%d] has invalid role %q", i, role)
		}
	}

	return ""
}
