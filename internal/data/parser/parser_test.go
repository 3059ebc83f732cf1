package parser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSession(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadValidSession(t *testing.T) {
	dir := t.TempDir()
	path := writeSession(t, dir, "session-abc.json", `{
		"sessionId": "abc",
		"startTime": "2024-01-15T10:00:00Z",
		"chatMessages": [
			{"role": "user", "content": "hello"},
			{"role": "assistant", "content": "hi", "toolCalls": [
				{"id": "t1", "type": "function", "function": {"name": "read_file", "arguments": "{}"}}
			]}
		]
	}`)

	session, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "abc", session.SessionID)
	assert.Equal(t, "2024-01-15T10:00:00Z", session.StartTime)
	assert.Len(t, session.ChatMessages, 2)
	assert.Len(t, session.ChatMessages[1].ToolCalls, 1)
	assert.Equal(t, "read_file", session.ChatMessages[1].ToolCalls[0].Function.Name)
}

func TestLoadEmptyMessagesIsValid(t *testing.T) {
	dir := t.TempDir()
	path := writeSession(t, dir, "session-empty.json",
		`{"sessionId": "empty", "chatMessages": []}`)

	session, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, session.ChatMessages)
}

func TestLoadErrorKinds(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name     string
		path     func(t *testing.T) string
		expected ErrorKind
	}{
		{
			name:     "missing file",
			path:     func(t *testing.T) string { return filepath.Join(dir, "session-nope.json") },
			expected: ErrNotFound,
		},
		{
			name: "empty file",
			path: func(t *testing.T) string {
				return writeSession(t, dir, "session-blank.json", "")
			},
			expected: ErrEmptyFile,
		},
		{
			name: "whitespace only",
			path: func(t *testing.T) string {
				return writeSession(t, dir, "session-ws.json", "  \n\t ")
			},
			expected: ErrEmptyFile,
		},
		{
			name: "malformed json",
			path: func(t *testing.T) string {
				return writeSession(t, dir, "session-bad.json", `{"sessionId": "x",`)
			},
			expected: ErrMalformedJSON,
		},
		{
			name: "top level array",
			path: func(t *testing.T) string {
				return writeSession(t, dir, "session-arr.json", `[1, 2, 3]`)
			},
			expected: ErrSchemaViolation,
		},
		{
			name: "missing sessionId",
			path: func(t *testing.T) string {
				return writeSession(t, dir, "session-noid.json", `{"chatMessages": []}`)
			},
			expected: ErrSchemaViolation,
		},
		{
			name: "empty sessionId",
			path: func(t *testing.T) string {
				return writeSession(t, dir, "session-emptyid.json",
					`{"sessionId": "", "chatMessages": []}`)
			},
			expected: ErrSchemaViolation,
		},
		{
			name: "sessionId wrong type",
			path: func(t *testing.T) string {
				return writeSession(t, dir, "session-numid.json",
					`{"sessionId": 42, "chatMessages": []}`)
			},
			expected: ErrSchemaViolation,
		},
		{
			name: "missing chatMessages",
			path: func(t *testing.T) string {
				return writeSession(t, dir, "session-nomsgs.json", `{"sessionId": "x"}`)
			},
			expected: ErrSchemaViolation,
		},
		{
			name: "chatMessages wrong type",
			path: func(t *testing.T) string {
				return writeSession(t, dir, "session-objmsgs.json",
					`{"sessionId": "x", "chatMessages": {}}`)
			},
			expected: ErrSchemaViolation,
		},
		{
			name: "unknown role rejected",
			path: func(t *testing.T) string {
				return writeSession(t, dir, "session-badrole.json",
					`{"sessionId": "x", "chatMessages": [{"role": "narrator", "content": "hi"}]}`)
			},
			expected: ErrSchemaViolation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session, err := Load(tt.path(t))
			require.Error(t, err)
			assert.Nil(t, session)

			kind, ok := KindOf(err)
			require.True(t, ok, "expected a typed parser error, got %v", err)
			assert.Equal(t, tt.expected, kind)
		})
	}
}

func TestErrorMessageCarriesPath(t *testing.T) {
	dir := t.TempDir()
	path := writeSession(t, dir, "session-bad.json", "{")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestKindOfForeignError(t *testing.T) {
	_, ok := KindOf(os.ErrClosed)
	assert.False(t, ok)
}
