// Package usagelog is the append-only line-oriented store for discrete
// usage events. It is an independent ingestion path: events come from the
// background tracker, never from session transcripts.
package usagelog

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bytedance/sonic"

	"github.com/dthphuong/copilot-status/internal/core/model"
	"github.com/dthphuong/copilot-status/internal/util"
)

// Store appends and reads newline-delimited JSON usage events at a single
// configurable path.
type Store struct {
	path string
}

// NewStore creates a Store for the given log file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the store file location.
func (s *Store) Path() string { return s.path }

// EnsureStore creates the parent directory and an empty store file if
// absent. It is idempotent and a guaranteed no-op when the file already
// exists, leaving the store readable on every exit path.
func (s *Store) EnsureStore() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("create usage log directory: %w", err)
	}

	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("create usage log %s: %w", s.path, err)
	}
	return f.Close()
}

// Append serializes one event as a single JSON line and appends it to the
// store. Failures are logged and returned; callers in long-running loops
// treat them as best-effort and keep going.
func (s *Store) Append(event model.UsageEvent) error {
	if err := s.EnsureStore(); err != nil {
		util.LogWarnf("Usage log unavailable: %v", err)
		return err
	}

	line, err := sonic.Marshal(event)
	if err != nil {
		util.LogWarnf("Failed to serialize usage event: %v", err)
		return err
	}

	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		util.LogWarnf("Failed to open usage log for append: %v", err)
		return err
	}
	defer f.Close()

	if _, err := f.Write(append(line, '\n')); err != nil {
		util.LogWarnf("Failed to append usage event: %v", err)
		return err
	}
	return nil
}

// ReadForDate returns every event whose timestamp falls on the given date.
// Matching is a literal prefix comparison, so stored timestamps must begin
// with the YYYY-MM-DD form (RFC 3339 does). Lines that fail to parse are
// dropped silently rather than aborting the read.
func (s *Store) ReadForDate(date string) ([]model.UsageEvent, error) {
	if err := s.EnsureStore(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open usage log %s: %w", s.path, err)
	}
	defer f.Close()

	var events []model.UsageEvent
	lines := bufio.NewScanner(f)
	lines.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for lines.Scan() {
		line := strings.TrimSpace(lines.Text())
		if line == "" {
			continue
		}

		var event model.UsageEvent
		if err := sonic.Unmarshal([]byte(line), &event); err != nil {
			continue
		}
		if strings.HasPrefix(event.Timestamp, date) {
			events = append(events, event)
		}
	}
	if err := lines.Err(); err != nil {
		return events, fmt.Errorf("read usage log %s: %w", s.path, err)
	}

	return events, nil
}
