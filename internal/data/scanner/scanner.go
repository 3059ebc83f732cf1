// Package scanner discovers session files in the Copilot CLI state
// directory.
package scanner

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dthphuong/copilot-status/internal/util"
)

// Session files follow a fixed naming convention: prefix, opaque id, suffix.
const (
	FilePrefix = "session-"
	FileSuffix = ".json"
)

// IsSessionFile reports whether path names a session file by convention.
func IsSessionFile(path string) bool {
	name := filepath.Base(path)
	return strings.HasPrefix(name, FilePrefix) && strings.HasSuffix(name, FileSuffix)
}

// FileScanner lists candidate session files in a directory.
type FileScanner struct {
	baseDir string
}

// NewFileScanner creates a new FileScanner instance
func NewFileScanner(baseDir string) *FileScanner {
	return &FileScanner{baseDir: baseDir}
}

// Dir returns the scanned directory.
func (s *FileScanner) Dir() string { return s.baseDir }

// Scan returns the paths of all session files in the directory. A missing
// or unreadable directory is reported as zero sessions with a warning, not
// as an error: the caller always gets a well-formed (possibly empty) list.
func (s *FileScanner) Scan() []string {
	start := time.Now()

	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			util.LogWarnf("Session directory does not exist: %s", s.baseDir)
		} else {
			util.LogWarnf("Cannot read session directory %s: %v", s.baseDir, err)
		}
		return nil
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, FilePrefix) && strings.HasSuffix(name, FileSuffix) {
			files = append(files, filepath.Join(s.baseDir, name))
		}
	}

	if len(files) == 0 {
		util.LogWarnf("No session files found in %s", s.baseDir)
	}
	util.LogDebug(fmt.Sprintf("Directory scan completed: duration %v, found %d session files in %s",
		time.Since(start), len(files), s.baseDir))

	return files
}
