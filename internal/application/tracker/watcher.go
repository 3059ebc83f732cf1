package tracker

import (
	"github.com/fsnotify/fsnotify"

	"github.com/dthphuong/copilot-status/internal/data/scanner"
	"github.com/dthphuong/copilot-status/internal/util"
)

// FileEvent describes a change to a session file on disk.
type FileEvent struct {
	Path      string
	Operation string
}

// FileWatcher surfaces filesystem change hints for the sessions directory.
// Events are hints only: the tracker's poll loop remains the source of
// truth, so a dropped event delays pickup by at most one interval.
type FileWatcher struct {
	watcher *fsnotify.Watcher
	events  chan FileEvent
}

// NewFileWatcher watches dir for session file changes.
func NewFileWatcher(dir string) (*FileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, err
	}

	fw := &FileWatcher{
		watcher: watcher,
		events:  make(chan FileEvent, 100),
	}

	go fw.processEvents()

	return fw, nil
}

func (fw *FileWatcher) processEvents() {
	for {
		select {
		case event, ok := <-fw.watcher.Events:
			if !ok {
				close(fw.events)
				return
			}

			// Only session files matter
			if !scanner.IsSessionFile(event.Name) {
				continue
			}

			select {
			case fw.events <- FileEvent{Path: event.Name, Operation: event.Op.String()}:
			default:
				// Buffer full; the next poll catches up anyway.
			}

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				close(fw.events)
				return
			}
			util.LogError("File monitoring error: " + err.Error())
		}
	}
}

// Events returns the change hint channel. It is closed when the watcher
// shuts down.
func (fw *FileWatcher) Events() <-chan FileEvent {
	return fw.events
}

func (fw *FileWatcher) Close() error {
	return fw.watcher.Close()
}
