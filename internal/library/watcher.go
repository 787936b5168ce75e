// This file implements a file system watcher for the library directory.
// It uses OS-level file system events to schedule a catalog sync when
// archives are added, changed, renamed or removed.

package library

import (
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/hojoonlee/toondex/internal/jobs"
)

// WatcherService watches the library directory for file system changes
// and triggers a catalog sync once the changes settle.
type WatcherService struct {
	ctx           jobs.JobContext
	watcher       *fsnotify.Watcher
	changedPaths  map[string]bool
	mu            sync.Mutex
	debounceTimer *time.Timer
	debounceDelay time.Duration
	stopChan      chan struct{}
}

// NewWatcherService creates a new file system watcher service.
func NewWatcherService(ctx jobs.JobContext) *WatcherService {
	return &WatcherService{
		ctx:           ctx,
		changedPaths:  make(map[string]bool),
		debounceDelay: 2 * time.Second, // Wait 2 seconds after last change before syncing
		stopChan:      make(chan struct{}),
	}
}

// Start begins watching the library directory for changes. Only the
// library root is watched: the catalog reads a single directory level,
// so changes deeper down cannot affect it.
func (w *WatcherService) Start() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	w.watcher = watcher

	libraryPath := w.ctx.Config().Library.Path
	if err := watcher.Add(libraryPath); err != nil {
		watcher.Close()
		return err
	}

	log.Printf("File watcher started for library: %s", libraryPath)

	// Start the event processing goroutine
	go w.processEvents()

	return nil
}

// Stop stops the file watcher service.
func (w *WatcherService) Stop() error {
	close(w.stopChan)
	if w.watcher != nil {
		return w.watcher.Close()
	}
	return nil
}

// processEvents processes file system events and schedules catalog syncs.
func (w *WatcherService) processEvents() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("File watcher error: %v", err)

		case <-w.stopChan:
			return
		}
	}
}

// handleEvent processes a single file system event.
func (w *WatcherService) handleEvent(event fsnotify.Event) {
	// Ignore Chmod events (these are often triggered by opening folders, reading files, etc.)
	// This prevents false triggers when browsing the file system
	if event.Op == fsnotify.Chmod {
		return
	}

	// Renames matter here: the catalog's metadata lives in the file name.
	hasRelevantOp := event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) != 0
	if !hasRelevantOp {
		return
	}

	// Only archive files can change the catalog.
	if !IsSupportedArchive(filepath.Base(event.Name)) {
		return
	}

	w.mu.Lock()
	w.changedPaths[event.Name] = true

	// Reset debounce timer
	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	w.debounceTimer = time.AfterFunc(w.debounceDelay, w.triggerSync)
	w.mu.Unlock()
}

// triggerSync submits a catalog sync for the accumulated changes.
func (w *WatcherService) triggerSync() {
	w.mu.Lock()
	changed := len(w.changedPaths)
	w.changedPaths = make(map[string]bool)
	w.mu.Unlock()

	if changed == 0 {
		return
	}

	log.Printf("File watcher detected %d changed file(s), triggering catalog sync", changed)

	// Submit through the manager so manual runs and watcher runs cannot
	// overlap.
	if err := w.ctx.JobManager().RunJob(SyncJobID, w.ctx); err != nil {
		log.Printf("Watcher-triggered sync could not start: %v", err)
	}
}
