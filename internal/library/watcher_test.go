package library_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hojoonlee/toondex/internal/library"
	"github.com/hojoonlee/toondex/internal/testutil"
)

// TestWatcherService_StartStop tests starting and stopping the watcher service.
func TestWatcherService_StartStop(t *testing.T) {
	app := testutil.SetupTestApp(t)
	watcher := library.NewWatcherService(app)

	if err := watcher.Start(); err != nil {
		t.Fatalf("Failed to start watcher: %v", err)
	}
	if err := watcher.Stop(); err != nil {
		t.Fatalf("Failed to stop watcher: %v", err)
	}
}

// TestWatcherService_MissingLibrary tests that a missing library directory
// fails Start instead of leaking a watcher.
func TestWatcherService_MissingLibrary(t *testing.T) {
	app := testutil.SetupTestApp(t)
	app.Config().Library.Path = filepath.Join(t.TempDir(), "does-not-exist")

	watcher := library.NewWatcherService(app)
	if err := watcher.Start(); err == nil {
		watcher.Stop()
		t.Fatal("Expected Start to fail for a missing library directory")
	}
}

// TestWatcherService_ArchiveCreate tests that adding an archive triggers a
// catalog sync after the debounce delay.
func TestWatcherService_ArchiveCreate(t *testing.T) {
	app := testutil.SetupTestApp(t)
	libraryRoot := app.Config().Library.Path

	watcher := library.NewWatcherService(app)
	if err := watcher.Start(); err != nil {
		t.Fatalf("Failed to start watcher: %v", err)
	}
	defer watcher.Stop()

	// Wait a bit for watcher to initialize
	time.Sleep(100 * time.Millisecond)

	testutil.CreateTestArchive(t, libraryRoot, "NAVER_Tower of God_SIU.zip", []string{"001.jpg"})

	// Wait for debounce delay + some buffer
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if snap, scanned := app.Catalog().Get(); scanned && snap.Total() == 1 {
			return
		}
		time.Sleep(100 * time.Millisecond)
	}

	snap, scanned := app.Catalog().Get()
	t.Fatalf("Expected watcher to publish a 1-record catalog, got scanned=%v total=%d", scanned, snap.Total())
}

// TestWatcherService_IgnoresNonArchives tests that changes to non-archive
// files do not trigger a sync.
func TestWatcherService_IgnoresNonArchives(t *testing.T) {
	app := testutil.SetupTestApp(t)
	libraryRoot := app.Config().Library.Path

	watcher := library.NewWatcherService(app)
	if err := watcher.Start(); err != nil {
		t.Fatalf("Failed to start watcher: %v", err)
	}
	defer watcher.Stop()

	time.Sleep(100 * time.Millisecond)

	if err := os.WriteFile(filepath.Join(libraryRoot, "notes.txt"), []byte("hello"), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	// Wait past the debounce delay; nothing should have been published.
	time.Sleep(3 * time.Second)

	if _, scanned := app.Catalog().Get(); scanned {
		t.Error("Expected no catalog sync for a non-archive file change")
	}
}
