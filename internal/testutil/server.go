// Shared test setup helpers, which simplify the API and library tests.

package testutil

import (
	"testing"

	"github.com/hojoonlee/toondex/internal/api"
	"github.com/hojoonlee/toondex/internal/config"
	"github.com/hojoonlee/toondex/internal/core"
	"github.com/hojoonlee/toondex/internal/library"
)

// SetupTestApp builds a core.App backed by temporary library and export
// directories and registers the catalog sync job.
func SetupTestApp(t *testing.T) *core.App {
	t.Helper()

	cfg := &config.Config{
		Port:         8080,
		ScanInterval: 0, // tests trigger syncs themselves
	}
	cfg.Library.Path = t.TempDir()
	cfg.Library.OnInvalid = "skip"
	cfg.Export.Path = t.TempDir()

	app, err := core.NewWithConfig(cfg, "test")
	if err != nil {
		t.Fatalf("Failed to set up test app: %v", err)
	}
	app.JobManager().Register(library.SyncJobID, "Catalog Sync", library.SyncCatalog)
	return app
}

// SetupTestServer initializes a full core.App and api.Server for integration testing.
func SetupTestServer(t *testing.T) (*api.Server, *core.App) {
	t.Helper()
	app := SetupTestApp(t)
	return api.NewServer(app), app
}
