// Package store holds the current catalog snapshot shared by the API
// server and the background jobs. The catalog is rebuilt from disk on
// every sync, so nothing here is persisted.
package store

import (
	"sync"
	"time"

	"github.com/hojoonlee/toondex/internal/catalog"
)

// Snapshot is one published catalog build plus the moment it finished.
type Snapshot struct {
	catalog.BuildResult
	ScannedAt time.Time `json:"scanned_at"`
}

// Catalog is a concurrency-safe holder for the latest snapshot. Readers
// (API handlers) and the writer (sync job) may touch it from different
// goroutines.
type Catalog struct {
	mu      sync.RWMutex
	snap    Snapshot
	scanned bool
}

// NewCatalog returns an empty holder. Until the first Set, Get reports
// an empty catalog with the zero-count summary.
func NewCatalog() *Catalog {
	return &Catalog{
		snap: Snapshot{BuildResult: catalog.BuildResult{Summary: catalog.Summary(0)}},
	}
}

// Set publishes a new snapshot, stamping it with the current time.
func (c *Catalog) Set(result catalog.BuildResult) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snap = Snapshot{BuildResult: result, ScannedAt: time.Now()}
	c.scanned = true
}

// Get returns the current snapshot. The boolean reports whether a sync
// has published anything yet.
func (c *Catalog) Get() (Snapshot, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snap, c.scanned
}
