package store

import (
	"sync"
	"testing"

	"github.com/hojoonlee/toondex/internal/catalog"
	"github.com/hojoonlee/toondex/internal/models"
)

func TestCatalogStoreInitialState(t *testing.T) {
	c := NewCatalog()

	snap, scanned := c.Get()
	if scanned {
		t.Error("Expected a fresh store to report no scan yet")
	}
	if snap.Total() != 0 {
		t.Errorf("Expected an empty catalog, got %d records", snap.Total())
	}
	if snap.Summary != "Total 0 webtoons" {
		t.Errorf("Expected the zero-count summary, got '%s'", snap.Summary)
	}
}

func TestCatalogStoreSetAndGet(t *testing.T) {
	c := NewCatalog()

	result := catalog.BuildResult{
		Webtoons: []models.Webtoon{
			{Title: "Tower of God", Authors: "SIU", Platform: "Naver Webtoon"},
		},
		Summary: "Total 1 webtoon",
	}
	c.Set(result)

	snap, scanned := c.Get()
	if !scanned {
		t.Fatal("Expected the store to report a completed scan")
	}
	if snap.Total() != 1 {
		t.Fatalf("Expected 1 record, got %d", snap.Total())
	}
	if snap.Webtoons[0].Title != "Tower of God" {
		t.Errorf("Expected title 'Tower of God', got '%s'", snap.Webtoons[0].Title)
	}
	if snap.ScannedAt.IsZero() {
		t.Error("Expected ScannedAt to be stamped")
	}
}

func TestCatalogStoreConcurrentAccess(t *testing.T) {
	c := NewCatalog()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Set(catalog.BuildResult{Summary: catalog.Summary(0)})
		}()
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Get()
		}()
	}
	wg.Wait()

	if _, scanned := c.Get(); !scanned {
		t.Error("Expected the store to report a completed scan after writes")
	}
}
