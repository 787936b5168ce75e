// This file verifies the latest-export lookup over directory entries.

package catalog

import (
	"strings"
	"testing"

	"github.com/hojoonlee/toondex/internal/models"
)

// exportEntry builds a FileEntry for a file with the given name.
func exportEntry(name string, isFile bool) models.FileEntry {
	base := name
	ext := ""
	if i := strings.LastIndex(name, "."); i >= 0 {
		base = name[:i]
		ext = name[i+1:]
	}
	return models.FileEntry{Name: name, BaseName: base, Extension: ext, IsFile: isFile}
}

func TestFindLatestExport(t *testing.T) {
	entries := []models.FileEntry{
		exportEntry("Webtoons_20230101000000.xlsx", true),
		exportEntry("Webtoons_20250815093000.xlsx", true),
		exportEntry("Webtoons_20240701120000.xlsx", true),
	}

	name, ok := FindLatestExport(entries)
	if !ok {
		t.Fatal("Expected to find an export file")
	}
	if name != "Webtoons_20250815093000.xlsx" {
		t.Errorf("Expected 'Webtoons_20250815093000.xlsx', but got '%s'", name)
	}
}

func TestFindLatestExportFiltering(t *testing.T) {
	testCases := []struct {
		name     string
		entries  []models.FileEntry
		expected string
		found    bool
	}{
		{
			name: "Directories are ignored",
			entries: []models.FileEntry{
				exportEntry("Webtoons_20990101000000.xlsx", false),
				exportEntry("Webtoons_20230101000000.xlsx", true),
			},
			expected: "Webtoons_20230101000000.xlsx",
			found:    true,
		},
		{
			name: "Other prefixes are ignored",
			entries: []models.FileEntry{
				exportEntry("Catalog_20250101000000.xlsx", true),
			},
			found: false,
		},
		{
			name: "Other extensions are ignored",
			entries: []models.FileEntry{
				exportEntry("Webtoons_20250101000000.csv", true),
			},
			found: false,
		},
		{
			name: "Extension match is exact, not case-folded",
			entries: []models.FileEntry{
				exportEntry("Webtoons_20250101000000.XLSX", true),
			},
			found: false,
		},
		{
			name: "Bare prefix qualifies",
			entries: []models.FileEntry{
				exportEntry("Webtoons.xlsx", true),
			},
			expected: "Webtoons.xlsx",
			found:    true,
		},
		{
			name:    "Empty listing",
			entries: nil,
			found:   false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			name, ok := FindLatestExport(tc.entries)
			if ok != tc.found {
				t.Fatalf("Expected found=%v, but got found=%v (name=%q)", tc.found, ok, name)
			}
			if ok && name != tc.expected {
				t.Errorf("Expected '%s', but got '%s'", tc.expected, name)
			}
		})
	}
}
