// This file finds the most recent export spreadsheet in a directory
// listing. Export files embed a timestamp in their name, so plain string
// order matches chronological order.

package catalog

import (
	"strings"

	"github.com/hojoonlee/toondex/internal/models"
)

// Export list files are named "Webtoons_<yyyyMMddHHmmss>.xlsx".
const (
	ExportPrefix    = "Webtoons"
	ExportExtension = "xlsx"
)

// FindLatestExport returns the file name of the newest export among the
// given entries. An entry qualifies when it is a plain file, its base
// name starts with ExportPrefix and its extension equals ExportExtension
// exactly. The boolean is false when nothing qualifies; that is a normal
// outcome for a fresh directory, not an error.
func FindLatestExport(entries []models.FileEntry) (string, bool) {
	var latest string
	var found bool
	for _, e := range entries {
		if !e.IsFile || !strings.HasPrefix(e.BaseName, ExportPrefix) || e.Extension != ExportExtension {
			continue
		}
		if !found || e.Name > latest {
			latest = e.Name
			found = true
		}
	}
	return latest, found
}
