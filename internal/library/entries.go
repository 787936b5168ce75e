// Package library reads the webtoon directory from disk: it materializes
// directory entries for the catalog builder, recognizes archive files and
// runs the catalog sync job.
package library

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/hojoonlee/toondex/internal/models"
)

// CreationTimeLayout is the format used for FileEntry.CreationTime.
// Downstream code treats the value as opaque text.
const CreationTimeLayout = "2006-01-02 15:04:05"

// ListEntries reads a single directory level and returns one FileEntry
// per item, in directory order. Archives live flat in the library root,
// so no recursion happens here. The creation time is taken from the
// modification time, the closest portable stand-in for a birth time.
func ListEntries(dir string) ([]models.FileEntry, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	entries := make([]models.FileEntry, 0, len(dirEntries))
	for _, de := range dirEntries {
		info, err := de.Info()
		if err != nil {
			// The file disappeared between the listing and the stat.
			continue
		}
		name := de.Name()
		ext := filepath.Ext(name)
		entries = append(entries, models.FileEntry{
			Path:         filepath.Join(dir, name),
			Name:         name,
			BaseName:     strings.TrimSuffix(name, ext),
			Extension:    strings.TrimPrefix(ext, "."),
			Size:         info.Size(),
			IsFile:       info.Mode().IsRegular(),
			CreationTime: info.ModTime().Format(CreationTimeLayout),
		})
	}
	return entries, nil
}
