// This file recognizes webtoon archive files. The extension alone is not
// trusted: the file content must also identify as a zip container, so a
// renamed text file never reaches the catalog.

package library

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/mholt/archives"

	"github.com/hojoonlee/toondex/internal/models"
)

// Webtoon archives are zip containers; .cbz is the comic-reader spelling
// of the same thing.
var archiveExtensions = map[string]bool{
	".zip": true,
	".cbz": true,
}

// IsSupportedArchive checks if a filename has a supported archive extension.
func IsSupportedArchive(name string) bool {
	return archiveExtensions[strings.ToLower(filepath.Ext(name))]
}

// IsArchiveEntry reports whether a directory entry is a valid webtoon
// archive: a plain file with a supported extension whose content
// identifies as zip. Unreadable files are treated as non-archives.
func IsArchiveEntry(entry models.FileEntry) bool {
	if !entry.IsFile || !IsSupportedArchive(entry.Name) {
		return false
	}
	ok, err := identifiesAsZip(entry.Path)
	return err == nil && ok
}

// identifiesAsZip sniffs the file header. The file name is deliberately
// withheld from Identify so the match comes from the content, not from
// the extension that was already checked.
func identifiesAsZip(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	format, _, err := archives.Identify(context.Background(), "", f)
	if err != nil {
		if errors.Is(err, archives.NoMatch) {
			return false, nil
		}
		return false, err
	}
	return format.Extension() == ".zip", nil
}
