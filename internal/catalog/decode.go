// Package catalog decodes webtoon archive file names and assembles the
// sorted, de-duplicated catalog. The package is pure: it works on
// already-materialized directory entries and never touches the disk.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hojoonlee/toondex/internal/models"
)

// Archive names follow the convention "NAVER_Tower of God_SIU [完].zip":
// the platform acronym runs up to the first delimiter, the last delimiter
// splits the title from the authors, and the trailing marker flags a
// finished series. Titles may legally contain the delimiter character;
// author lists never do, which is why the title boundary is the LAST
// occurrence rather than the second one.
const (
	PlatformDelimiter = "_"
	TitleDelimiter    = "_"
	CompletedMarker   = " [完]"
)

// ErrInvalidFilename reports a base name that does not follow the naming
// convention. Callers decide whether to skip the file or abort.
var ErrInvalidFilename = errors.New("file name does not follow the naming convention")

// Decoded holds the fields recovered from one base name. Creation time,
// extension and size come from the directory entry, not from the name.
type Decoded struct {
	Title     string
	Authors   string
	Platform  string
	Completed bool
}

// Decode splits a base name (file name without its extension) into the
// fields encoded in it. The platform acronym is resolved against the
// known platform table; unknown acronyms are kept verbatim.
func Decode(baseName string) (Decoded, error) {
	i := strings.Index(baseName, PlatformDelimiter)
	if i < 0 {
		return Decoded{}, fmt.Errorf("%w: %q has no platform delimiter %q", ErrInvalidFilename, baseName, PlatformDelimiter)
	}
	acronym := baseName[:i]
	remainder := baseName[i+len(PlatformDelimiter):]

	j := strings.LastIndex(remainder, TitleDelimiter)
	if j < 0 {
		return Decoded{}, fmt.Errorf("%w: %q has no title delimiter %q", ErrInvalidFilename, baseName, TitleDelimiter)
	}
	title := remainder[:j]
	remainder = remainder[j+len(TitleDelimiter):]

	// The marker is checked against the whole base name, not the author
	// remainder, so a title containing the marker text does not flag the
	// record as completed.
	completed := strings.HasSuffix(baseName, CompletedMarker)

	authors := remainder
	if completed {
		authors = remainder[:strings.Index(remainder, CompletedMarker)]
	}

	return Decoded{
		Title:     title,
		Authors:   authors,
		Platform:  models.ResolvePlatform(acronym),
		Completed: completed,
	}, nil
}
