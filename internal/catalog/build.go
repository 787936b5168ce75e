// This file assembles the catalog: filter entries down to archives,
// decode each file name, drop exact duplicates and sort the result.

package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hojoonlee/toondex/internal/models"
)

// InvalidNamePolicy decides what a build does with an archive whose name
// does not follow the naming convention.
type InvalidNamePolicy int

const (
	// SkipInvalid leaves the offending entry out of the catalog and
	// reports it in BuildResult.Skipped.
	SkipInvalid InvalidNamePolicy = iota
	// AbortOnInvalid fails the whole build on the first offending entry.
	AbortOnInvalid
)

// PolicyFromString maps the library.on_invalid config value to a policy.
// "fail" selects AbortOnInvalid; anything else, including the empty
// string, selects SkipInvalid.
func PolicyFromString(s string) InvalidNamePolicy {
	if strings.EqualFold(s, "fail") {
		return AbortOnInvalid
	}
	return SkipInvalid
}

// Options configures a catalog build.
type Options struct {
	OnInvalid InvalidNamePolicy
}

// SkippedEntry records one archive that was left out of the catalog and
// why.
type SkippedEntry struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// BuildResult is the output of one catalog build.
type BuildResult struct {
	Webtoons []models.Webtoon `json:"webtoons"`
	Summary  string           `json:"summary"`
	Skipped  []SkippedEntry   `json:"skipped,omitempty"`
}

// Total returns the number of records in the catalog.
func (r BuildResult) Total() int { return len(r.Webtoons) }

// ArchivePredicate reports whether a directory entry is a webtoon
// archive. The builder delegates the format check so that it stays free
// of filesystem access; a nil predicate admits every entry.
type ArchivePredicate func(models.FileEntry) bool

// Build turns directory entries into the catalog. Entries that fail the
// archive predicate are ignored. Duplicate removal compares every field
// of a record, so two archives only collapse when name-derived fields,
// creation time, extension and size all agree. Records are sorted by
// platform, then title; ties beyond that keep their decode order.
//
// A nil or empty entries slice builds an empty catalog.
func Build(entries []models.FileEntry, isArchive ArchivePredicate, opts Options) (BuildResult, error) {
	var result BuildResult

	seen := make(map[models.Webtoon]struct{})
	for _, entry := range entries {
		if isArchive != nil && !isArchive(entry) {
			continue
		}

		decoded, err := Decode(entry.BaseName)
		if err != nil {
			if opts.OnInvalid == AbortOnInvalid {
				return BuildResult{}, fmt.Errorf("build catalog: %w", err)
			}
			result.Skipped = append(result.Skipped, SkippedEntry{Name: entry.Name, Reason: err.Error()})
			continue
		}

		webtoon := models.Webtoon{
			Title:         decoded.Title,
			Authors:       decoded.Authors,
			Platform:      decoded.Platform,
			Completed:     decoded.Completed,
			CreationTime:  entry.CreationTime,
			FileExtension: entry.Extension,
			Size:          entry.Size,
		}
		if _, dup := seen[webtoon]; dup {
			continue
		}
		seen[webtoon] = struct{}{}
		result.Webtoons = append(result.Webtoons, webtoon)
	}

	sort.SliceStable(result.Webtoons, func(i, j int) bool {
		a, b := result.Webtoons[i], result.Webtoons[j]
		if a.Platform != b.Platform {
			return a.Platform < b.Platform
		}
		return a.Title < b.Title
	})

	result.Summary = Summary(len(result.Webtoons))
	return result, nil
}

// Summary formats the count line shown after a build. Singular only for
// exactly one record; zero reads "Total 0 webtoons".
func Summary(n int) string {
	if n == 1 {
		return "Total 1 webtoon"
	}
	return fmt.Sprintf("Total %d webtoons", n)
}
