// This file defines the core data structures (models) for our application.
// These structs represent the webtoon records and platforms in the catalog.

package models

import "fmt"

// Webtoon represents a single catalog record decoded from an archive
// file name. Every field is comparable, so the struct itself serves as
// the de-duplication key: two records are duplicates only when all
// fields match.
type Webtoon struct {
	Title         string `json:"title"`
	Authors       string `json:"authors"`
	Platform      string `json:"platform"`
	Completed     bool   `json:"completed"`
	CreationTime  string `json:"creation_time"`
	FileExtension string `json:"file_extension"`
	Size          int64  `json:"size"`
}

// String renders the record as the one-line form printed during a
// catalog build.
func (w Webtoon) String() string {
	line := fmt.Sprintf("[%s] %s", w.Platform, w.Title)
	if w.Authors != "" {
		line += " by " + w.Authors
	}
	if w.Completed {
		line += " (completed)"
	}
	return line
}
