// This file defines the materialized view of a directory entry that the
// catalog builder consumes. Enumeration fills these in one pass; nothing
// downstream goes back to disk.

package models

// FileEntry describes one item of the library directory.
type FileEntry struct {
	Path         string `json:"path"`
	Name         string `json:"name"`      // file name including extension
	BaseName     string `json:"base_name"` // file name with the extension stripped
	Extension    string `json:"extension"` // without the leading dot, as found on disk
	Size         int64  `json:"size"`
	IsFile       bool   `json:"is_file"`
	CreationTime string `json:"creation_time"` // pre-formatted; treated as opaque text
}
