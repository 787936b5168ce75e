package testutil

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"
)

// CreateTestArchive is a helper function that creates a zip archive with a
// given set of entry names. The file is a real zip, so it survives
// content sniffing, not just the extension check.
func CreateTestArchive(t *testing.T, dir, name string, entries []string) string {
	t.Helper()
	filePath := filepath.Join(dir, name)
	file, err := os.Create(filePath)
	if err != nil {
		t.Fatalf("Failed to create temp archive file: %v", err)
	}
	t.Cleanup(func() { file.Close() }) // Ensure file is closed after test

	zipWriter := zip.NewWriter(file)
	defer zipWriter.Close()

	for _, entry := range entries {
		_, err := zipWriter.Create(entry)
		if err != nil {
			t.Fatalf("Failed to create entry '%s' in zip: %v", entry, err)
		}
	}
	return filePath
}
