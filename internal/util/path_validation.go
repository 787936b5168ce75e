package util

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ValidateFolderPath checks if a folder path is valid and accessible.
// If the path doesn't exist, it is created, so a validated path can be
// written to immediately afterwards.
// Returns an error if the path is invalid or cannot be accessed/created.
func ValidateFolderPath(folderPath string, basePath string) error {
	if folderPath == "" {
		return fmt.Errorf("folder path cannot be empty")
	}

	// Clean the path to remove any directory traversal attempts
	cleanPath := filepath.Clean(folderPath)

	// Check for directory traversal attempts
	if strings.Contains(folderPath, "..") {
		return fmt.Errorf("folder path contains invalid directory traversal")
	}

	// If the path is absolute, validate it directly
	if filepath.IsAbs(cleanPath) {
		return validateAbsolutePath(cleanPath)
	}

	// For relative paths, join with base path
	fullPath := filepath.Join(basePath, cleanPath)
	return validateAbsolutePath(fullPath)
}

// validateAbsolutePath validates an absolute path
func validateAbsolutePath(fullPath string) error {
	// Check if the path already exists
	info, err := os.Stat(fullPath)
	if err == nil {
		// Path exists, check if it's a directory
		if !info.IsDir() {
			return fmt.Errorf("path exists but is not a directory: %s", fullPath)
		}
		// Check if we have write permissions
		if err := checkWritePermission(fullPath); err != nil {
			return fmt.Errorf("no write permission for existing directory: %w", err)
		}
		return nil
	}

	// Path doesn't exist, create it
	if os.IsNotExist(err) {
		return createPath(fullPath)
	}

	// Other error (permission denied, etc.)
	return fmt.Errorf("cannot access path: %w", err)
}

// checkWritePermission checks if we have write permission to a directory
func checkWritePermission(dirPath string) error {
	// Try to create a temporary file in the directory
	tempFile := filepath.Join(dirPath, ".toondex_temp_check")
	file, err := os.Create(tempFile)
	if err != nil {
		return err
	}
	file.Close()

	// Clean up the temporary file
	os.Remove(tempFile)
	return nil
}

// createPath creates a directory at the given path. The directory is
// kept in place: callers validate a path precisely because they are
// about to write into it.
func createPath(fullPath string) error {
	if err := os.MkdirAll(fullPath, 0755); err != nil {
		return fmt.Errorf("cannot create directory: %w", err)
	}
	if err := checkWritePermission(fullPath); err != nil {
		return fmt.Errorf("no write permission for created directory: %w", err)
	}
	return nil
}
