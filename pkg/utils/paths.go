package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureDir creates dir and any missing parents
func EnsureDir(dir string) error {
	if dir == "" || dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}

// EnsureParentDir creates the directory that will hold filePath
func EnsureParentDir(filePath string) error {
	return EnsureDir(filepath.Dir(filePath))
}
