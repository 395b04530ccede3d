// Package mover relocates capture files into the sorted-output
// subdirectories. It is the only component that mutates the filesystem.
package mover

import (
	"fmt"
	"os"
	"path/filepath"
)

// Move renames every path into destDir, preserving base names, creating
// destDir first if needed. The first failing rename aborts the batch.
func Move(paths []string, destDir string) error {
	if len(paths) == 0 {
		return nil
	}
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return fmt.Errorf("create directory %s: %w", destDir, err)
	}
	for _, path := range paths {
		dest := filepath.Join(destDir, filepath.Base(path))
		if err := os.Rename(path, dest); err != nil {
			return fmt.Errorf("move %s to %s: %w", path, dest, err)
		}
	}
	return nil
}
