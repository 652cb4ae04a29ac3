package support

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

var ErrRootNotFound = errors.New("repository root not found")

const rootMarker = "go.mod"

// ReadTrimmed reads a whole file and strips surrounding whitespace.
func ReadTrimmed(filePath string) (string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// CopyFile copies src to dst, replacing dst if it exists.
func CopyFile(src, dst string) error {
	source, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open source file: %w", err)
	}
	defer source.Close()

	destination, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create destination file: %w", err)
	}
	defer destination.Close()

	if _, err = io.Copy(destination, source); err != nil {
		return fmt.Errorf("failed to copy file: %w", err)
	}
	return nil
}

// TruncateFile creates the file or cuts it to zero length.
func TruncateFile(filePath string) error {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to truncate file: %w", err)
	}
	return file.Close()
}

// FindRepositoryRoot walks up from dir until it finds a go.mod.
func FindRepositoryRoot(dir string) (string, error) {
	current, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %q: %w", dir, err)
	}

	for {
		if _, statErr := os.Stat(filepath.Join(current, rootMarker)); statErr == nil {
			return current, nil
		}
		parent := filepath.Dir(current)
		if parent == current {
			return "", fmt.Errorf("%w: no %s above %s", ErrRootNotFound, rootMarker, dir)
		}
		current = parent
	}
}

// ResolvePath joins relative paths onto root and leaves absolute ones alone.
func ResolvePath(root, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}
