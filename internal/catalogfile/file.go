package catalogfile

import (
	"fmt"
	"os"
	"path/filepath"

	"movielib/internal/catalog"
)

// Load reads the catalog at path. A missing or unreadable file is returned
// as an error wrapping the underlying os error; an existing empty file
// yields an empty library.
func Load(path string) (*LoadResult, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer file.Close()

	result, err := Read(file)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return result, nil
}

// Save writes lib to path, replacing any previous contents. The parent
// directory is created when absent.
func Save(lib *catalog.Library, path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create catalog directory: %w", err)
		}
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("open catalog for write: %w", err)
	}
	if err := Write(file, lib); err != nil {
		_ = file.Close()
		return fmt.Errorf("save %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close catalog: %w", err)
	}
	return nil
}
