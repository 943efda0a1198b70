// Package filex has filesystem helpers for the client's local data files.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureParentDir creates the directory that will hold path, so a database
// or data file can be created there. Paths without a directory part are
// left alone. It returns the absolute form of path.
func EnsureParentDir(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("abs %s: %w", path, err)
	}

	dir := filepath.Dir(abs)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}

	return abs, nil
}

// ReadLimited reads the file at path, refusing files larger than limit bytes
// before any content is read. It returns the file size along with the data.
func ReadLimited(path string, limit int64) ([]byte, int64, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, 0, fmt.Errorf("stat %s: %w", path, err)
	}
	if fi.IsDir() {
		return nil, 0, fmt.Errorf("%s is a directory", path)
	}
	if fi.Size() > limit {
		return nil, fi.Size(), ErrTooLarge
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fi.Size(), fmt.Errorf("read %s: %w", path, err)
	}
	return data, fi.Size(), nil
}
