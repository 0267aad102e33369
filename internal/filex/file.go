// Package filex contains filesystem helpers.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureParentDir creates the directory that will hold the file at path,
// including missing parents. Paths without a directory part and SQLite
// special names such as ":memory:" are left alone.
func EnsureParentDir(path string) (string, error) {
	if path == "" || path == ":memory:" || filepath.Base(path) == path {
		return "", nil
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return dir, nil
}
