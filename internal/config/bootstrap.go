package config

import (
	"errors"
	"os"
	"path/filepath"
)

// EnsureFile writes the embedded default configuration to path unless a
// file is already there. It reports whether a new file was created.
func EnsureFile(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return false, err
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return false, err
		}
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return false, err
	}
	if _, err := f.Write(defaultYAML); err != nil {
		_ = f.Close()
		return false, err
	}
	return true, f.Close()
}
