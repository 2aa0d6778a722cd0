// Package locate finds input files whose names may be stored in a
// different Unicode normalization form than the configured name
// (macOS keeps decomposed NFD names, configuration is usually NFC).
package locate

import (
	"os"
	"path/filepath"

	"golang.org/x/text/unicode/norm"
)

// Resolve returns dir/name when it exists. Otherwise it scans dir for the
// first entry whose NFC form equals the NFC form of name. When nothing
// matches, the original joined path is returned with found=false so the
// caller can carry on and read nothing.
func Resolve(dir, name string) (path string, found bool) {
	path = filepath.Join(dir, name)
	if _, err := os.Stat(path); err == nil {
		return path, true
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return path, false
	}

	want := norm.NFC.String(name)
	for _, e := range entries {
		if norm.NFC.String(e.Name()) == want {
			return filepath.Join(dir, e.Name()), true
		}
	}
	return path, false
}

// ResolvePath is Resolve for a path relative to base, e.g. "コエテコ/キーワード.csv".
// Only the last element is matched loosely; the directories must exist as written.
func ResolvePath(base, rel string) (string, bool) {
	full := filepath.Join(base, rel)
	return Resolve(filepath.Dir(full), filepath.Base(full))
}
