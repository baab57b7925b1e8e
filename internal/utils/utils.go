package utils

import "os"

const DefaultDirPerm = 0o755

// EnsureDir creates dir and any missing parents. An existing directory is not an error.
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, DefaultDirPerm)
}

// Preview returns the first limit characters of s, or s itself when it is shorter.
// Characters are counted as runes, so a multi-byte character is never split.
func Preview(s string, limit int) string {
	if limit <= 0 {
		return ""
	}

	if len(s) <= limit {
		return s
	}

	count := 0
	for i := range s {
		if count == limit {
			return s[:i]
		}
		count++
	}

	return s
}
