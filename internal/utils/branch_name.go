// Package utils provides shared utility functions.
package utils

import (
	"path/filepath"
	"strings"
)

// BranchNameFromDir derives the candidate branch name from a working
// directory path: its final path segment.
func BranchNameFromDir(dir string) string {
	return filepath.Base(strings.TrimRight(dir, string(filepath.Separator)))
}
