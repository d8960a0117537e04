// Package git provides low-level Git operations.
//
// It wraps git command execution and provides a Go-friendly interface for:
//   - Work tree detection and repo root resolution
//   - Staging and committing
//   - Pushing to a remote with upstream tracking
//
// This package should be the only place where direct git commands are executed.
package git
