// Package errors provides sentinel errors and custom error types for the saveit application.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	// ErrNotARepository indicates that the working directory is not inside a git work tree
	ErrNotARepository = errors.New("this directory is not a git repository")

	// ErrNothingToCommit indicates that a commit was attempted with no staged changes
	ErrNothingToCommit = errors.New("nothing to commit")
)

// GitCommandError represents an error from a git command execution
type GitCommandError struct {
	Command string
	Args    []string
	Stdout  string
	Stderr  string
	Err     error
}

func (e *GitCommandError) Error() string {
	msg := fmt.Sprintf("git command failed: %s", e.Command)
	if len(e.Args) > 0 {
		msg += fmt.Sprintf(" %v", e.Args)
	}
	if e.Stderr != "" {
		msg += fmt.Sprintf("\n%s", e.Stderr)
	}
	if e.Stdout != "" {
		msg += fmt.Sprintf("\n%s", e.Stdout)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *GitCommandError) Unwrap() error {
	return e.Err
}

// NewGitCommandError creates a new GitCommandError
func NewGitCommandError(command string, args []string, stdout, stderr string, err error) *GitCommandError {
	return &GitCommandError{
		Command: command,
		Args:    args,
		Stdout:  stdout,
		Stderr:  stderr,
		Err:     err,
	}
}

// IntegrityError represents a mismatch between the stored and actual
// checksum of the saveit executable.
type IntegrityError struct {
	Expected string
	Actual   string
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("integrity check failed!\n Expected: %s\n   Actual: %s", e.Expected, e.Actual)
}

// NewIntegrityError creates a new IntegrityError
func NewIntegrityError(expected, actual string) *IntegrityError {
	return &IntegrityError{Expected: expected, Actual: actual}
}
