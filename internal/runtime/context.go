// Package runtime provides a context type that holds the git runner and
// logger for use throughout the application. This avoids passing multiple
// parameters.
package runtime

import (
	"context"
	"os"

	"saveit.dev/saveit/internal/git"
	"saveit.dev/saveit/internal/tui"
)

// Context provides access to the git runner and output for commands
type Context struct {
	Context    context.Context
	Runner     *git.CommandRunner
	Splog      *tui.Splog
	WorkingDir string
	RepoRoot   string // empty when the working directory is not inside a repository
}

// NewContext creates a context rooted at the process working directory
func NewContext(ctx context.Context) (*Context, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return NewContextWithDir(ctx, wd), nil
}

// NewContextWithDir creates a context rooted at the given directory.
// The repo root is resolved here; outside a repository it stays empty
// and the save action reports the condition itself.
func NewContextWithDir(ctx context.Context, dir string) *Context {
	c := &Context{
		Context:    ctx,
		Runner:     git.NewCommandRunner(dir),
		Splog:      tui.NewSplog(),
		WorkingDir: dir,
	}
	if root, err := git.GetRepoRoot(dir); err == nil {
		c.RepoRoot = root
	}
	return c
}
