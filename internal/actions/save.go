package actions

import (
	"errors"
	"strings"
	"time"

	saveiterrors "saveit.dev/saveit/internal/errors"
	"saveit.dev/saveit/internal/runtime"
	"saveit.dev/saveit/internal/tui"
	"saveit.dev/saveit/internal/utils"
)

// DefaultRemote is the fixed remote name pushes target
const DefaultRemote = "origin"

const timestampLayout = "2006-01-02 15:04:05"

// SaveOptions contains options for the save command
type SaveOptions struct {
	// MessageWords are the command-line arguments, joined with single
	// spaces to form the commit message. Empty means use a timestamp.
	MessageWords []string

	// Remote overrides the push remote. Defaults to DefaultRemote.
	Remote string

	// Now supplies the clock for timestamp messages. Defaults to time.Now.
	Now func() time.Time
}

// CommitMessage builds the commit message: the words joined by single
// spaces, or the current timestamp when no words were given.
func CommitMessage(words []string, now func() time.Time) string {
	if len(words) > 0 {
		return strings.Join(words, " ")
	}
	if now == nil {
		now = time.Now
	}
	return now().Format(timestampLayout)
}

// ResolveBranch reconciles the folder-derived candidate branch name
// against the actually checked-out branch. The actual branch always
// wins; a mismatch warns and is otherwise informational.
func ResolveBranch(ctx *runtime.Context) (string, error) {
	candidate := utils.BranchNameFromDir(ctx.WorkingDir)

	actual, err := ctx.Runner.GetCurrentBranch(ctx.Context)
	if err != nil {
		return "", err
	}

	if actual != candidate {
		ctx.Splog.Warn("current git branch is '%s', but folder name is '%s'. Using '%s'.",
			tui.ColorBranchName(actual), candidate, tui.ColorBranchName(actual))
	}
	return actual, nil
}

// SaveAction stages every pending change, commits with the resolved
// message, and pushes the current branch upstream. An empty commit is
// benign and still triggers the push.
func SaveAction(ctx *runtime.Context, opts SaveOptions) error {
	splog := ctx.Splog
	runner := ctx.Runner
	gctx := ctx.Context

	if !runner.IsInsideWorkTree(gctx) {
		return saveiterrors.ErrNotARepository
	}
	splog.Debug("repository root: %s", ctx.RepoRoot)

	branch, err := ResolveBranch(ctx)
	if err != nil {
		return err
	}

	remote := opts.Remote
	if remote == "" {
		remote = DefaultRemote
	}
	message := CommitMessage(opts.MessageWords, opts.Now)

	splog.Info("🔄 Staging changes...")
	if err := runner.StageAll(gctx); err != nil {
		return err
	}

	splog.Info("✏️  Committing with message: '%s'", message)
	summary, err := runner.Commit(gctx, message)
	switch {
	case errors.Is(err, saveiterrors.ErrNothingToCommit):
		splog.Info("ℹ️  Nothing to commit.")
	case err != nil:
		return err
	default:
		splog.Info("%s", summary)
	}

	splog.Info("🚀 Pushing to remote branch '%s'...", tui.ColorBranchName(branch))
	if err := runner.PushBranch(gctx, remote, branch); err != nil {
		return err
	}

	splog.Info("✅ Push complete.")
	return nil
}
