package git

import (
	"context"
	"errors"
	"strings"

	saveiterrors "saveit.dev/saveit/internal/errors"
)

// Commit creates a commit with the given message and returns git's
// informational output. A commit attempted with no staged changes
// returns ErrNothingToCommit; any other failure is returned verbatim.
func (r *CommandRunner) Commit(ctx context.Context, message string) (string, error) {
	output, err := r.Run(ctx, "commit", "-m", message)
	if err != nil {
		var cmdErr *saveiterrors.GitCommandError
		if errors.As(err, &cmdErr) && isNothingToCommit(cmdErr) {
			return "", saveiterrors.ErrNothingToCommit
		}
		return "", err
	}
	return output, nil
}


// isNothingToCommit is the only place that inspects git's human-readable
// commit error text. The substring match is brittle across git versions
// and locales; keep any future adjustment localized here.
func isNothingToCommit(err *saveiterrors.GitCommandError) bool {
	text := strings.ToLower(err.Stderr + err.Stdout)
	return strings.Contains(text, "nothing to commit")
}
