package git

import (
	"context"
	"fmt"
)

// sslNoVerifyEnv disables certificate verification for a single git
// invocation. It rides on a copy of the process environment; the ambient
// environment is never touched.
var sslNoVerifyEnv = []string{"GIT_SSL_NO_VERIFY=true"}

// PushBranch pushes a branch to the named remote, setting up the remote
// tracking relationship (-u). Certificate verification is disabled for
// this invocation only.
func (r *CommandRunner) PushBranch(ctx context.Context, remote, branchName string) error {
	_, err := r.RunWithEnv(ctx, sslNoVerifyEnv, "push", "-u", remote, branchName)
	if err != nil {
		return fmt.Errorf("failed to push branch %s: %w", branchName, err)
	}
	return nil
}

