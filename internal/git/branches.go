package git

import (
	"context"
	"fmt"
)

// GetCurrentBranch returns the abbreviated ref name of HEAD
func (r *CommandRunner) GetCurrentBranch(ctx context.Context) (string, error) {
	output, err := r.Run(ctx, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", fmt.Errorf("failed to get current branch: %w", err)
	}
	return output, nil
}

