// Package cli wires the cobra command tree for saveit.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"saveit.dev/saveit/internal/actions"
	"saveit.dev/saveit/internal/runtime"
)

// NewRootCmd creates the root cobra command. The root command is the
// whole program: any arguments become the commit message words.
func NewRootCmd(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "saveit [message words...]",
		Short: "Stage, commit, and push the current working tree in one step",
		Long: `Saveit stages every pending change, commits it, and pushes the current
branch to origin with upstream tracking.

The commit message is the arguments joined by spaces, or the current
timestamp when no arguments are given. The push branch is derived from
the working directory's name, reconciled against the checked-out branch.`,
		Args:          cobra.ArbitraryArgs,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := runtime.NewContext(cmd.Context())
			if err != nil {
				return err
			}
			return actions.SaveAction(ctx, actions.SaveOptions{
				MessageWords: args,
			})
		},
	}

	return rootCmd
}
