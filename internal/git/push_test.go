package git_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	saveiterrors "saveit.dev/saveit/internal/errors"
	"saveit.dev/saveit/internal/git"
	"saveit.dev/saveit/testhelpers"
)

// installFakeGit puts a git stand-in first on PATH that dumps its
// environment to a file, so tests can inspect what a child process
// actually received.
func installFakeGit(t *testing.T) string {
	t.Helper()
	binDir := t.TempDir()
	dumpFile := filepath.Join(binDir, "env.dump")
	script := fmt.Sprintf("#!/bin/sh\nenv > %q\nexit 0\n", dumpFile)
	require.NoError(t, os.WriteFile(filepath.Join(binDir, "git"), []byte(script), 0755))
	t.Setenv("PATH", binDir+string(os.PathListSeparator)+os.Getenv("PATH"))
	return dumpFile
}

func TestPushBranch(t *testing.T) {
	t.Run("pushes with upstream tracking", func(t *testing.T) {
		dir := t.TempDir()
		repo, err := testhelpers.NewGitRepo(dir, testhelpers.WithBranch("work"))
		require.NoError(t, err)
		require.NoError(t, repo.CommitChange("file.txt", "content", "init"))

		runner := git.NewCommandRunner(dir)
		require.NoError(t, runner.PushBranch(context.Background(), "origin", "work"))

		localSHA, err := repo.RunGitCommandAndGetOutput("rev-parse", "work")
		require.NoError(t, err)
		remoteSHA, err := repo.RemoteBranchSHA("work")
		require.NoError(t, err)
		require.Equal(t, localSHA, remoteSHA)

		upstream, err := repo.RunGitCommandAndGetOutput("rev-parse", "--abbrev-ref", "work@{upstream}")
		require.NoError(t, err)
		require.Equal(t, "origin/work", upstream)
	})

	t.Run("disables certificate verification for the push invocation only", func(t *testing.T) {
		dumpFile := installFakeGit(t)

		runner := git.NewCommandRunner(t.TempDir())
		require.NoError(t, runner.PushBranch(context.Background(), "origin", "work"))

		data, err := os.ReadFile(dumpFile)
		require.NoError(t, err)
		require.Contains(t, string(data), "GIT_SSL_NO_VERIFY=true")

		// The override rode on a copy; the ambient environment is untouched
		require.NotContains(t, os.Environ(), "GIT_SSL_NO_VERIFY=true")
	})

	t.Run("ordinary commands run without the override", func(t *testing.T) {
		dumpFile := installFakeGit(t)

		runner := git.NewCommandRunner(t.TempDir())
		_, err := runner.Run(context.Background(), "status")
		require.NoError(t, err)

		data, err := os.ReadFile(dumpFile)
		require.NoError(t, err)
		require.NotContains(t, string(data), "GIT_SSL_NO_VERIFY")
	})

	t.Run("missing remote is a command error", func(t *testing.T) {
		dir := t.TempDir()
		repo, err := testhelpers.NewGitRepo(dir, testhelpers.WithoutOrigin())
		require.NoError(t, err)
		require.NoError(t, repo.CommitChange("file.txt", "content", "init"))

		runner := git.NewCommandRunner(dir)
		err = runner.PushBranch(context.Background(), "origin", "main")
		require.Error(t, err)

		var cmdErr *saveiterrors.GitCommandError
		require.True(t, errors.As(err, &cmdErr))
	})
}

func TestStageAll(t *testing.T) {
	dir := t.TempDir()
	repo, err := testhelpers.NewGitRepo(dir, testhelpers.WithoutOrigin())
	require.NoError(t, err)
	require.NoError(t, repo.CommitChange("tracked.txt", "v1", "init"))
	require.NoError(t, repo.CreateChange("tracked.txt", "v2"))
	require.NoError(t, repo.CreateChange("untracked.txt", "new"))

	runner := git.NewCommandRunner(dir)
	require.NoError(t, runner.StageAll(context.Background()))

	staged, err := runner.HasStagedChanges(context.Background())
	require.NoError(t, err)
	require.True(t, staged)

	status, err := repo.RunGitCommandAndGetOutput("status", "--porcelain")
	require.NoError(t, err)
	require.Contains(t, status, "M  tracked.txt")
	require.Contains(t, status, "A  untracked.txt")
}
