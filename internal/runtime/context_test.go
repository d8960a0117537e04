package runtime_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"saveit.dev/saveit/internal/runtime"
	"saveit.dev/saveit/testhelpers"
)

func TestNewContextWithDir(t *testing.T) {
	t.Run("resolves the repo root inside a repository", func(t *testing.T) {
		dir := t.TempDir()
		_, err := testhelpers.NewGitRepo(dir, testhelpers.WithoutOrigin())
		require.NoError(t, err)

		sub := filepath.Join(dir, "nested")
		require.NoError(t, os.MkdirAll(sub, 0755))

		ctx := runtime.NewContextWithDir(context.Background(), sub)
		require.Equal(t, sub, ctx.WorkingDir)

		wantRoot, err := filepath.EvalSymlinks(dir)
		require.NoError(t, err)
		gotRoot, err := filepath.EvalSymlinks(ctx.RepoRoot)
		require.NoError(t, err)
		require.Equal(t, wantRoot, gotRoot)
	})

	t.Run("leaves the repo root empty outside a repository", func(t *testing.T) {
		dir := t.TempDir()
		ctx := runtime.NewContextWithDir(context.Background(), dir)
		require.Empty(t, ctx.RepoRoot)
		require.NotNil(t, ctx.Runner)
		require.NotNil(t, ctx.Splog)
	})
}
