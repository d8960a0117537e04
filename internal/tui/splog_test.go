package tui_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"saveit.dev/saveit/internal/tui"
)

func TestSplog(t *testing.T) {
	t.Run("info writes bare messages", func(t *testing.T) {
		var buf bytes.Buffer
		splog := tui.NewSplogWithWriter(&buf)
		splog.Info("staging %d files", 3)
		require.Equal(t, "staging 3 files\n", buf.String())
	})

	t.Run("warn and error carry prefixes", func(t *testing.T) {
		var buf bytes.Buffer
		splog := tui.NewSplogWithWriter(&buf)
		splog.Warn("branch mismatch")
		splog.Error("push failed")
		require.Contains(t, buf.String(), "⚠️  branch mismatch")
		require.Contains(t, buf.String(), "❌ push failed")
	})

	t.Run("file logging writes through lumberjack", func(t *testing.T) {
		logFile := filepath.Join(t.TempDir(), "logs", "saveit.log")

		var buf bytes.Buffer
		splog, err := tui.NewSplogWithConfig(&buf, logFile)
		require.NoError(t, err)

		splog.Info("hello")
		require.NoError(t, splog.Close())

		data, err := os.ReadFile(logFile)
		require.NoError(t, err)
		require.Contains(t, string(data), "hello")
	})
}
