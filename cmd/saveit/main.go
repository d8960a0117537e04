package main

import (
	"os"

	"saveit.dev/saveit/internal/cli"
	"saveit.dev/saveit/internal/integrity"
	"saveit.dev/saveit/internal/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	splog := tui.NewSplog()
	defer func() { _ = splog.Close() }()

	status, err := integrity.VerifySelf()
	if err != nil {
		splog.Error("%v", err)
		os.Exit(1)
	}
	if status.Stored {
		splog.Info("🔖 Initial checksum stored: %s", status.Checksum)
	}

	rootCmd := cli.NewRootCmd(version, commit, date)
	if err := rootCmd.Execute(); err != nil {
		// The single exit path for every fatal condition
		splog.Error("%v", err)
		os.Exit(1)
	}
}
