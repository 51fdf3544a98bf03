package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a native window",
	Long: `Open a window the size of the board (1000x600 by default) and play
there. Closing the window quits like Q does. Logs go to stderr.

Examples:
  snake window
  snake window --difficulty hard --debug`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func runWindow(_ *cobra.Command, _ []string) {
	logger := newLogger(os.Stderr)

	s, err := newSession(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer s.Close()

	if err := window.Run(s.game, s.runtime, logger); err != nil {
		logger.Error("window frontend failed", "error", err)
	}
}
