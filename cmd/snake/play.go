package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the game in the terminal.

The board needs 100x31 characters for the full layout and at least 50x31
for the narrow one. Logs go to --log-file so they do not disturb the screen.

Difficulty options:
  easy   - Slow start, slow speed-up
  normal - Config values (default 10 ticks/s, +2 per level)
  hard   - Fast start, fast speed-up
  fixed  - No speed-up between levels

Examples:
  snake play
  snake play --difficulty easy
  snake play --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: play needs a terminal; try 'snake window'")
		os.Exit(1)
	}

	// Log to a file: the terminal belongs to the game
	var logOut io.Writer = io.Discard
	if f, err := openLogFile(flagLogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	} else {
		defer f.Close()
		logOut = f
	}
	logger := newLogger(logOut)

	s, err := newSession(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		s.runtime.ScreenW = w
		s.runtime.ScreenH = h
	}

	runErr := tui.Run(s.game, s.runtime, logger)

	// Close sound and storage before potential exit
	s.Close()

	if runErr != nil {
		logger.Error("terminal frontend failed", "error", runErr)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
