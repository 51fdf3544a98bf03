// snake is a snake arcade game for the terminal and the desktop.
//
// Usage:
//
//	snake                    - Play in the terminal (same as "snake play")
//	snake play               - Play in the terminal
//	snake window             - Play in a native window
//	snake scores             - Show recorded runs
//	snake scores export      - Write all runs as CSV
//	snake scores clear       - Delete the run history
//
// Global flags:
//
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Use a custom config YAML
//	--difficulty <name>   - Speed preset: easy, normal, hard, fixed
//	--db <path>           - Run history database (default: ~/.snake/history.db)
//	--score-file <path>   - High score file (default: highscore.json)
//	--sounds <dir>        - Directory holding the sound assets
//	--mute                - Disable sound
//	--debug               - Verbose logging
//	--log-file <path>     - Log file for terminal play (default: ~/.snake/snake.log)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagDBPath     string
	flagScoreFile  string
	flagSounds     string
	flagMute       bool
	flagDebug      bool
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake Pro - the classic snake game with power-ups and levels",
	Long: `Snake Pro is a snake game on a wrapping board. Eat food to grow,
grab power-ups before they vanish, and steer around the obstacles that
appear every level while the game speeds up.

Controls:
  Arrows  - Steer
  C       - Start / replay
  P       - Pause
  Q       - Quit

Examples:
  snake
  snake window --difficulty hard
  snake play --seed 42 --mute
  snake scores --recent
  snake scores export runs.csv`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagDBPath, "db", "", "Path to run history database (default from config)")
	pf.StringVar(&flagScoreFile, "score-file", "", "Path to high score file (default from config)")
	pf.StringVar(&flagSounds, "sounds", "", "Directory with sound assets (default from config)")
	pf.BoolVar(&flagMute, "mute", false, "Disable sound")
	pf.BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	pf.StringVar(&flagLogFile, "log-file", "~/.snake/snake.log", "Log file used while playing in the terminal")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(scoresCmd)
}
