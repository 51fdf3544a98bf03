package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/highscore"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagLimit       int
	flagRecent      bool
	flagInteractive bool
	flagYes         bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show recorded runs",
	Long: `Display the best (or most recent) runs from the run history, along
with the stored high score.

Examples:
  snake scores
  snake scores --recent --limit 5
  snake scores -i`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

var scoresExportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export all runs as CSV",
	Long: `Write every recorded run as CSV, oldest first. Without a file
argument the CSV goes to stdout.

Examples:
  snake scores export
  snake scores export runs.csv`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScoresExport,
}

var scoresClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete the run history",
	Long: `Delete every recorded run. The high score file is left alone.
Requires --yes.`,
	Args: cobra.NoArgs,
	Run:  runScoresClear,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagLimit, "limit", "n", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "Show the most recent runs instead of the best")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse runs in a full-screen table")
	scoresClearCmd.Flags().BoolVar(&flagYes, "yes", false, "Confirm deleting the run history")

	scoresCmd.AddCommand(scoresExportCmd)
	scoresCmd.AddCommand(scoresClearCmd)
}

// openHistory opens the run history named by the config and flags.
func openHistory() (*storage.Store, config.SnakeConfig) {
	cfg, err := loadConfig(newLogger(os.Stderr))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(cfg.Storage.HistoryDB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run history: %v\n", err)
		os.Exit(1)
	}
	return store, cfg
}

func runScores(_ *cobra.Command, _ []string) {
	store, cfg := openHistory()
	defer store.Close()

	if flagInteractive {
		width, height := 80, 24 // Defaults
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	var (
		runs []storage.Run
		err  error
	)
	if flagRecent {
		runs, err = store.RecentRuns(flagLimit)
	} else {
		runs, err = store.TopRuns(flagLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	scoreFile, _ := config.ExpandHome(cfg.Storage.HighScoreFile)
	best, _ := highscore.New(scoreFile).Load()
	if dbBest, err := store.HighScore(); err == nil {
		best = max(best, dbBest)
	}
	printRuns(os.Stdout, runs, flagRecent, best)

	if stats, err := store.Stats(); err == nil && stats.RunsCount > 0 {
		fmt.Printf("Runs: %d  Average: %.1f  Best level: %d\n", stats.RunsCount, stats.AvgScore, stats.BestLevel)
	}
}

// printRuns writes a plain table of runs.
func printRuns(w io.Writer, runs []storage.Run, recent bool, best int) {
	title := "Top Runs"
	if recent {
		title = "Recent Runs"
	}
	fmt.Fprintf(w, "%s - Snake Pro\n\n", title)

	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'snake play' to set the first high score!")
		return
	}

	// Print header
	fmt.Fprintf(w, "  %-4s  %-8s  %-5s  %-6s  %-6s  %s\n", "Rank", "Score", "Level", "Length", "Time", "Date")
	fmt.Fprintf(w, "  %-4s  %-8s  %-5s  %-6s  %-6s  %s\n", "----", "-----", "-----", "------", "----", "----")

	for i, row := range tui.RunRows(runs) {
		fmt.Fprintf(w, "  %-4d  %-8s  %-5s  %-6s  %-6s  %s\n",
			i+1, row[1], row[2], row[3], row[4], runs[i].CreatedAt.Local().Format("2006-01-02 15:04"))
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "High score: %d  (* = new high score at the time)\n", best)
}

func runScoresExport(_ *cobra.Command, args []string) {
	store, _ := openHistory()
	defer store.Close()

	out := io.Writer(os.Stdout)
	if len(args) == 1 {
		f, err := os.Create(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}

	n, err := store.ExportCSV(out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting runs: %v\n", err)
		os.Exit(1)
	}
	if len(args) == 1 {
		fmt.Fprintf(os.Stderr, "Exported %d runs to %s\n", n, args[0])
	}
}

func runScoresClear(_ *cobra.Command, _ []string) {
	if !flagYes {
		fmt.Fprintln(os.Stderr, "Refusing to delete the run history without --yes")
		os.Exit(1)
	}

	store, _ := openHistory()
	defer store.Close()

	if err := store.ClearRuns(); err != nil {
		fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Run history cleared.")
}
