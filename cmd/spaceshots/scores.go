package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/spaceshots/internal/config"
	"github.com/vovakirdan/spaceshots/internal/platform/tui"
	"github.com/vovakirdan/spaceshots/internal/storage"
)

var (
	flagScoresTier  string
	flagScoresLimit int
	flagInteractive bool
	flagStats       bool
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best stored runs",
	Long: `Display the best runs recorded in the runs database.

Examples:
  spaceshots scores
  spaceshots scores --tier hard --limit 5
  spaceshots scores -i
  spaceshots scores --stats
  spaceshots scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresTier, "tier", "", "Only runs whose hardest level was this tier")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse runs in the terminal UI")
	scoresCmd.Flags().BoolVar(&flagStats, "stats", false, "Show totals over every stored run")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every stored run")
	scoresCmd.MarkFlagsMutuallyExclusive("stats", "clear", "interactive")
}

func runScores(_ *cobra.Command, _ []string) {
	logger := newLogger()

	if flagScoresTier != "" {
		_, err := config.ParseTier(flagScoresTier)
		exitOnError(logger, "invalid tier", err)
	}

	store, err := storage.Open(flagDBPath)
	exitOnError(logger, "could not open runs database", err)
	defer store.Close()

	switch {
	case flagClear:
		exitOnError(logger, "could not clear runs", store.ClearRuns())
		logger.Info("runs cleared", "db", flagDBPath)
		return
	case flagStats:
		stats, err := store.GetStats()
		exitOnError(logger, "could not read stats", err)
		printStats(stats)
		return
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			logger.Error("error running scoreboard", "err", err)
		}
		return
	}

	runs, err := store.TopRuns(flagScoresTier, flagScoresLimit)
	if err != nil {
		logger.Error("could not read runs", "err", err)
		return
	}

	title := "Best runs"
	if flagScoresTier != "" {
		title += " - " + flagScoresTier
	}
	fmt.Println(title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Finish 'spaceshots play' to set the first score!")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %-8s  %s\n", "Rank", "Score", "Levels", "Tier", "Attempts", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %-8s  %s\n", "----", "-----", "------", "----", "--------", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-8.0f  %-6s  %-6s  %-8d  %s\n",
			i+1, r.Score, fmt.Sprintf("%d/%d", r.LevelsWon, r.Levels), r.MaxTier, r.Attempts,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if high, err := store.HighScore(); err == nil {
		fmt.Printf("Best: %.0f\n", high)
	}
}

func printStats(s *storage.Stats) {
	fmt.Printf("runs:       %d\n", s.Runs)
	if s.Runs == 0 {
		return
	}
	fmt.Printf("best:       %.0f\n", s.HighScore)
	fmt.Printf("average:    %.1f\n", s.AvgScore)
	fmt.Printf("levels won: %d\n", s.LevelsWon)
	if !s.LastPlayed.IsZero() {
		fmt.Printf("last run:   %s\n", s.LastPlayed.Local().Format("2006-01-02 15:04"))
	}
}
