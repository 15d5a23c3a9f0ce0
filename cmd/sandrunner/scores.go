package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sandrunner/internal/registry"
	"github.com/vovakirdan/sandrunner/internal/storage"
)

var flagScoresLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show the best runs",
	Long: `Display the best runs and totals for a mode, or for every mode
when none is given.

Examples:
  sandrunner scores
  sandrunner scores desert
  sandrunner scores desert_endless --limit 25`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
}

func runScores(_ *cobra.Command, args []string) error {
	games := registry.List()
	if len(args) > 0 {
		game, err := registry.Create(args[0])
		if err != nil {
			return fmt.Errorf("%w (run 'sandrunner list' to see modes)", err)
		}
		games = []registry.GameInfo{{ID: game.ID(), Title: game.Title()}}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	for i, g := range games {
		if i > 0 {
			fmt.Println()
		}
		if err := printRuns(store, g); err != nil {
			return err
		}
	}
	return nil
}

func printRuns(store *storage.Store, g registry.GameInfo) error {
	runs, err := store.TopRuns(g.ID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}

	fmt.Printf("Best Runs - %s\n", g.Title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Printf("Play 'sandrunner play %s' to set the first one!\n", g.ID)
		return nil
	}

	fmt.Printf("  %-4s  %-7s  %-5s  %-7s  %-12s  %-8s  %s\n", "Rank", "Score", "Level", "Result", "Player", "Time", "Date")
	fmt.Printf("  %-4s  %-7s  %-5s  %-7s  %-12s  %-8s  %s\n", "----", "-----", "-----", "------", "------", "----", "----")
	for i, r := range runs {
		result := "lost"
		if r.Won {
			result = "cleared"
		}
		fmt.Printf("  %-4d  %-7d  %-5d  %-7s  %-12s  %-8s  %s\n",
			i+1, r.Score, r.Level, result, r.Player, r.Duration.Round(time.Second), r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(g.ID)
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}
	fmt.Println()
	fmt.Printf("Runs: %d  Cleared: %d  Best: %d  Average: %.0f  Best level: %d  Play time: %s\n",
		stats.Runs, stats.Wins, stats.HighScore, stats.AvgScore, stats.BestLevel, stats.PlayTime.Round(time.Second))
	return nil
}
