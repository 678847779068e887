package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mathdrop/internal/registry"
	"github.com/vovakirdan/mathdrop/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresRun   string
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores for a mode",
	Long: `Display the top runs for the specified mode, or the most recent runs
across all modes when no mode is given.

Examples:
  mathdrop scores classic
  mathdrop scores zen --limit 20
  mathdrop scores
  mathdrop scores --run 0b6c1f0e-7d1b-4a8e-9b7e-2f1d3c4b5a69
  mathdrop scores hard --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().StringVar(&flagScoresRun, "run", "", "Show a single run by its ID")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every stored run of the mode")
}

func runScores(_ *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagScoresRun != "" {
		return showRun(store, flagScoresRun)
	}

	if len(args) == 0 {
		return showRecent(store)
	}

	modeID := args[0]
	game, err := registry.Create(modeID)
	if err != nil {
		return fmt.Errorf("%w (run 'mathdrop list' to see available modes)", err)
	}

	if flagScoresClear {
		if err := store.ClearRuns(modeID); err != nil {
			return err
		}
		fmt.Printf("Cleared all runs of %s.\n", game.Title())
		return nil
	}

	runs, err := store.TopRuns(modeID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'mathdrop play %s' to set the first high score!\n", modeID)
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-5s  %-6s  %-6s  %s\n", "Rank", "Score", "Level", "Solved", "Time", "Date")
	fmt.Printf("  %-4s  %-8s  %-5s  %-6s  %-6s  %s\n", "----", "-----", "-----", "------", "----", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-8d  %-5d  %-6d  %-6s  %s\n",
			i+1, r.Score, r.Level, r.Solved, playTime(r), r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats(modeID)
	if err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  |  Runs: %d  |  Best level: %d  |  Total solved: %d\n",
			stats.BestScore, stats.Runs, stats.BestLevel, stats.TotalSolved)
	}
	return nil
}

func showRecent(store *storage.Store) error {
	runs, err := store.RecentRuns(flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Println("Recent runs")
	fmt.Println()
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	fmt.Printf("  %-8s  %-8s  %-5s  %-16s  %s\n", "Mode", "Score", "Level", "Date", "Run")
	fmt.Printf("  %-8s  %-8s  %-5s  %-16s  %s\n", "----", "-----", "-----", "----", "---")
	for _, r := range runs {
		fmt.Printf("  %-8s  %-8d  %-5d  %-16s  %s\n",
			r.Mode, r.Score, r.Level, r.CreatedAt.Format("2006-01-02 15:04"), r.RunID)
	}
	return nil
}

func showRun(store *storage.Store, runID string) error {
	r, err := store.RunByID(runID)
	if errors.Is(err, storage.ErrRunNotFound) {
		return fmt.Errorf("no run with ID %q", runID)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Run %s\n\n", r.RunID)
	fmt.Printf("  Mode:    %s\n", r.Mode)
	fmt.Printf("  Score:   %d\n", r.Score)
	fmt.Printf("  Level:   %d\n", r.Level)
	fmt.Printf("  Solved:  %d\n", r.Solved)
	fmt.Printf("  Time:    %s\n", playTime(r))
	fmt.Printf("  Played:  %s\n", r.CreatedAt.Format("2006-01-02 15:04:05"))
	return nil
}

// playTime formats a run's duration as m:ss.
func playTime(r storage.Run) string {
	secs := int(r.Duration.Seconds())
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
