package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brick-arcade/internal/registry"
	"github.com/vovakirdan/brick-arcade/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores <mode>",
	Short: "Show score history for a mode",
	Long: `Display the best finished runs for the specified mode,
with difficulty, result and a summary line.

Examples:
  bricks scores classic
  bricks scores reborn --limit 25
  bricks scores classic --clear`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the history of this mode")
}

func runScores(_ *cobra.Command, args []string) {
	modeID := args[0]

	if !registry.Exists(modeID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", modeID)
		fmt.Fprintln(os.Stderr, "Run 'bricks list' to see available modes.")
		os.Exit(1)
	}

	game, err := registry.Create(modeID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating mode: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(modeID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			return
		}
		fmt.Printf("Cleared score history for %s.\n", title)
		return
	}

	runs, err := store.TopScores(modeID, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'bricks play %s' to set the first high score!\n", modeID)
		return
	}

	fmt.Printf("  %-4s  %-10s  %-8s  %-6s  %s\n", "Rank", "Score", "Level", "Result", "Date")
	fmt.Printf("  %-4s  %-10s  %-8s  %-6s  %s\n", "----", "-----", "-----", "------", "----")
	for i, r := range runs {
		result := "Lose"
		if r.Won {
			result = "Win"
		}
		fmt.Printf("  %-4d  %-10d  %-8s  %-6s  %s\n",
			i+1, r.Score, r.Difficulty.Title(), result, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	stats, err := store.Stats()
	if err != nil {
		return
	}
	if ms, ok := stats[modeID]; ok {
		fmt.Printf("Runs: %d  Wins: %d  Best: %d  Avg: %.0f\n", ms.Runs, ms.Wins, ms.HighScore, ms.AvgScore)
	}
}
