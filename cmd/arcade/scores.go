package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/minigamehub/arcade/internal/registry"
	"github.com/minigamehub/arcade/internal/storage"
)

var flagScoresLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show the leaderboard of a game",
	Long: `Display the leaderboard of the specified game.

The maze ranks escapes by time (fewest moves breaking ties); the shooter
ranks runs by score.

Examples:
  arcade scores maze
  arcade scores shooter --limit 25`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", storage.DefaultLimit, "Number of runs to show")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := args[0]
	info, ok := registry.Info(gameID)
	if !ok {
		return fmt.Errorf("unknown game %q, run 'arcade list' to see available games", gameID)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	entries, err := store.Leaderboard(gameID, info.RankByTime, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	if info.RankByTime {
		fmt.Printf("Fastest Escapes - %s\n\n", info.Title)
	} else {
		fmt.Printf("High Scores - %s\n\n", info.Title)
	}

	if len(entries) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arcade play %s' to set the first record!\n", gameID)
		return nil
	}

	if info.RankByTime {
		printTimeBoard(entries)
	} else {
		printScoreBoard(entries)
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("%s runs, %s wins, best score %s, last played %s\n",
		humanize.Comma(int64(stats.GamesCount)),
		humanize.Comma(int64(stats.Wins)),
		humanize.Comma(int64(stats.HighScore)),
		humanize.Time(stats.LastPlayed),
	)
	return nil
}

func printTimeBoard(entries []storage.ScoreEntry) {
	fmt.Printf("  %-4s  %-6s  %-6s  %-7s  %s\n", "Rank", "Time", "Moves", "Size", "When")
	fmt.Printf("  %-4s  %-6s  %-6s  %-7s  %s\n", "----", "----", "-----", "----", "----")
	for i, e := range entries {
		size := fmt.Sprintf("%dx%d", e.Level, e.Level)
		fmt.Printf("  %-4d  %-6s  %-6s  %-7s  %s\n",
			i+1, formatSeconds(e.Duration), humanize.Comma(int64(e.Moves)), size, humanize.Time(e.CreatedAt))
	}
}

func printScoreBoard(entries []storage.ScoreEntry) {
	fmt.Printf("  %-4s  %-10s  %-5s  %-6s  %s\n", "Rank", "Score", "Level", "Time", "When")
	fmt.Printf("  %-4s  %-10s  %-5s  %-6s  %s\n", "----", "-----", "-----", "----", "----")
	for i, e := range entries {
		fmt.Printf("  %-4d  %-10s  %-5d  %-6s  %s\n",
			i+1, humanize.Comma(int64(e.Score)), e.Level, formatSeconds(e.Duration), humanize.Time(e.CreatedAt))
	}
}

// formatSeconds renders a duration as m:ss.
func formatSeconds(secs int) string {
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
