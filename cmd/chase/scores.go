package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/Marcelo-Flores-A/chase-arcade/internal/registry"
	"github.com/Marcelo-Flores-A/chase-arcade/internal/storage"
)

var flagResetScores bool

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores and play statistics",
	Long: `Show high scores for a game, or a per-game statistics overview when
no game is given.

Examples:
  chase scores
  chase scores chase
  chase scores chase --reset`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			return fmt.Errorf("cannot open score database: %w", err)
		}
		defer store.Close()

		if len(args) == 0 {
			if flagResetScores {
				return fmt.Errorf("--reset requires a game (try 'chase scores <game> --reset')")
			}
			return printStatsOverview(store)
		}

		gameID := args[0]
		info, ok := registry.Info(gameID)
		if !ok {
			return fmt.Errorf("unknown game %q (try 'chase list')", gameID)
		}

		if flagResetScores {
			if err := store.ClearScores(info.ID); err != nil {
				return err
			}
			fmt.Printf("Cleared scores for %s.\n", info.Title)
			return nil
		}

		if info.Players > 1 {
			return printDuoMatches(store, info)
		}
		return printTopScores(store, info)
	},
}

func init() {
	scoresCmd.Flags().BoolVar(&flagResetScores, "reset", false, "Delete all stored scores for the game")
}

func printStatsOverview(store *storage.Store) error {
	stats, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}

	fmt.Println("Play statistics:")
	fmt.Println()
	if len(stats) == 0 {
		fmt.Println("  No scores yet. Play a game first!")
		return nil
	}

	ids := make([]string, 0, len(stats))
	for id := range stats {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		gs := stats[id]
		fmt.Printf("  %-8s plays %4d   best %6d   avg %7.1f   last %s\n",
			id, gs.GamesCount, gs.HighScore, gs.AvgScore, gs.LastPlayed.Format("2006-01-02"))
	}
	return nil
}

func printTopScores(store *storage.Store, info registry.GameInfo) error {
	scores, err := store.TopScores(info.ID, 10)
	if err != nil {
		return err
	}

	fmt.Printf("High scores for %s:\n\n", info.Title)
	if len(scores) == 0 {
		fmt.Println("  No scores yet. Play a game first!")
		return nil
	}

	for i, s := range scores {
		fmt.Printf("  %2d. %6d   %s\n", i+1, s.Score, s.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(info.ID)
	if err != nil {
		return err
	}
	fmt.Printf("\nPlays: %d   Best: %d   Avg: %.1f\n", stats.GamesCount, stats.HighScore, stats.AvgScore)
	return nil
}

func printDuoMatches(store *storage.Store, info registry.GameInfo) error {
	matches, err := store.RecentDuoMatches(info.ID, 10)
	if err != nil {
		return err
	}

	fmt.Printf("Recent matches for %s:\n\n", info.Title)
	if len(matches) == 0 {
		fmt.Println("  No matches yet. Play a game first!")
		return nil
	}

	for _, m := range matches {
		winner := "Draw"
		switch m.Winner {
		case 1:
			winner = "P1"
		case 2:
			winner = "P2"
		}
		fmt.Printf("  %-4s %2d - %-2d   %s\n", winner, m.Score1, m.Score2, m.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
