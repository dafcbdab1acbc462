// chase is a TUI arcade for terminal chase games.
//
// Usage:
//
//	chase list               - List available games
//	chase play <game>        - Play a game
//	chase menu               - Start menu to pick games interactively
//	chase serve              - Start SSH server for remote play
//	chase scores <game>      - Show high scores for a game
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.chase-arcade/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/Marcelo-Flores-A/chase-arcade/internal/games/chase"
	_ "github.com/Marcelo-Flores-A/chase-arcade/internal/games/duo"
	_ "github.com/Marcelo-Flores-A/chase-arcade/internal/games/move"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagNoAudio bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "chase",
	Short: "Chase Arcade - Outrun the predators in your terminal",
	Long: `Chase Arcade is a terminal-based gaming platform built around fruit
collecting and predator evasion.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  chase list
  chase play chase
  chase play duo
  chase menu
  chase serve --ssh :2222
  chase scores chase`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.chase-arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().BoolVar(&flagNoAudio, "no-audio", false, "Disable sound effects")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
