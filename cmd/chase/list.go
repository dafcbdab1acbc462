package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Marcelo-Flores-A/chase-arcade/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Run: func(cmd *cobra.Command, args []string) {
		games := registry.List()

		if len(games) == 0 {
			fmt.Println("No games registered.")
			return
		}

		fmt.Println("Available games:")
		fmt.Println()
		for _, g := range games {
			players := "1 player"
			if g.Players > 1 {
				players = fmt.Sprintf("%d players", g.Players)
			}
			fmt.Printf("  %-12s %-28s (%s)\n", g.ID, g.Title, players)
		}
		fmt.Println()
		fmt.Println("Play with: chase play <game>")
	},
}
