package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Marcelo-Flores-A/chase-arcade/internal/audio"
	"github.com/Marcelo-Flores-A/chase-arcade/internal/core"
	chasegame "github.com/Marcelo-Flores-A/chase-arcade/internal/games/chase"
	"github.com/Marcelo-Flores-A/chase-arcade/internal/games/duo"
	"github.com/Marcelo-Flores-A/chase-arcade/internal/games/move"
	"github.com/Marcelo-Flores-A/chase-arcade/internal/platform/tui"
	"github.com/Marcelo-Flores-A/chase-arcade/internal/registry"
	"github.com/Marcelo-Flores-A/chase-arcade/internal/storage"
)

var (
	flagConfigPath string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Play a game directly by its ID.

Examples:
  chase play chase
  chase play chase --difficulty hard
  chase play duo
  chase play move --config custom.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		gameID := args[0]

		applyGameFlags(gameID)

		game, err := registry.Create(gameID)
		if err != nil {
			return fmt.Errorf("unknown game %q (try 'chase list')", gameID)
		}

		// Detect terminal size
		width, height, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil {
			width, height = 80, 24
		}

		cfg := core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		}

		// Score persistence is best-effort, play without it on failure
		store, err := storage.Open(flagDBPath)
		if err != nil {
			log.Warn("cannot open score database, scores will not be saved", "err", err)
			store = nil
		}
		if store != nil {
			defer store.Close()
		}

		sound := openAudio()
		defer sound.Cleanup()

		return tui.Run(game, store, sound, cfg)
	},
}

func init() {
	playCmd.Flags().StringVar(&flagConfigPath, "config", "", "Path to game config YAML (default: embedded)")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

// applyGameFlags forwards the --config and --difficulty flags to the
// package-level setters of the selected game.
func applyGameFlags(gameID string) {
	switch gameID {
	case "chase":
		chasegame.SetConfigPath(flagConfigPath)
		chasegame.SetDifficultyPreset(flagDifficulty)
	case "move":
		move.SetConfigPath(flagConfigPath)
	case "duo":
		duo.SetConfigPath(flagConfigPath)
	}
}

// openAudio builds the sound manager, honoring --no-audio. The returned
// manager is always safe to use; it degrades to silence when the host has
// no audio device.
func openAudio() *audio.Manager {
	sound := audio.NewManager()
	if !flagNoAudio {
		sound.Initialize()
		sound.StartMusic()
	}
	return sound
}
