package main

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Marcelo-Flores-A/chase-arcade/internal/core"
	"github.com/Marcelo-Flores-A/chase-arcade/internal/platform/tui"
	"github.com/Marcelo-Flores-A/chase-arcade/internal/registry"
	"github.com/Marcelo-Flores-A/chase-arcade/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Interactive game picker",
	Long: `Start the interactive menu to browse and play games.

Navigate with arrow keys or W/S, select with Enter, press T for the
scoreboard, Q to quit. After a game ends, you return to the menu.`,
	RunE: func(cmd *cobra.Command, args []string) error {
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

		// Menu loop: pick a game, play it, come back
		for {
			result, err := tui.RunMenu(store, sound, cfg)
			if err != nil {
				return err
			}
			if result.Quit {
				return nil
			}

			if result.WantsScoreboard {
				goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
				if err != nil {
					return err
				}
				if !goBack {
					return nil
				}
				continue
			}

			if result.GameID == "" {
				return nil
			}

			applyGameFlags(result.GameID)

			game, err := registry.Create(result.GameID)
			if err != nil {
				return err
			}

			// Fresh seed for every run unless the user pinned one
			playCfg := result.Config
			if flagSeed == 0 {
				playCfg.Seed = time.Now().UnixNano()
			}

			if err := tui.Run(game, store, sound, playCfg); err != nil {
				return err
			}
		}
	},
}
