package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mathdrop/internal/platform/tui"
	"github.com/vovakirdan/mathdrop/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start Math Drop with a mode picker menu",
	Long: `Start Math Drop in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a mode.
After a game ends, quit it to return to the menu and play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select mode
  Tab          - High scores
  Q            - Quit

Examples:
  mathdrop menu
  mathdrop menu --fps 30
  mathdrop menu --db ./scores.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	if err := checkConfig(); err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	sound := openSound()
	if sound != nil {
		defer sound.Cleanup()
	}

	cfg := terminalConfig()

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				return sbErr
			}
			if goBack {
				continue
			}
			return nil
		}

		game, err := registry.Create(menuResult.ModeID)
		if err != nil {
			logger.Error("could not create game", "mode", menuResult.ModeID, "error", err)
			continue
		}

		// Fresh seed for each game unless one was given
		runCfg := cfg
		if runCfg.Seed == 0 {
			runCfg.Seed = time.Now().UnixNano()
		}

		if err := tui.Run(game, runCfg, playOptions(store, sound)); err != nil {
			logger.Warn("game ended with an error", "mode", game.ID(), "error", err)
		}
	}
}
