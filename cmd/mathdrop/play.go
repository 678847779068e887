package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/mathdrop/internal/audio"
	"github.com/vovakirdan/mathdrop/internal/core"
	"github.com/vovakirdan/mathdrop/internal/platform/tui"
	"github.com/vovakirdan/mathdrop/internal/registry"
	"github.com/vovakirdan/mathdrop/internal/storage"
)

var (
	flagSound bool
	flagMusic bool
)

var playCmd = &cobra.Command{
	Use:   "play <mode>",
	Short: "Play a mode",
	Long: `Start playing the specified mode.

Controls:
  0-9        - Type an answer (checked after every digit)
  Backspace  - Delete the last digit
  Ctrl+U/Del - Clear the answer
  P/Esc      - Pause
  M          - Mute
  R          - Restart (after game over)
  Q/Ctrl+C   - Quit

Modes:
  classic - Normal speed, levels up every 5 solves
  easy    - Slower falls and spawns
  hard    - Starts at level 3, faster falls and spawns
  zen     - Slow and steady, no level progression

Examples:
  mathdrop play classic
  mathdrop play zen --sound=false
  mathdrop play hard --seed 42
  mathdrop play classic --config ./my-mathdrop.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	for _, c := range []*cobra.Command{playCmd, menuCmd} {
		c.Flags().BoolVar(&flagSound, "sound", true, "Play sound effects")
		c.Flags().BoolVar(&flagMusic, "music", true, "Play background music (needs --sound)")
	}
}

// terminalConfig builds the runtime config from the terminal size and flags.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the score database. Failure is not fatal: the game
// still runs, it just keeps no scores.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// openSound starts the speaker when sound is enabled. Returns nil when
// sound is off or no audio device is available.
func openSound() *audio.SoundManager {
	if !flagSound {
		return nil
	}
	sm := audio.NewSoundManager()
	if err := sm.Initialize(); err != nil {
		logger.Warn("sound disabled", "error", err)
		return nil
	}
	if flagMusic {
		sm.StartMusic()
	}
	return sm
}

// playOptions wires the optional collaborators into tui options.
func playOptions(store *storage.Store, sound *audio.SoundManager) tui.Options {
	opts := tui.Options{Store: store}
	if sound != nil {
		opts.Sound = sound
	}
	return opts
}

func runPlay(_ *cobra.Command, args []string) error {
	modeID := args[0]
	if err := checkConfig(); err != nil {
		return err
	}

	game, err := registry.Create(modeID)
	if err != nil {
		return fmt.Errorf("%w (run 'mathdrop list' to see available modes)", err)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	sound := openSound()
	if sound != nil {
		defer sound.Cleanup()
	}

	return tui.Run(game, terminalConfig(), playOptions(store, sound))
}
