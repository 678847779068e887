// mathdrop is a falling-block arithmetic puzzle for the terminal.
//
// Usage:
//
//	mathdrop list              - List available modes
//	mathdrop play <mode>       - Play a mode
//	mathdrop menu              - Start menu to pick modes interactively
//	mathdrop serve             - Start SSH server for remote play
//	mathdrop scores [mode]     - Show high scores for a mode, or recent runs
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 60)
//	--seed <value>   - Set RNG seed for reproducible gameplay
//	--db <path>      - Set database path (default: ~/.mathdrop/scores.db)
//	--config <path>  - Use a custom mathdrop.yaml
//	--difficulty <p> - Override the mode's difficulty preset
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/mathdrop/internal/config"
	"github.com/vovakirdan/mathdrop/internal/games/mathdrop"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagConfig string
	flagPreset string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "mathdrop",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mathdrop",
	Short: "Math Drop - solve the sums before the fruit lands",
	Long: `Math Drop is a falling-block arithmetic puzzle for the terminal.

Expressions fall down five columns. Type an answer to pop the lowest
matching item. Landed items stack into fruit blocks; solving an item
that matches a block group clears the whole group, and typing the sum
of everything on screen clears every colour in play.

Available commands:
  list     - Show all available modes
  play     - Play a specific mode directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  mathdrop list
  mathdrop play classic
  mathdrop menu
  mathdrop serve --ssh :2222
  mathdrop scores zen`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		mathdrop.SetConfigPath(flagConfig)
		if flagPreset == "" {
			return nil
		}
		preset, err := config.ParsePreset(flagPreset)
		if err != nil {
			return err
		}
		mathdrop.SetDifficultyPreset(preset)
		return nil
	},
}

// checkConfig loads the config of every mode so a bad --config file or
// MATHDROP_* value stops the command instead of silently falling back.
func checkConfig() error {
	for _, m := range mathdrop.Modes {
		if _, err := m.LoadConfig(); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.mathdrop/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom mathdrop.yaml")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "difficulty", "", "Override the mode's preset: easy, normal, hard, fixed")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
