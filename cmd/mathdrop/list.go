package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mathdrop/internal/games/mathdrop"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available modes",
	Long:  `Shows every registered mode and the difficulty preset it plays with.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	if len(mathdrop.Modes) == 0 {
		fmt.Println("No modes available.")
		return
	}

	fmt.Println("Available modes:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, m := range mathdrop.Modes {
		maxIDLen = max(maxIDLen, len(m.ID))
	}

	fmt.Printf("  %-*s  %-18s  %s\n", maxIDLen, "ID", "Title", "Preset")
	fmt.Printf("  %-*s  %-18s  %s\n", maxIDLen, "--", "-----", "------")

	for _, m := range mathdrop.Modes {
		fmt.Printf("  %-*s  %-18s  %s\n", maxIDLen, m.ID, m.Title, m.Preset)
	}

	fmt.Println()
	fmt.Println("Run 'mathdrop play <id>' to play a mode.")
}
