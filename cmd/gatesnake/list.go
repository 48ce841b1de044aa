package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gate-snake/internal/games/snake"
	"github.com/vovakirdan/gate-snake/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List modes and stages",
	Long:  `Shows the registered game modes and the stage table of the active configuration.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No modes available.")
		return
	}

	fmt.Println("Modes:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	fmt.Println()
	fmt.Println("Stages:")
	fmt.Println()
	for i, name := range snake.LevelNames() {
		fmt.Printf("  %d. %s\n", i+1, name)
	}

	fmt.Println()
	fmt.Println("Run 'gatesnake play <id>' to play a mode.")
}
