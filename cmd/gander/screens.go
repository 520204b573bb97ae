package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gander/internal/registry"
)

var screensCmd = &cobra.Command{
	Use:   "screens",
	Short: "List all registered screens",
	Long:  `Shows every screen that can be pushed by id, including the debug overlay.`,
	Run:   runScreens,
}

func runScreens(cmd *cobra.Command, args []string) {
	screens := registry.List()

	if len(screens) == 0 {
		fmt.Println("No screens registered.")
		return
	}

	fmt.Println("Registered screens:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, s := range screens {
		if len(s.ID) > maxIDLen {
			maxIDLen = len(s.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, s := range screens {
		fmt.Printf("  %-*s  %s\n", maxIDLen, s.ID, s.Title)
	}

	fmt.Println()
	fmt.Println("Run 'gander play <id>' to start on a screen.")
}
