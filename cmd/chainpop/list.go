package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avasilyev/chainpop/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all play modes",
	Long:  `Shows a list of all registered play modes.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	modes := registry.List()

	if len(modes) == 0 {
		fmt.Println("No play modes available.")
		return
	}

	fmt.Println("Available play modes:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, m := range modes {
		if len(m.ID) > maxIDLen {
			maxIDLen = len(m.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, m := range modes {
		fmt.Printf("  %-*s  %s\n", maxIDLen, m.ID, m.Title)
	}

	fmt.Println()
	fmt.Println("Run 'chainpop play <id>' to play a mode.")
}
