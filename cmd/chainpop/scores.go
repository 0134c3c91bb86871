package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/avasilyev/chainpop/internal/platform/tui"
	"github.com/avasilyev/chainpop/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Browse the high-score table",
	Long: `Open an interactive table of the best recorded rounds.

Examples:
  chainpop scores
  chainpop scores --db ./scores.db`,
	Run: runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunScoreboard(store, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error showing scores: %v\n", err)
		os.Exit(1)
	}
}
