package main

import (
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/avasilyev/chainpop/internal/config"
	"github.com/avasilyev/chainpop/internal/storage"
)

var shareCmd = &cobra.Command{
	Use:   "share",
	Short: "Copy your last result to the clipboard",
	Long: `Format your most recent round as a short brag line and copy it to
the system clipboard.

Examples:
  chainpop share
  chainpop share --name vova`,
	Run: runShare,
}

func runShare(_ *cobra.Command, _ []string) {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	player := cfg.Player.Name
	if flagName != "" {
		player = flagName
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	last, err := store.LastRound(player)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading rounds: %v\n", err)
		os.Exit(1)
	}
	if last == nil {
		fmt.Printf("No rounds recorded for %q yet. Play one with 'chainpop play'!\n", player)
		return
	}

	msg := fmt.Sprintf("I scored %d in ChainPop with a %d-tile pop! Can you beat that?",
		last.Score, last.MaxChain)

	if err := clipboard.WriteAll(msg); err != nil {
		// Still print the message so it can be copied by hand.
		fmt.Fprintf(os.Stderr, "Warning: could not access clipboard: %v\n", err)
		fmt.Println(msg)
		return
	}

	fmt.Println("Copied to clipboard:")
	fmt.Println("  " + msg)
}
