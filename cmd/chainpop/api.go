package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/avasilyev/chainpop/internal/leaderboard"
	"github.com/avasilyev/chainpop/internal/storage"
)

var flagAPIAddr string

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Start the leaderboard HTTP API",
	Long: `Start an HTTP server exposing the shared leaderboard.

Endpoints:
  GET  /health         - Liveness check
  GET  /scores?limit=N - Top scores, best first
  POST /scores         - Submit a finished round

Point clients at it via the leaderboard.url config key; every round they
finish is then submitted here instead of the local table.

Examples:
  chainpop api
  chainpop api --addr :8080 --db ./leaderboard.db`,
	Run: runAPI,
}

func init() {
	apiCmd.Flags().StringVar(&flagAPIAddr, "addr", ":8080", "HTTP listen address (host:port)")
}

func runAPI(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	server := leaderboard.NewServer(store)
	if err := server.Start(flagAPIAddr); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
