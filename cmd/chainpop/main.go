// chainpop is a terminal tile-popping game: drag a path over adjacent
// same-color tiles and release to pop them before the clock runs out.
//
// Usage:
//
//	chainpop play [mode]     - Play a round (classic or blitz)
//	chainpop list            - List available play modes
//	chainpop scores          - Browse the local high-score table
//	chainpop share           - Copy your last result to the clipboard
//	chainpop serve           - Start SSH server for remote play
//	chainpop api             - Start the leaderboard HTTP API
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible rounds
//	--db <path>     - Set database path (default: ~/.chainpop/scores.db)
//	--name <name>   - Player name for scores (overrides config)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import play modes to register them
	_ "github.com/avasilyev/chainpop/internal/games/chainpop"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagName   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "chainpop",
	Short: "ChainPop - Pop tile chains in your terminal",
	Long: `ChainPop is a terminal puzzle game: drag a path across adjacent
same-color tiles and release it to pop the chain, score points and win
bonus seconds before the round clock runs out.

Available commands:
  play     - Play a round (classic or blitz)
  list     - Show all play modes
  scores   - Browse the high-score table
  share    - Copy your last result to the clipboard
  serve    - Start SSH server for remote play
  api      - Start the leaderboard HTTP API

Examples:
  chainpop play
  chainpop play blitz --difficulty hard
  chainpop scores
  chainpop serve --ssh :2222
  chainpop api --addr :8080`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.chainpop/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagName, "name", "", "Player name for scores (overrides config)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(shareCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(apiCmd)
}
