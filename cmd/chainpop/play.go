package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/avasilyev/chainpop/internal/config"
	"github.com/avasilyev/chainpop/internal/core"
	"github.com/avasilyev/chainpop/internal/game"
	"github.com/avasilyev/chainpop/internal/games/chainpop"
	"github.com/avasilyev/chainpop/internal/leaderboard"
	"github.com/avasilyev/chainpop/internal/platform/tui"
	"github.com/avasilyev/chainpop/internal/registry"
	"github.com/avasilyev/chainpop/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a round",
	Long: `Start a round in the given play mode (default: classic).

Controls:
  Arrows/WASD - Move the cursor / drag the path
  Space       - Start a path at the cursor, or release it to pop
  Enter       - Release the path
  Esc         - Cancel the path
  P           - Pause
  R           - Restart (after the round ends)
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - 4 colors, 90 second clock
  normal - 5 colors, 60 second clock
  hard   - 6 colors, 45 second clock
  fixed  - Use the config file values unchanged

Examples:
  chainpop play
  chainpop play blitz
  chainpop play classic --difficulty hard
  chainpop play --config ./my-chainpop.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// buildRoundConfig turns the loaded file config into engine parameters.
func buildRoundConfig(cfg config.Config) game.RoundConfig {
	rc := game.RoundConfig{
		Rows:             cfg.Board.Rows,
		Cols:             cfg.Board.Cols,
		Colors:           cfg.Board.Colors,
		InitialSeconds:   cfg.Round.InitialSeconds,
		BonusMinLen:      cfg.Round.BonusMinLength,
		ChainDecayMillis: cfg.Round.ChainDecayMillis,
		PlayerName:       cfg.Player.Name,
	}
	if flagName != "" {
		rc.PlayerName = flagName
	}
	return rc
}

// wireEngine installs config, persistence and leaderboard sinks for new
// games. Returns the opened store (may be nil when the DB is unavailable).
func wireEngine(cfg config.Config) *storage.Store {
	chainpop.SetRoundConfig(buildRoundConfig(cfg))
	chainpop.SetBlitzSeconds(cfg.Round.BlitzSeconds)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}
	if store != nil {
		chainpop.SetBestStore(store)
	}

	// Remote leaderboard when configured, local table otherwise.
	if cfg.Leaderboard.URL != "" {
		timeout := time.Duration(cfg.Leaderboard.TimeoutMillis) * time.Millisecond
		chainpop.SetSubmitter(leaderboard.NewClient(cfg.Leaderboard.URL, timeout))
	} else if store != nil {
		chainpop.SetSubmitter(store)
	}

	return store
}

func runPlay(cmd *cobra.Command, args []string) {
	mode := "classic"
	if len(args) == 1 {
		mode = args[0]
	}
	if !registry.Exists(mode) {
		fmt.Fprintf(os.Stderr, "Error: unknown play mode %q\n", mode)
		fmt.Fprintln(os.Stderr, "Run 'chainpop list' to see available modes.")
		os.Exit(1)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagDifficulty != "" {
		config.ApplyPreset(&cfg, config.DifficultyPreset(flagDifficulty))
	}

	store := wireEngine(cfg)

	gameInstance, err := registry.Create(mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rtCfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	runErr := tui.Run(gameInstance, rtCfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
