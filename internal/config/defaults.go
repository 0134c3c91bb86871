package config

import (
	_ "embed"
)

//go:embed defaults/chainpop.yaml
var defaultYAML []byte

// Default returns the default configuration: a 6x6 board with 5 colors,
// 60-second rounds, a 2-second chain window and no remote leaderboard.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Rows:   6,
			Cols:   6,
			Colors: 5,
		},
		Round: RoundConfig{
			InitialSeconds:   60,
			BlitzSeconds:     30,
			BonusMinLength:   5,
			ChainDecayMillis: 2000,
		},
		Player: PlayerConfig{
			Name: "Anonymous",
		},
		Leaderboard: LeaderboardConfig{
			URL:           "",
			TimeoutMillis: 2000,
		},
	}
}
