// Package config provides YAML-based configuration loading and difficulty
// presets for ChainPop.
package config

// Config contains all tunable settings for the game.
type Config struct {
	Board       BoardConfig       `yaml:"board"`
	Round       RoundConfig       `yaml:"round"`
	Player      PlayerConfig      `yaml:"player"`
	Leaderboard LeaderboardConfig `yaml:"leaderboard"`
}

// BoardConfig defines the grid shape and palette.
type BoardConfig struct {
	Rows   int `yaml:"rows"`
	Cols   int `yaml:"cols"`
	Colors int `yaml:"colors"`
}

// RoundConfig defines round pacing.
type RoundConfig struct {
	InitialSeconds   int `yaml:"initial_seconds"`
	BlitzSeconds     int `yaml:"blitz_seconds"`
	BonusMinLength   int `yaml:"bonus_min_length"`
	ChainDecayMillis int `yaml:"chain_decay_ms"`
}

// PlayerConfig identifies the player on leaderboards. The name is an opaque
// display string.
type PlayerConfig struct {
	Name string `yaml:"name"`
}

// LeaderboardConfig points at an optional remote leaderboard service.
// An empty URL disables remote submission; the game plays identically.
type LeaderboardConfig struct {
	URL           string `yaml:"url"`
	TimeoutMillis int    `yaml:"timeout_ms"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ApplyPreset adjusts the board palette and round clock for a preset.
// Fewer colors mean longer chains and an easier board. "fixed" (or an
// unknown preset) leaves the loaded config untouched.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Board.Colors = 4
		cfg.Round.InitialSeconds = 90
	case DifficultyNormal:
		cfg.Board.Colors = 5
		cfg.Round.InitialSeconds = 60
	case DifficultyHard:
		cfg.Board.Colors = 6
		cfg.Round.InitialSeconds = 45
	}
}
