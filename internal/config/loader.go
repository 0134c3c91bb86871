package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the game configuration.
// Search order: customPath -> ~/.chainpop/configs/chainpop.yaml ->
// ./configs/chainpop.yaml -> embedded default.
func Load(customPath string) (Config, error) {
	// Try custom path first; a broken explicit path is an error.
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		return parse(data, customPath)
	}

	// Try user config directory
	if userPath := userConfigPath("chainpop.yaml"); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if cfg, err := parse(data, userPath); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/chainpop.yaml"); err == nil {
		if cfg, err := parse(data, "configs/chainpop.yaml"); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	fillZeroes(&cfg)
	return cfg, nil
}

// parse unmarshals a config file, filling omitted fields from the defaults.
func parse(data []byte, path string) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	fillZeroes(&cfg)
	return cfg, nil
}

// fillZeroes replaces missing numeric fields with defaults so a partial
// config file stays playable.
func fillZeroes(cfg *Config) {
	def := Default()
	if cfg.Board.Rows <= 0 {
		cfg.Board.Rows = def.Board.Rows
	}
	if cfg.Board.Cols <= 0 {
		cfg.Board.Cols = def.Board.Cols
	}
	if cfg.Board.Colors <= 0 {
		cfg.Board.Colors = def.Board.Colors
	}
	if cfg.Round.InitialSeconds <= 0 {
		cfg.Round.InitialSeconds = def.Round.InitialSeconds
	}
	if cfg.Round.BlitzSeconds <= 0 {
		cfg.Round.BlitzSeconds = def.Round.BlitzSeconds
	}
	if cfg.Round.BonusMinLength <= 0 {
		cfg.Round.BonusMinLength = def.Round.BonusMinLength
	}
	if cfg.Round.ChainDecayMillis <= 0 {
		cfg.Round.ChainDecayMillis = def.Round.ChainDecayMillis
	}
	if cfg.Player.Name == "" {
		cfg.Player.Name = def.Player.Name
	}
	if cfg.Leaderboard.TimeoutMillis <= 0 {
		cfg.Leaderboard.TimeoutMillis = def.Leaderboard.TimeoutMillis
	}
}

// userConfigPath returns the path to a user config file, or empty if home is
// unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".chainpop", "configs", filename)
}
