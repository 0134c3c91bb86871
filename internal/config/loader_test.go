package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmbeddedDefault(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}

	if cfg.Board.Rows != 6 || cfg.Board.Cols != 6 || cfg.Board.Colors != 5 {
		t.Errorf("default board = %+v, expected 6x6 with 5 colors", cfg.Board)
	}
	if cfg.Round.InitialSeconds != 60 {
		t.Errorf("default round seconds = %d, expected 60", cfg.Round.InitialSeconds)
	}
	if cfg.Player.Name != "Anonymous" {
		t.Errorf("default player name = %q, expected Anonymous", cfg.Player.Name)
	}
	if cfg.Leaderboard.URL != "" {
		t.Errorf("default leaderboard URL should be empty, got %q", cfg.Leaderboard.URL)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	content := []byte("board:\n  rows: 8\n  cols: 7\nplayer:\n  name: vova\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("cannot write temp config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) failed: %v", path, err)
	}

	if cfg.Board.Rows != 8 || cfg.Board.Cols != 7 {
		t.Errorf("board = %+v, expected 8x7 from custom file", cfg.Board)
	}
	// Omitted fields fall back to defaults.
	if cfg.Board.Colors != 5 {
		t.Errorf("colors = %d, expected default 5", cfg.Board.Colors)
	}
	if cfg.Round.ChainDecayMillis != 2000 {
		t.Errorf("chain decay = %d, expected default 2000", cfg.Round.ChainDecayMillis)
	}
	if cfg.Player.Name != "vova" {
		t.Errorf("player name = %q, expected vova", cfg.Player.Name)
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("an explicit missing config path should be an error")
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		colors  int
		seconds int
	}{
		{DifficultyEasy, 4, 90},
		{DifficultyNormal, 5, 60},
		{DifficultyHard, 6, 45},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := Default()
			ApplyPreset(&cfg, tc.preset)
			if cfg.Board.Colors != tc.colors {
				t.Errorf("colors = %d, expected %d", cfg.Board.Colors, tc.colors)
			}
			if cfg.Round.InitialSeconds != tc.seconds {
				t.Errorf("seconds = %d, expected %d", cfg.Round.InitialSeconds, tc.seconds)
			}
		})
	}

	// Fixed leaves the config untouched.
	cfg := Default()
	cfg.Board.Colors = 7
	ApplyPreset(&cfg, DifficultyFixed)
	if cfg.Board.Colors != 7 {
		t.Error("fixed preset should not modify the config")
	}
}
