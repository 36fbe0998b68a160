package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultsMatchEmbeddedYAML(t *testing.T) {
	cfg, err := LoadTetris("")
	if err != nil {
		t.Fatalf("LoadTetris failed: %v", err)
	}

	// Loading without overrides should agree with the hardcoded defaults
	// unless a user config happens to exist; skip in that case.
	if _, statErr := os.Stat(userConfigPath("tetris.yaml")); statErr == nil {
		t.Skip("user config present, skipping default comparison")
	}
	if _, statErr := os.Stat(filepath.Join("configs", "tetris.yaml")); statErr == nil {
		t.Skip("local config present, skipping default comparison")
	}

	if cfg != DefaultTetrisConfig() {
		t.Errorf("embedded defaults = %+v, expected %+v", cfg, DefaultTetrisConfig())
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tetris.yaml")
	data := []byte("gameplay:\n  start_level: 5\n  lines_per_level: 8\nscoring:\n  tetris: 2000\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadTetris(path)
	if err != nil {
		t.Fatalf("LoadTetris(%s) failed: %v", path, err)
	}
	if cfg.Gameplay.StartLevel != 5 || cfg.Gameplay.LinesPerLevel != 8 {
		t.Errorf("gameplay = %+v, expected start_level 5 and lines_per_level 8", cfg.Gameplay)
	}
	if cfg.Scoring.Tetris != 2000 {
		t.Errorf("scoring.tetris = %d, expected 2000", cfg.Scoring.Tetris)
	}
}

func TestLoadCustomPathMissing(t *testing.T) {
	if _, err := LoadTetris(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("missing explicit config path should be an error")
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		preset DifficultyPreset
		level  int
	}{
		{DifficultyEasy, 0},
		{DifficultyNormal, 3},
		{DifficultyHard, 9},
	}
	for _, tc := range tests {
		cfg := DefaultTetrisConfig()
		ApplyPreset(&cfg, tc.preset)
		if cfg.Gameplay.StartLevel != tc.level {
			t.Errorf("%s: start_level = %d, expected %d", tc.preset, cfg.Gameplay.StartLevel, tc.level)
		}
		if !ValidPreset(tc.preset) {
			t.Errorf("%s should be a valid preset", tc.preset)
		}
	}
	if ValidPreset("nightmare") {
		t.Error("unknown preset should not validate")
	}
}

func TestFixedPresetDisablesProgression(t *testing.T) {
	cfg := DefaultTetrisConfig()
	cfg.Gameplay.StartLevel = 7
	ApplyPreset(&cfg, DifficultyFixed)

	if cfg.Gameplay.StartLevel != 7 {
		t.Errorf("fixed preset should keep the start level, got %d", cfg.Gameplay.StartLevel)
	}
	if cfg.Gameplay.LinesPerLevel >= 0 {
		t.Errorf("fixed preset should disable progression, lines_per_level = %d", cfg.Gameplay.LinesPerLevel)
	}
}
