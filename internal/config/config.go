// Package config provides YAML-based configuration loading and
// difficulty presets for the tetra platform.
package config

// TetrisConfig contains all tunable parameters for a game.
type TetrisConfig struct {
	Gameplay TetrisGameplay `yaml:"gameplay"`
	Scoring  TetrisScoring  `yaml:"scoring"`
}

// TetrisGameplay defines starting conditions and progression.
type TetrisGameplay struct {
	StartLevel    int  `yaml:"start_level"`
	LinesPerLevel int  `yaml:"lines_per_level"`
	GhostPiece    bool `yaml:"ghost_piece"`
}

// TetrisScoring defines line-clear and drop point values. Clear values
// are multiplied by (level + 1) when awarded.
type TetrisScoring struct {
	Single         int `yaml:"single"`
	Double         int `yaml:"double"`
	Triple         int `yaml:"triple"`
	Tetris         int `yaml:"tetris"`
	SoftDropPerRow int `yaml:"soft_drop_per_row"`
	HardDropPerRow int `yaml:"hard_drop_per_row"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// StartLevelForPreset returns the starting level for a difficulty preset.
func StartLevelForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 0
	case DifficultyNormal:
		return 3
	case DifficultyHard:
		return 9
	default:
		return 0
	}
}

// ValidPreset reports whether the preset name is recognized.
func ValidPreset(preset DifficultyPreset) bool {
	switch preset {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return true
	}
	return false
}

// ApplyPreset modifies the config based on a difficulty preset.
// The fixed preset keeps the configured start level and disables level
// progression entirely.
func ApplyPreset(cfg *TetrisConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Gameplay.LinesPerLevel = -1
		return
	}
	cfg.Gameplay.StartLevel = StartLevelForPreset(preset)
}
