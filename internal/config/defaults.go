package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the default game configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Gameplay: TetrisGameplay{
			StartLevel:    0,
			LinesPerLevel: 10,
			GhostPiece:    true,
		},
		Scoring: TetrisScoring{
			Single:         40,
			Double:         100,
			Triple:         300,
			Tetris:         1200,
			SoftDropPerRow: 1,
			HardDropPerRow: 2,
		},
	}
}
