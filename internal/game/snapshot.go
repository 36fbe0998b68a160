package game

import "github.com/nvoss/tetra/internal/tetris"

// Snapshot captures the complete game state for determinism testing and
// replay.
type Snapshot struct {
	Tick   uint64
	Mode   string
	Won    bool
	Paused bool
	Core   tetris.Snapshot
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:   g.tick,
		Mode:   string(g.mode),
		Won:    g.won,
		Paused: g.paused,
		Core:   g.session.Snapshot(),
	}
}
