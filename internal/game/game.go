// Package game adapts the tetris core to the platform. It maps input
// actions to core events, drives gravity from the base tick rate, and
// implements the marathon, sprint and ultra play modes.
package game

import (
	"github.com/nvoss/tetra/internal/config"
	"github.com/nvoss/tetra/internal/core"
	"github.com/nvoss/tetra/internal/registry"
	"github.com/nvoss/tetra/internal/tetris"
)

// Mode represents the play mode.
type Mode string

const (
	ModeMarathon Mode = "marathon"
	ModeSprint   Mode = "sprint"
	ModeUltra    Mode = "ultra"
)

// Mode goals.
const (
	sprintGoalLines = 40  // sprint ends when this many lines are cleared
	ultraSeconds    = 120 // ultra ends after this much play time
)

// Game drives one tetris session in a particular play mode.
type Game struct {
	mode    Mode
	session *tetris.Session
	runtime core.RuntimeConfig
	cfg     config.TetrisConfig

	tick    uint64
	gravity int // base ticks since the last gravity step

	won    bool
	paused bool
}

// Package-level variables for CLI overrides
var (
	configPath         string
	difficultyPreset   config.DifficultyPreset
	selectedStartLevel = -1 // level 0 is valid, so -1 means unset
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	p := config.DifficultyPreset(preset)
	if config.ValidPreset(p) {
		difficultyPreset = p
	} else {
		difficultyPreset = "" // Use config default
	}
}

// SetStartLevel overrides the starting level for the next game.
// Negative values leave the config value in effect.
func SetStartLevel(level int) {
	selectedStartLevel = level
}

// New creates a game in the given play mode.
func New(mode Mode) *Game {
	return &Game{mode: mode}
}

func init() {
	registry.Register("marathon", func() registry.Game {
		return New(ModeMarathon)
	})
	registry.Register("sprint", func() registry.Game {
		return New(ModeSprint)
	})
	registry.Register("ultra", func() registry.Game {
		return New(ModeUltra)
	})
}

// ID returns the mode identifier.
func (g *Game) ID() string {
	return string(g.mode)
}

// Title returns the display name.
func (g *Game) Title() string {
	switch g.mode {
	case ModeSprint:
		return "Sprint (40 Lines)"
	case ModeUltra:
		return "Ultra (2 Minutes)"
	default:
		return "Marathon"
	}
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadTetris(configPath)
	if err != nil {
		cfg = config.DefaultTetrisConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg, difficultyPreset)
	}
	if selectedStartLevel >= 0 {
		cfg.Gameplay.StartLevel = selectedStartLevel
	}
	g.cfg = cfg

	g.session = tetris.NewSession(tetris.Config{
		Seed:          runtime.Seed,
		StartLevel:    cfg.Gameplay.StartLevel,
		LinesPerLevel: cfg.Gameplay.LinesPerLevel,
		Scoring:       scoreTable(cfg.Scoring),
	})

	g.tick = 0
	g.gravity = 0
	g.won = false
	g.paused = false
}

// scoreTable converts the YAML scoring section to the core's table.
func scoreTable(s config.TetrisScoring) tetris.ScoreTable {
	return tetris.ScoreTable{
		Single:         s.Single,
		Double:         s.Double,
		Triple:         s.Triple,
		Tetris:         s.Tetris,
		SoftDropPerRow: s.SoftDropPerRow,
		HardDropPerRow: s.HardDropPerRow,
	}
}

// Step advances the game by one base tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session.GameOver() || g.won {
		if in.Has(core.ActionRestart) {
			g.Reset(g.runtime)
		}
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tick++

	// A locked piece waits in the spawn phase; bring in the next piece on
	// the following frame rather than the next gravity step.
	if g.session.Phase() == tetris.PhaseAwaitingSpawn {
		g.session.Tick()
		g.gravity = 0
	}

	if in.Has(core.ActionMoveLeft) {
		g.session.Apply(tetris.EventMoveLeft)
	}
	if in.Has(core.ActionMoveRight) {
		g.session.Apply(tetris.EventMoveRight)
	}
	if in.Has(core.ActionRotateCW) {
		g.session.Apply(tetris.EventRotateCW)
	}
	if in.Has(core.ActionRotateCCW) {
		g.session.Apply(tetris.EventRotateCCW)
	}

	// Drops substitute for gravity this frame.
	switch {
	case in.Has(core.ActionHardDrop):
		g.session.Apply(tetris.EventHardDrop)
		g.gravity = 0
	case in.Has(core.ActionSoftDrop):
		g.session.Apply(tetris.EventSoftDrop)
		g.gravity = 0
	default:
		g.gravity++
		if g.gravity >= g.session.GravityTicks() {
			g.session.Tick()
			g.gravity = 0
		}
	}

	if goalReached(g.mode, g.session.Lines(), g.tick, g.tickRate()) {
		g.won = true
	}

	return core.StepResult{State: g.State()}
}

// goalReached reports whether the mode's win condition is met.
func goalReached(mode Mode, lines int, tick uint64, tickRate int) bool {
	switch mode {
	case ModeSprint:
		return lines >= sprintGoalLines
	case ModeUltra:
		return tick >= uint64(ultraSeconds*tickRate)
	default:
		return false
	}
}

// tickRate returns the base tick rate, defaulting to 60.
func (g *Game) tickRate() int {
	if g.runtime.TickRate <= 0 {
		return 60
	}
	return g.runtime.TickRate
}

// timeLeftSeconds returns the remaining ultra time, rounded up.
func (g *Game) timeLeftSeconds() int {
	rate := g.tickRate()
	total := uint64(ultraSeconds * rate)
	if g.tick >= total {
		return 0
	}
	left := total - g.tick
	return int((left + uint64(rate) - 1) / uint64(rate))
}

// Won reports whether the mode goal has been reached.
func (g *Game) Won() bool {
	return g.won
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.session.Score(),
		GameOver: g.session.GameOver() || g.won,
		Paused:   g.paused,
	}
}

// Lines returns the total lines cleared this game.
func (g *Game) Lines() int {
	return g.session.Lines()
}

// Level returns the current level.
func (g *Game) Level() int {
	return g.session.Level()
}
