// Package tetris implements the deterministic game core: board, pieces,
// randomizer, scoring and the falling-piece state machine. The package is
// UI-agnostic, allocation-free during play, and driven entirely by
// external Tick and Apply calls — it owns no timer and no goroutines.
// Callers that mix tick and input sources must serialize access
// themselves; the core provides no locking.
package tetris

// Phase is the state of the session's piece lifecycle.
type Phase int

const (
	PhaseAwaitingSpawn Phase = iota
	PhaseFalling
	PhaseLocking
	PhaseClearing
	PhaseGameOver
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseAwaitingSpawn:
		return "AwaitingSpawn"
	case PhaseFalling:
		return "Falling"
	case PhaseLocking:
		return "Locking"
	case PhaseClearing:
		return "Clearing"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Event is a discrete player action forwarded by the platform.
type Event int

const (
	EventMoveLeft Event = iota
	EventMoveRight
	EventRotateCW
	EventRotateCCW
	EventSoftDrop
	EventHardDrop
)

// Config carries the tunable rules of a session. Zero values select the
// defaults, so tetris.NewSession(tetris.Config{}) is a playable game.
type Config struct {
	Seed          int64
	StartLevel    int
	LinesPerLevel int        // 0 means DefaultLinesPerLevel; negative pins the level
	Scoring       ScoreTable // zero table means DefaultScoreTable
}

// TickResult reports what one gravity step did.
type TickResult struct {
	Moved       bool // piece moved down one row
	Locked      bool // piece locked into the board this tick
	RowsCleared int  // rows cleared by the lock, 0..4
	GameOver    bool // session is (or became) terminal
}

// Session is one complete game: board, active piece, randomizer, score,
// level and phase. All state lives in this value; independent sessions
// never share anything, which keeps the core trivially testable.
type Session struct {
	cfg   Config
	board Board
	bag   *Bag

	piece    ActivePiece
	hasPiece bool
	next     Shape

	phase Phase
	score int
	level int
	lines int
}

// NewSession creates a game with the first piece already spawned and
// falling.
func NewSession(cfg Config) *Session {
	if cfg.LinesPerLevel == 0 {
		cfg.LinesPerLevel = DefaultLinesPerLevel
	}
	if cfg.Scoring == (ScoreTable{}) {
		cfg.Scoring = DefaultScoreTable()
	}
	s := &Session{cfg: cfg}
	s.Reset(cfg.Seed)
	return s
}

// Reset returns the session to a fresh game: cleared board, zero score,
// starting level, new bag from the given seed, first piece spawned. This
// is the only way out of PhaseGameOver.
func (s *Session) Reset(seed int64) {
	s.board.clear()
	s.bag = NewBag(seed)
	s.score = 0
	s.lines = 0
	s.level = s.cfg.StartLevel
	s.hasPiece = false
	s.phase = PhaseAwaitingSpawn

	// An empty board can always host the first piece.
	s.spawnFromBag()
}

// spawnFromBag draws the next shape and places it. On ErrSpawnBlocked the
// session transitions to PhaseGameOver.
func (s *Session) spawnFromBag() error {
	shape := s.bag.Next()
	s.next = s.bag.Peek()
	return s.spawn(shape)
}

// spawn places a specific shape as the active piece. Split from
// spawnFromBag so scripted games and tests can force a known sequence.
func (s *Session) spawn(shape Shape) error {
	p, err := NewActivePiece(&s.board, shape)
	if err != nil {
		s.hasPiece = false
		s.phase = PhaseGameOver
		return err
	}
	s.piece = p
	s.hasPiece = true
	s.phase = PhaseFalling
	return nil
}

// Tick advances gravity by one step. It is the only state change not
// triggered by explicit player input. The platform calls it every
// GravityTicks() base ticks.
func (s *Session) Tick() TickResult {
	switch s.phase {
	case PhaseGameOver:
		return TickResult{GameOver: true}

	case PhaseAwaitingSpawn:
		if err := s.spawnFromBag(); err != nil {
			return TickResult{GameOver: true}
		}
		return TickResult{}

	case PhaseFalling:
		if err := s.piece.StepDown(&s.board); err != nil {
			// Resting before the step: lock in place.
			return s.lockAndResolve()
		}
		if !s.piece.CanStepDown(&s.board) {
			// Landed this step: lock immediately (no lock delay).
			res := s.lockAndResolve()
			res.Moved = true
			return res
		}
		return TickResult{Moved: true}

	default:
		return TickResult{}
	}
}

// Apply handles one discrete input event and reports whether it changed
// any state. Events outside PhaseFalling are no-ops; a move into a wall
// is silently absorbed, by contract.
func (s *Session) Apply(ev Event) bool {
	if s.phase != PhaseFalling {
		return false
	}

	switch ev {
	case EventMoveLeft:
		return s.piece.MoveHorizontal(&s.board, -1) == nil
	case EventMoveRight:
		return s.piece.MoveHorizontal(&s.board, 1) == nil
	case EventRotateCW:
		return s.piece.Rotate(&s.board, RotateCW) == nil
	case EventRotateCCW:
		return s.piece.Rotate(&s.board, RotateCCW) == nil

	case EventSoftDrop:
		if err := s.piece.StepDown(&s.board); err != nil {
			s.lockAndResolve()
			return true
		}
		s.score += s.cfg.Scoring.SoftDropPerRow
		if !s.piece.CanStepDown(&s.board) {
			s.lockAndResolve()
		}
		return true

	case EventHardDrop:
		rows := s.piece.HardDrop(&s.board)
		s.score += rows * s.cfg.Scoring.HardDropPerRow
		s.lockAndResolve()
		return true

	default:
		return false
	}
}

// lockAndResolve runs the full lock sequence as one atomic step: write
// the piece into the board, compact all simultaneously full rows, apply
// the scoring table at the pre-clear level, re-derive the level, and hand
// control back to the spawn phase. The next Tick performs the spawn, so a
// blocked spawn is observable as a game-over tick outcome.
func (s *Session) lockAndResolve() TickResult {
	s.phase = PhaseLocking
	s.piece.lockInto(&s.board)
	s.hasPiece = false

	s.phase = PhaseClearing
	cleared := s.board.removeFullRows()
	if cleared > 0 {
		s.score += s.cfg.Scoring.ClearPoints(cleared, s.level)
		s.lines += cleared
		// Negative LinesPerLevel pins the level for the whole game.
		if s.cfg.LinesPerLevel > 0 {
			if lvl := LevelFor(s.cfg.StartLevel, s.lines, s.cfg.LinesPerLevel); lvl > s.level {
				s.level = lvl
			}
		}
	}

	s.phase = PhaseAwaitingSpawn
	return TickResult{Locked: true, RowsCleared: cleared}
}

// GravityTicks reports the current fall rate as base-rate ticks per
// gravity step, derived from the level.
func (s *Session) GravityTicks() int {
	return GravityTicks(s.level)
}

// Phase returns the current lifecycle phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Score returns the current score.
func (s *Session) Score() int {
	return s.score
}

// Level returns the current level.
func (s *Session) Level() int {
	return s.level
}

// Lines returns the total lines cleared this game.
func (s *Session) Lines() int {
	return s.lines
}

// GameOver reports whether the session is terminal.
func (s *Session) GameOver() bool {
	return s.phase == PhaseGameOver
}
