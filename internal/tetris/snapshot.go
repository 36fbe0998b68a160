package tetris

// Snapshot is a read-only copy of everything a renderer needs. Taking a
// snapshot never mutates the session, so the platform may call it freely
// between ticks.
type Snapshot struct {
	Board [BoardHeight][BoardWidth]CellValue

	PieceActive bool
	PieceShape  Shape
	PieceCells  [4]Cell
	GhostCells  [4]Cell // where the piece would land; valid when PieceActive

	NextShape Shape

	Score int
	Level int
	Lines int
	Phase Phase

	GameOver bool
}

// Snapshot captures the current session state for rendering and tests.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Board:     s.board.cells,
		NextShape: s.next,
		Score:     s.score,
		Level:     s.level,
		Lines:     s.lines,
		Phase:     s.phase,
		GameOver:  s.phase == PhaseGameOver,
	}

	if s.hasPiece {
		snap.PieceActive = true
		snap.PieceShape = s.piece.Shape
		snap.PieceCells = s.piece.Cells()

		ghost := s.piece
		ghost.HardDrop(&s.board)
		snap.GhostCells = ghost.Cells()
	}

	return snap
}
