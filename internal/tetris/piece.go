package tetris

// ActivePiece is the currently falling piece: its shape, rotation state
// and the board position of its bounding box's top-left corner. The box
// may extend past the grid edges as long as every occupied cell stays
// inside (or above) the grid.
//
// All movement operations are all-or-nothing: they collision-check the
// candidate position first and leave the piece untouched on failure.
type ActivePiece struct {
	Shape    Shape
	Rotation int
	Col, Row int
}

// spawnCol returns the spawn column for the shape's bounding box,
// centering the piece on the standard 10-wide board.
func spawnCol(s Shape) int {
	if s == ShapeO {
		return 4
	}
	return 3
}

// spawnRow returns the spawn row for the shape's bounding box, chosen so
// the topmost occupied cell lands on row 0.
func spawnRow(s Shape) int {
	minY := BoardHeight
	for _, c := range ShapeCells(s, 0) {
		if c.Y < minY {
			minY = c.Y
		}
	}
	return -minY
}

// NewActivePiece places a new piece of the given shape at its spawn
// position, rotation 0. Returns ErrSpawnBlocked if any spawn cell
// overlaps a locked cell; the caller treats that as game over.
func NewActivePiece(b *Board, s Shape) (ActivePiece, error) {
	p := ActivePiece{
		Shape: s,
		Col:   spawnCol(s),
		Row:   spawnRow(s),
	}
	if p.collides(b) {
		return ActivePiece{}, ErrSpawnBlocked
	}
	return p, nil
}

// Cells returns the four absolute board cells the piece occupies.
func (p ActivePiece) Cells() [4]Cell {
	var cells [4]Cell
	for i, off := range ShapeCells(p.Shape, p.Rotation) {
		cells[i] = Cell{Col: p.Col + off.X, Row: p.Row + off.Y}
	}
	return cells
}

// collides reports whether any piece cell overlaps a locked cell or
// leaves the grid (cells above the top row are allowed).
func (p ActivePiece) collides(b *Board) bool {
	for _, c := range p.Cells() {
		if b.cellBlocked(c.Col, c.Row) {
			return true
		}
	}
	return false
}

// MoveHorizontal shifts the piece by delta columns (±1 in normal play).
// Returns ErrBlocked, leaving the piece unchanged, if the target position
// overlaps a locked cell or a wall.
func (p *ActivePiece) MoveHorizontal(b *Board, delta int) error {
	moved := *p
	moved.Col += delta
	if moved.collides(b) {
		return ErrBlocked
	}
	*p = moved
	return nil
}

// StepDown moves the piece down one row. ErrBlocked means the piece is
// resting on the floor or the stack; the caller interprets that as
// "lock now", not as a user-facing failure.
func (p *ActivePiece) StepDown(b *Board) error {
	moved := *p
	moved.Row++
	if moved.collides(b) {
		return ErrBlocked
	}
	*p = moved
	return nil
}

// CanStepDown reports whether a downward move would succeed.
func (p ActivePiece) CanStepDown(b *Board) bool {
	p.Row++
	return !p.collides(b)
}

// HardDrop moves the piece down until blocked and returns the number of
// rows travelled (the hard-drop scoring bonus is per row).
func (p *ActivePiece) HardDrop(b *Board) int {
	rows := 0
	for p.StepDown(b) == nil {
		rows++
	}
	return rows
}

// Rotate turns the piece one rotation state in the given direction,
// resolving wall kicks: the unkicked target position is tried first, then
// each SRS kick offset in table order. The first candidate that does not
// collide is committed; if none fits the piece is left exactly as it was
// and ErrRotationBlocked is returned.
func (p *ActivePiece) Rotate(b *Board, dir RotationDir) error {
	target := ((p.Rotation+int(dir))%4 + 4) % 4
	for _, kick := range KickOffsets(p.Shape, p.Rotation, dir) {
		candidate := *p
		candidate.Rotation = target
		candidate.Col += kick.X
		candidate.Row += kick.Y
		if !candidate.collides(b) {
			*p = candidate
			return nil
		}
	}
	return ErrRotationBlocked
}

// lockInto writes the piece's cells into the board as locked cells,
// colored with the shape identifier. Cells above the visible grid are
// dropped; the spawn-collision check is what turns that situation into
// game over.
func (p ActivePiece) lockInto(b *Board) {
	for _, c := range p.Cells() {
		if b.InBounds(c.Col, c.Row) {
			b.cells[c.Row][c.Col] = CellValue(p.Shape)
		}
	}
}
