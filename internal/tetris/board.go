package tetris

// Board dimensions. The grid never changes size during a game.
const (
	BoardWidth  = 10
	BoardHeight = 20
)

// CellValue is the contents of one board cell: CellEmpty or the Shape
// value of the piece that locked there (used as its color identifier).
type CellValue uint8

// CellEmpty marks an unoccupied cell.
const CellEmpty CellValue = 0

// Cell is an absolute board coordinate. Row 0 is the top row.
type Cell struct {
	Col, Row int
}

// Board is the fixed 10x20 grid of locked cells. It is a plain value
// type with array storage, so copying a Board copies the whole grid and
// no dynamic allocation ever happens during play.
//
// The board knows nothing about the active piece; piece cells are only
// written here at the instant of locking.
type Board struct {
	cells [BoardHeight][BoardWidth]CellValue
}

// InBounds reports whether the coordinate lies inside the grid.
func (b *Board) InBounds(col, row int) bool {
	return col >= 0 && col < BoardWidth && row >= 0 && row < BoardHeight
}

// Cell returns the value at (col, row), or ErrOutOfBounds for invalid
// coordinates. Out-of-range access is a caller bug, never clamped.
func (b *Board) Cell(col, row int) (CellValue, error) {
	if !b.InBounds(col, row) {
		return CellEmpty, ErrOutOfBounds
	}
	return b.cells[row][col], nil
}

// SetCell writes a value at (col, row). Only the locking and line-removal
// paths mutate the board.
func (b *Board) SetCell(col, row int, v CellValue) error {
	if !b.InBounds(col, row) {
		return ErrOutOfBounds
	}
	b.cells[row][col] = v
	return nil
}

// IsOccupied reports whether an in-bounds cell holds a locked piece.
func (b *Board) IsOccupied(col, row int) bool {
	return b.InBounds(col, row) && b.cells[row][col] != CellEmpty
}

// RowFull reports whether every cell of the row is occupied.
// Out-of-range rows are never full.
func (b *Board) RowFull(row int) bool {
	if row < 0 || row >= BoardHeight {
		return false
	}
	for col := 0; col < BoardWidth; col++ {
		if b.cells[row][col] == CellEmpty {
			return false
		}
	}
	return true
}

// removeFullRows deletes every full row, shifting the rows above each
// down by one and clearing the vacated top rows. All simultaneously full
// rows are compacted in a single bottom-up pass, which preserves the
// relative order of the surviving rows. Returns the number of rows
// removed.
func (b *Board) removeFullRows() int {
	write := BoardHeight - 1
	for read := BoardHeight - 1; read >= 0; read-- {
		if b.RowFull(read) {
			continue
		}
		if write != read {
			b.cells[write] = b.cells[read]
		}
		write--
	}

	cleared := write + 1
	for row := 0; row <= write; row++ {
		b.cells[row] = [BoardWidth]CellValue{}
	}
	return cleared
}

// clear empties the whole grid.
func (b *Board) clear() {
	b.cells = [BoardHeight][BoardWidth]CellValue{}
}

// cellBlocked reports whether the active piece may not occupy (col, row).
// The side walls and the floor block; space above the top row does not,
// so freshly spawned pieces may overhang the visible grid.
func (b *Board) cellBlocked(col, row int) bool {
	if col < 0 || col >= BoardWidth || row >= BoardHeight {
		return true
	}
	if row < 0 {
		return false
	}
	return b.cells[row][col] != CellEmpty
}
