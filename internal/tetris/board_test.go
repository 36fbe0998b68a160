package tetris

import (
	"errors"
	"testing"
)

func fillRow(t *testing.T, b *Board, row int, except ...int) {
	t.Helper()
	skip := make(map[int]bool)
	for _, col := range except {
		skip[col] = true
	}
	for col := 0; col < BoardWidth; col++ {
		if skip[col] {
			continue
		}
		if err := b.SetCell(col, row, CellValue(ShapeJ)); err != nil {
			t.Fatalf("SetCell(%d, %d) failed: %v", col, row, err)
		}
	}
}

func TestBoardCellBounds(t *testing.T) {
	var b Board

	tests := []struct {
		name     string
		col, row int
		wantErr  bool
	}{
		{"top-left", 0, 0, false},
		{"bottom-right", BoardWidth - 1, BoardHeight - 1, false},
		{"left of grid", -1, 0, true},
		{"right of grid", BoardWidth, 0, true},
		{"above grid", 0, -1, true},
		{"below grid", 0, BoardHeight, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := b.Cell(tc.col, tc.row)
			if tc.wantErr && !errors.Is(err, ErrOutOfBounds) {
				t.Errorf("Cell(%d, %d) err = %v, expected ErrOutOfBounds", tc.col, tc.row, err)
			}
			if !tc.wantErr && err != nil {
				t.Errorf("Cell(%d, %d) unexpected error: %v", tc.col, tc.row, err)
			}

			setErr := b.SetCell(tc.col, tc.row, CellValue(ShapeT))
			if tc.wantErr && !errors.Is(setErr, ErrOutOfBounds) {
				t.Errorf("SetCell(%d, %d) err = %v, expected ErrOutOfBounds", tc.col, tc.row, setErr)
			}
		})
	}
}

func TestBoardSetAndOccupied(t *testing.T) {
	var b Board

	if b.IsOccupied(4, 10) {
		t.Error("fresh board should be empty")
	}

	if err := b.SetCell(4, 10, CellValue(ShapeZ)); err != nil {
		t.Fatalf("SetCell failed: %v", err)
	}
	if !b.IsOccupied(4, 10) {
		t.Error("cell should be occupied after SetCell")
	}

	v, err := b.Cell(4, 10)
	if err != nil || v != CellValue(ShapeZ) {
		t.Errorf("Cell(4, 10) = %d, %v; expected %d", v, err, ShapeZ)
	}

	// Out-of-bounds is never "occupied"
	if b.IsOccupied(-1, 0) || b.IsOccupied(0, BoardHeight) {
		t.Error("out-of-bounds cells must not report occupied")
	}
}

func TestBoardRowFull(t *testing.T) {
	var b Board

	fillRow(t, &b, 19, 3)
	if b.RowFull(19) {
		t.Error("row with a gap should not be full")
	}

	fillRow(t, &b, 19)
	if !b.RowFull(19) {
		t.Error("completely filled row should be full")
	}

	if b.RowFull(-1) || b.RowFull(BoardHeight) {
		t.Error("out-of-range rows are never full")
	}
}

func TestRemoveFullRowsSingle(t *testing.T) {
	var b Board
	fillRow(t, &b, 19)
	b.SetCell(2, 18, CellValue(ShapeS)) //nolint:errcheck

	if got := b.removeFullRows(); got != 1 {
		t.Fatalf("removeFullRows() = %d, expected 1", got)
	}

	// The cell above the cleared row shifted down into it.
	if !b.IsOccupied(2, 19) {
		t.Error("cell above cleared row should shift to the bottom row")
	}
	if b.IsOccupied(2, 18) {
		t.Error("vacated cell should be empty after the shift")
	}
}

func TestRemoveFullRowsCompactsInOnePass(t *testing.T) {
	var b Board

	// Two full rows separated by a partial row; markers above and between.
	b.SetCell(0, 15, CellValue(ShapeI)) //nolint:errcheck
	fillRow(t, &b, 16)
	b.SetCell(5, 17, CellValue(ShapeL)) //nolint:errcheck
	fillRow(t, &b, 18)
	fillRow(t, &b, 19, 9)

	if got := b.removeFullRows(); got != 2 {
		t.Fatalf("removeFullRows() = %d, expected 2", got)
	}

	// Relative order of surviving rows is preserved: marker rows land at
	// the bottom in their original order, the gap row below them.
	if !b.IsOccupied(0, 17) {
		t.Errorf("row-15 marker should now be at row 17")
	}
	if !b.IsOccupied(5, 18) {
		t.Errorf("row-17 marker should now be at row 18")
	}
	if b.IsOccupied(9, 19) {
		t.Error("partial bottom row keeps its gap")
	}
	for col := 0; col < BoardWidth-1; col++ {
		if !b.IsOccupied(col, 19) {
			t.Errorf("partial bottom row lost cell %d", col)
		}
	}

	// Top rows vacated by the shift are empty.
	for row := 0; row < 17; row++ {
		for col := 0; col < BoardWidth; col++ {
			if b.IsOccupied(col, row) {
				t.Errorf("row %d should be empty after compaction", row)
			}
		}
	}
}

func TestRemoveFullRowsIdempotent(t *testing.T) {
	var b Board
	fillRow(t, &b, 18)
	fillRow(t, &b, 19)

	if got := b.removeFullRows(); got != 2 {
		t.Fatalf("first pass = %d, expected 2", got)
	}
	if got := b.removeFullRows(); got != 0 {
		t.Errorf("second pass = %d, expected 0 (no rows regrow)", got)
	}
}

func TestRemoveFullRowsLeavesNoFloatingGap(t *testing.T) {
	// A column stacked through the cleared row must stay contiguous.
	var b Board
	for row := 14; row < 18; row++ {
		b.SetCell(7, row, CellValue(ShapeJ)) //nolint:errcheck
	}
	fillRow(t, &b, 18)
	fillRow(t, &b, 19, 7)

	b.removeFullRows()

	// The stack shifts down one row and stays contiguous; the gap at
	// (7, 19) predates the clear and must not move.
	for row := 15; row <= 18; row++ {
		if !b.IsOccupied(7, row) {
			t.Errorf("column 7 should be contiguous, gap at row %d", row)
		}
	}
	if b.IsOccupied(7, 14) {
		t.Error("column 7 should have shifted down by one")
	}
	if b.IsOccupied(7, 19) {
		t.Error("pre-existing gap at (7, 19) should remain")
	}
}
