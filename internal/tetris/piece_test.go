package tetris

import (
	"errors"
	"testing"
)

func TestSpawnTopCellOnRowZero(t *testing.T) {
	var b Board
	for _, shape := range allShapes() {
		p, err := NewActivePiece(&b, shape)
		if err != nil {
			t.Fatalf("spawn %s on empty board failed: %v", shape, err)
		}

		minRow := BoardHeight
		for _, c := range p.Cells() {
			if c.Row < minRow {
				minRow = c.Row
			}
			if c.Col < 0 || c.Col >= BoardWidth {
				t.Errorf("%s spawn cell %+v outside board columns", shape, c)
			}
		}
		if minRow != 0 {
			t.Errorf("%s: topmost spawn cell on row %d, expected 0", shape, minRow)
		}
	}
}

func TestSpawnBlockedByStack(t *testing.T) {
	var b Board
	// Occupy the whole spawn area.
	for row := 0; row < 2; row++ {
		for col := 3; col < 7; col++ {
			b.SetCell(col, row, CellValue(ShapeJ)) //nolint:errcheck
		}
	}

	for _, shape := range allShapes() {
		if _, err := NewActivePiece(&b, shape); !errors.Is(err, ErrSpawnBlocked) {
			t.Errorf("%s: spawn into stack err = %v, expected ErrSpawnBlocked", shape, err)
		}
	}
}

func TestMoveHorizontalWalls(t *testing.T) {
	var b Board
	p, err := NewActivePiece(&b, ShapeO)
	if err != nil {
		t.Fatal(err)
	}

	// Push to the left wall.
	moves := 0
	for p.MoveHorizontal(&b, -1) == nil {
		moves++
		if moves > BoardWidth {
			t.Fatal("piece escaped the left wall")
		}
	}
	before := p
	if err := p.MoveHorizontal(&b, -1); !errors.Is(err, ErrBlocked) {
		t.Errorf("move into wall err = %v, expected ErrBlocked", err)
	}
	if p != before {
		t.Error("blocked move must not change the piece")
	}

	// Leftmost O cell sits in column 0.
	minCol := BoardWidth
	for _, c := range p.Cells() {
		if c.Col < minCol {
			minCol = c.Col
		}
	}
	if minCol != 0 {
		t.Errorf("leftmost cell in column %d, expected 0", minCol)
	}
}

func TestMoveHorizontalBlockedByLockedCell(t *testing.T) {
	var b Board
	p, err := NewActivePiece(&b, ShapeO)
	if err != nil {
		t.Fatal(err)
	}
	// Wall of locked cells directly right of the spawned O (columns 4-5).
	b.SetCell(6, 0, CellValue(ShapeI)) //nolint:errcheck
	b.SetCell(6, 1, CellValue(ShapeI)) //nolint:errcheck

	if err := p.MoveHorizontal(&b, 1); !errors.Is(err, ErrBlocked) {
		t.Errorf("move into locked cells err = %v, expected ErrBlocked", err)
	}
}

func TestHardDropCountsRows(t *testing.T) {
	var b Board
	p, err := NewActivePiece(&b, ShapeI)
	if err != nil {
		t.Fatal(err)
	}

	// Horizontal I spawns on row 0 and the board is empty, so it travels
	// to the bottom row.
	rows := p.HardDrop(&b)
	if rows != BoardHeight-1 {
		t.Errorf("HardDrop() = %d rows, expected %d", rows, BoardHeight-1)
	}
	for _, c := range p.Cells() {
		if c.Row != BoardHeight-1 {
			t.Errorf("cell %+v should rest on the bottom row", c)
		}
	}

	// Dropping again is a no-op.
	if again := p.HardDrop(&b); again != 0 {
		t.Errorf("second HardDrop() = %d, expected 0", again)
	}
}

func TestRotateWallKickAtLeftWall(t *testing.T) {
	var b Board
	// Vertical T hugging the left wall: rotating CCW would swing the nub
	// out of bounds without a kick.
	p := ActivePiece{Shape: ShapeT, Rotation: 1, Col: -1, Row: 5}
	if p.collides(&b) {
		t.Fatal("setup: piece should be valid at the wall")
	}

	if err := p.Rotate(&b, RotateCCW); err != nil {
		t.Fatalf("rotation at wall should kick, got %v", err)
	}
	if p.collides(&b) {
		t.Error("kicked piece must not collide")
	}
	if p.Rotation != 0 {
		t.Errorf("rotation index = %d, expected 0", p.Rotation)
	}
}

func TestRotateBlockedLeavesPieceUnchanged(t *testing.T) {
	var b Board
	// Fill everything except the cells of a horizontal I on the bottom
	// row; every rotation candidate then collides.
	for row := 0; row < BoardHeight; row++ {
		for col := 0; col < BoardWidth; col++ {
			b.SetCell(col, row, CellValue(ShapeJ)) //nolint:errcheck
		}
	}
	p := ActivePiece{Shape: ShapeI, Rotation: 0, Col: 3, Row: BoardHeight - 2}
	for _, c := range p.Cells() {
		b.SetCell(c.Col, c.Row, CellEmpty) //nolint:errcheck
	}
	if p.collides(&b) {
		t.Fatal("setup: piece should fit its carved slot")
	}

	before := p
	for _, dir := range []RotationDir{RotateCW, RotateCCW} {
		if err := p.Rotate(&b, dir); !errors.Is(err, ErrRotationBlocked) {
			t.Errorf("dir %d: err = %v, expected ErrRotationBlocked", dir, err)
		}
		if p != before {
			t.Fatalf("dir %d: failed rotation mutated the piece: %+v -> %+v", dir, before, p)
		}
	}
}

func TestRotateFullCycleRestoresCells(t *testing.T) {
	var b Board
	for _, shape := range allShapes() {
		p := ActivePiece{Shape: shape, Rotation: 0, Col: 3, Row: 8}
		start := p
		for i := 0; i < 4; i++ {
			if err := p.Rotate(&b, RotateCW); err != nil {
				t.Fatalf("%s: free rotation %d failed: %v", shape, i, err)
			}
		}
		if p != start {
			t.Errorf("%s: four CW rotations in open space should restore the piece, got %+v", shape, p)
		}
	}
}

func TestStepDownToFloor(t *testing.T) {
	var b Board
	p, err := NewActivePiece(&b, ShapeO)
	if err != nil {
		t.Fatal(err)
	}

	steps := 0
	for p.StepDown(&b) == nil {
		steps++
	}
	if steps != BoardHeight-2 {
		t.Errorf("O piece stepped %d rows, expected %d", steps, BoardHeight-2)
	}
	if p.CanStepDown(&b) {
		t.Error("piece on the floor must not report CanStepDown")
	}
	if err := p.StepDown(&b); !errors.Is(err, ErrBlocked) {
		t.Errorf("step into floor err = %v, expected ErrBlocked", err)
	}
}
