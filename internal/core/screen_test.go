package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, '#')
	if s.Get(3, 2) != '#' {
		t.Errorf("Get(3, 2) = %q, expected '#'", s.Get(3, 2))
	}

	// Untouched cells stay blank
	if s.Get(0, 0) != ' ' {
		t.Errorf("Get(0, 0) = %q, expected space", s.Get(0, 0))
	}

	// Out-of-bounds writes are ignored, reads return space
	s.Set(-1, 0, 'x')
	s.Set(10, 0, 'x')
	s.Set(0, 5, 'x')
	if s.Get(-1, 0) != ' ' || s.Get(10, 0) != ' ' || s.Get(0, 5) != ' ' {
		t.Error("Out-of-bounds Get should return space")
	}
}

func TestScreenColoredCells(t *testing.T) {
	s := NewScreen(8, 4)

	s.SetColored(1, 1, '█', ColorCyan)
	cell := s.GetCell(1, 1)
	if cell.Rune != '█' || cell.Color != ColorCyan {
		t.Errorf("GetCell(1, 1) = %+v, expected cyan block", cell)
	}

	// Plain Set uses the default color
	s.Set(2, 1, '#')
	if s.GetCell(2, 1).Color != ColorDefault {
		t.Error("Set should write ColorDefault")
	}

	// Out-of-bounds GetCell returns a blank default cell
	oob := s.GetCell(100, 100)
	if oob.Rune != ' ' || oob.Color != ColorDefault {
		t.Errorf("out-of-bounds GetCell = %+v, expected blank", oob)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 4)
	s.SetColored(0, 0, 'x', ColorRed)
	s.Clear()

	if s.Get(0, 0) != ' ' || s.GetCell(0, 0).Color != ColorDefault {
		t.Error("Clear should blank all cells")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawText(2, 1, "hello")

	if got := strings.TrimRight(s.Row(1), " "); got != "  hello" {
		t.Errorf("Row(1) = %q, expected %q", got, "  hello")
	}

	// Clipping at the right edge
	s.DrawText(8, 0, "abc")
	if s.Get(8, 0) != 'a' || s.Get(9, 0) != 'b' {
		t.Error("DrawText should clip at the right edge")
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(6, 3)
	s.Set(1, 1, '@')

	s.Resize(10, 5)
	if s.Width() != 10 || s.Height() != 5 {
		t.Errorf("Resize dimensions = %dx%d, expected 10x5", s.Width(), s.Height())
	}
	if s.Get(1, 1) != '@' {
		t.Error("Resize should preserve existing content")
	}

	s.Resize(2, 2)
	if s.Get(1, 1) != '@' {
		t.Error("Shrinking should keep content inside the new bounds")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	expected := "a  \n  b"
	if s.String() != expected {
		t.Errorf("String() = %q, expected %q", s.String(), expected)
	}
}
