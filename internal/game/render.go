package game

import (
	"fmt"

	"github.com/nvoss/tetra/internal/core"
	"github.com/nvoss/tetra/internal/tetris"
)

// Visual characters for rendering
const (
	BlockChar = '█'
	GhostChar = '░'
)

const (
	boardX = 2 // left edge of the playfield box
	boardY = 1 // top edge of the playfield box

	// Each board cell renders as two characters wide.
	boardW = tetris.BoardWidth*2 + 2
	boardH = tetris.BoardHeight + 2

	sideX = boardX + boardW + 3

	minScreenW = sideX + 20
	minScreenH = boardY + boardH
)

// shapeColor maps a tetromino shape to its display color.
func shapeColor(s tetris.Shape) core.Color {
	switch s {
	case tetris.ShapeI:
		return core.ColorCyan
	case tetris.ShapeO:
		return core.ColorYellow
	case tetris.ShapeT:
		return core.ColorMagenta
	case tetris.ShapeS:
		return core.ColorGreen
	case tetris.ShapeZ:
		return core.ColorRed
	case tetris.ShapeJ:
		return core.ColorBlue
	case tetris.ShapeL:
		return core.ColorOrange
	default:
		return core.ColorDefault
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		g.renderTooSmall(dst)
		return
	}

	snap := g.session.Snapshot()

	g.renderBoard(dst, snap)
	g.renderSidebar(dst, snap)
	g.renderOverlays(dst, snap)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	dst.DrawTextCentered(dst.Height()/2, "Window too small")
	dst.DrawTextCentered(dst.Height()/2+1, "Please resize terminal")
}

// renderBoard draws the playfield box, locked cells, ghost and piece.
func (g *Game) renderBoard(dst *core.Screen, snap tetris.Snapshot) {
	dst.DrawBox(core.NewRect(boardX, boardY, boardW, boardH))

	for row := 0; row < tetris.BoardHeight; row++ {
		for col := 0; col < tetris.BoardWidth; col++ {
			v := snap.Board[row][col]
			if v == tetris.CellEmpty {
				continue
			}
			g.drawCell(dst, col, row, BlockChar, shapeColor(tetris.Shape(v)))
		}
	}

	if !snap.PieceActive {
		return
	}

	if g.cfg.Gameplay.GhostPiece {
		for _, c := range snap.GhostCells {
			g.drawCell(dst, c.Col, c.Row, GhostChar, core.ColorGray)
		}
	}
	for _, c := range snap.PieceCells {
		g.drawCell(dst, c.Col, c.Row, BlockChar, shapeColor(snap.PieceShape))
	}
}

// drawCell fills one board cell (two characters wide). Cells above the
// visible grid are skipped.
func (g *Game) drawCell(dst *core.Screen, col, row int, r rune, c core.Color) {
	if row < 0 {
		return
	}
	x := boardX + 1 + col*2
	y := boardY + 1 + row
	dst.SetColored(x, y, r, c)
	dst.SetColored(x+1, y, r, c)
}

// renderSidebar draws score, level, lines, the next-piece preview and
// the mode goal.
func (g *Game) renderSidebar(dst *core.Screen, snap tetris.Snapshot) {
	dst.DrawText(sideX, boardY, g.Title())

	dst.DrawText(sideX, boardY+2, fmt.Sprintf("Score: %d", snap.Score))
	dst.DrawText(sideX, boardY+3, fmt.Sprintf("Level: %d", snap.Level))
	dst.DrawText(sideX, boardY+4, fmt.Sprintf("Lines: %d", snap.Lines))

	dst.DrawText(sideX, boardY+6, "Next:")
	g.drawPreview(dst, sideX, boardY+7, snap.NextShape)

	switch g.mode {
	case ModeSprint:
		left := core.Max(0, sprintGoalLines-snap.Lines)
		dst.DrawText(sideX, boardY+11, fmt.Sprintf("Goal: %d lines left", left))
	case ModeUltra:
		dst.DrawText(sideX, boardY+11, fmt.Sprintf("Time: %ds left", g.timeLeftSeconds()))
	}

	dst.DrawText(sideX, boardY+boardH-4, "arrows/wasd move")
	dst.DrawText(sideX, boardY+boardH-3, "z/x rotate  space drop")
	dst.DrawText(sideX, boardY+boardH-2, "p pause  r restart  q quit")
}

// drawPreview draws a shape in spawn orientation at (x, y), two
// characters per cell.
func (g *Game) drawPreview(dst *core.Screen, x, y int, s tetris.Shape) {
	if s == tetris.ShapeNone {
		return
	}
	color := shapeColor(s)
	for _, o := range tetris.ShapeCells(s, 0) {
		dst.SetColored(x+o.X*2, y+o.Y, BlockChar, color)
		dst.SetColored(x+o.X*2+1, y+o.Y, BlockChar, color)
	}
}

// renderOverlays draws the pause and end-of-game messages over the board.
func (g *Game) renderOverlays(dst *core.Screen, snap tetris.Snapshot) {
	switch {
	case snap.GameOver:
		g.drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  |  R to restart", snap.Score))
	case g.won:
		g.drawCenteredMessage(dst, "FINISHED!",
			fmt.Sprintf("Score: %d  |  R to play again", snap.Score))
	case g.paused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// drawCenteredMessage draws a message box centered over the playfield.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	msgW := core.Max(len(title), len(subtitle)) + 4
	msgH := 5
	msgX := boardX + (boardW-msgW)/2
	msgY := boardY + (boardH-msgH)/2

	// Blank the box interior first so the playfield doesn't bleed through.
	for y := msgY; y < msgY+msgH; y++ {
		for x := msgX; x < msgX+msgW; x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(core.NewRect(msgX, msgY, msgW, msgH))

	dst.DrawTextColored(msgX+(msgW-len(title))/2, msgY+1, title, core.ColorBrightWhite)
	dst.DrawText(msgX+(msgW-len(subtitle))/2, msgY+3, subtitle)
}
