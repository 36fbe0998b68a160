package core

// Color is a foreground color for a screen cell, resolved to ANSI 256-color
// codes by the platform renderer.
type Color uint8

// Colors used by the board renderer and HUD. The first seven non-default
// entries line up with the classic tetromino palette.
const (
	ColorDefault Color = iota
	ColorCyan          // I
	ColorYellow        // O
	ColorMagenta       // T
	ColorGreen         // S
	ColorRed           // Z
	ColorBlue          // J
	ColorOrange        // L
	ColorWhite
	ColorGray
	ColorBrightWhite
)
