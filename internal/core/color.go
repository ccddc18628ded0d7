package core

// Color is a foreground color for a screen cell.
// The platform layer maps it to ANSI 256-color codes.
type Color uint8

// Colors used by the puzzle renderer.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorWhite
	ColorGray
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightWhite
)
