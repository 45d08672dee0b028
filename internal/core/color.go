package core

// Color is the foreground color of a screen cell.
// The platform layer maps it to an ANSI 256-color code.
type Color uint8

// Palette used by the sprites and the HUD.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightWhite
	ColorOrange
	ColorBrown
	ColorGray
)
