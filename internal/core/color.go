package core

// Color represents a foreground color for a screen cell.
// The platform layer maps each value to an ANSI color.
type Color uint8

// Colors used by the duel view.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorOrange
	ColorGray
)

// PlayerColor returns the accent color used for a duelist.
func PlayerColor(id PlayerID) Color {
	switch id {
	case Player1:
		return ColorCyan
	case Player2:
		return ColorMagenta
	default:
		return ColorDefault
	}
}
