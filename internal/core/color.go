package core

// Color represents a foreground color for a screen cell.
// Values map onto ANSI 256-color codes in the platform renderers.
type Color uint8

// Palette used by the road game.
const (
	ColorDefault Color = iota
	ColorGray
	ColorRed
	ColorBrightRed
	ColorBrightYellow
	ColorBrightCyan
)

// Colors lists every palette entry, default first.
var Colors = []Color{
	ColorDefault,
	ColorGray,
	ColorRed,
	ColorBrightRed,
	ColorBrightYellow,
	ColorBrightCyan,
}

// ANSI returns the ANSI 256-color index for the color, or -1 for the
// terminal's default foreground.
func (c Color) ANSI() int {
	switch c {
	case ColorGray:
		return 245
	case ColorRed:
		return 1
	case ColorBrightRed:
		return 9
	case ColorBrightYellow:
		return 11
	case ColorBrightCyan:
		return 14
	default:
		return -1
	}
}
