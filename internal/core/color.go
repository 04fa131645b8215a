package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for world elements.
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
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorBrown
	ColorDarkGreen
	ColorPink
	ColorDarkGray
)

// Dim returns a muted variant used while overlays fade out.
func (c Color) Dim() Color {
	switch c {
	case ColorBrightWhite, ColorWhite:
		return ColorGray
	case ColorGray, ColorDefault:
		return ColorDarkGray
	default:
		return c
	}
}
