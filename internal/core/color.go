package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
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
	ColorIce
	ColorBrown
)

// Faded returns the color used for a cell drawn at the given alpha.
// Terminals have no blending, so anything mostly transparent turns gray.
func (c Color) Faded(alpha float64) Color {
	if alpha < 0.45 {
		return ColorGray
	}
	return c
}
