package core

import "fmt"

// Color is a 24-bit RGB color. Frontends convert it to whatever their
// toolkit expects (lipgloss hex strings, raylib colors).
type Color struct {
	R, G, B uint8
}

// RGB builds a Color from its channels.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Hex returns the color as a "#rrggbb" string.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Predefined colors used by the game screens.
var (
	ColorBlack  = RGB(0, 0, 0)
	ColorWhite  = RGB(255, 255, 255)
	ColorRed    = RGB(255, 0, 0)
	ColorGreen  = RGB(0, 255, 0)
	ColorYellow = RGB(255, 255, 102)
	ColorGold   = RGB(255, 215, 0)
)
