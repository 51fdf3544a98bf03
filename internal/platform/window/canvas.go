// Package window runs the snake game in a native window with raylib.
package window

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/vovakirdan/tui-snake/internal/core"
)

const circleSegments = 16

// Canvas draws onto the current raylib frame. Logical units are pixels.
// Calls are only valid between rl.BeginDrawing and rl.EndDrawing.
type Canvas struct {
	width  int32
	height int32
}

// NewCanvas creates a canvas for a width×height window.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{width: int32(width), height: int32(height)}
}

// Size returns the window size.
func (c *Canvas) Size() (int, int) {
	return int(c.width), int(c.height)
}

// Clear fills the window.
func (c *Canvas) Clear(bg core.Color) {
	rl.ClearBackground(toRL(bg, 255))
}

// Shade covers the window with a translucent rectangle.
func (c *Canvas) Shade(col core.Color, alpha uint8) {
	rl.DrawRectangle(0, 0, c.width, c.height, toRL(col, alpha))
}

// FillRect draws a filled rectangle, rounding its corners by radius pixels.
func (c *Canvas) FillRect(r core.Rect, col core.Color, radius int) {
	if radius <= 0 {
		rl.DrawRectangle(int32(r.X), int32(r.Y), int32(r.W), int32(r.H), toRL(col, 255))
		return
	}
	rec := rl.NewRectangle(float32(r.X), float32(r.Y), float32(r.W), float32(r.H))
	rl.DrawRectangleRounded(rec, roundness(r, radius), circleSegments, toRL(col, 255))
}

// FillCircle draws a filled circle.
func (c *Canvas) FillCircle(cx, cy, radius int, col core.Color) {
	rl.DrawCircle(int32(cx), int32(cy), float32(radius), toRL(col, 255))
}

// DrawText draws text centered on (cx, cy) with the default font.
func (c *Canvas) DrawText(cx, cy int, text string, col core.Color, size int) {
	fontSize := int32(size)
	textWidth := rl.MeasureText(text, fontSize)
	rl.DrawText(text, int32(cx)-textWidth/2, int32(cy)-fontSize/2, fontSize, toRL(col, 255))
}

// roundness converts a corner radius to raylib's fraction of the shorter side.
func roundness(r core.Rect, radius int) float32 {
	short := min(r.W, r.H)
	if short <= 0 {
		return 0
	}
	return min(float32(2*radius)/float32(short), 1)
}

func toRL(c core.Color, alpha uint8) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, alpha)
}
