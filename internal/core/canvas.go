package core

// Canvas is the drawing surface the game renders into. Coordinates are in
// logical board units (1000×600 by default); each frontend scales them to
// terminal cells or window pixels and presents the finished frame itself.
type Canvas interface {
	// Size returns the logical canvas dimensions.
	Size() (w, h int)

	// Clear fills the whole canvas with a background color.
	Clear(bg Color)

	// Shade blends the whole canvas toward c; alpha 255 replaces it.
	Shade(c Color, alpha uint8)

	// FillRect draws a filled rectangle. radius > 0 rounds the corners.
	FillRect(r Rect, c Color, radius int)

	// FillCircle draws a filled circle centred at (cx, cy).
	FillCircle(cx, cy, radius int, c Color)

	// DrawText draws text centred at (cx, cy). size is a font size hint.
	DrawText(cx, cy int, text string, c Color, size int)
}
