package tui

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// dotRune marks shapes too small to cover a whole terminal cell.
const dotRune = '•'

// Canvas draws logical board coordinates onto a terminal Screen.
// One board cell becomes one row and colsPerCell columns, since terminal
// cells are about twice as tall as they are wide.
type Canvas struct {
	screen *core.Screen
	width  int // Logical size
	height int
	unitX  int // Logical units per column
	unitY  int // Logical units per row
}

// NewCanvas creates a canvas for the board, using colsPerCell terminal
// columns per board cell (1 or 2).
func NewCanvas(board config.BoardConfig, colsPerCell int) *Canvas {
	colsPerCell = core.Clamp(colsPerCell, 1, 2)
	return &Canvas{
		screen: core.NewScreen(board.Cols()*colsPerCell, board.Rows()),
		width:  board.Width,
		height: board.Height,
		unitX:  max(board.Cell/colsPerCell, 1),
		unitY:  max(board.Cell, 1),
	}
}

// Screen returns the underlying cell buffer.
func (c *Canvas) Screen() *core.Screen {
	return c.screen
}

// Size returns the logical canvas size.
func (c *Canvas) Size() (int, int) {
	return c.width, c.height
}

// Clear fills the whole canvas.
func (c *Canvas) Clear(bg core.Color) {
	c.screen.Clear(bg)
}

// Shade blends every cell toward col.
func (c *Canvas) Shade(col core.Color, alpha uint8) {
	t := float64(alpha) / 255
	c.screen.Map(func(cell core.Cell) core.Cell {
		cell.FG = mix(cell.FG, col, t)
		cell.BG = mix(cell.BG, col, t)
		return cell
	})
}

// FillRect paints every terminal cell the rectangle touches. Corners stay
// square at this resolution, so radius is ignored.
func (c *Canvas) FillRect(r core.Rect, col core.Color, _ int) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	x0, y0 := r.X/c.unitX, r.Y/c.unitY
	x1, y1 := (r.Right()-1)/c.unitX, (r.Bottom()-1)/c.unitY
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			c.screen.SetBG(x, y, col)
		}
	}
}

// FillCircle paints the cells whose centers fall inside the circle. A
// circle narrower than one column is drawn as a dot in the cell holding
// its center.
func (c *Canvas) FillCircle(cx, cy, radius int, col core.Color) {
	if 2*radius < min(c.unitX, c.unitY) {
		c.dot(cx, cy, col)
		return
	}

	x0, y0 := (cx-radius)/c.unitX, (cy-radius)/c.unitY
	x1, y1 := (cx+radius)/c.unitX, (cy+radius)/c.unitY

	painted := false
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			dx := x*c.unitX + c.unitX/2 - cx
			dy := y*c.unitY + c.unitY/2 - cy
			if dx*dx+dy*dy <= radius*radius {
				c.screen.SetBG(x, y, col)
				painted = true
			}
		}
	}
	if !painted {
		c.dot(cx, cy, col)
	}
}

// dot marks the cell holding (x, y) with a colored dot, keeping its background.
func (c *Canvas) dot(x, y int, col core.Color) {
	cx, cy := x/c.unitX, y/c.unitY
	cell := c.screen.GetCell(cx, cy)
	c.screen.SetCell(cx, cy, core.Cell{Rune: dotRune, FG: col, BG: cell.BG})
}

// DrawText writes text centered on (cx, cy). Terminals have one font
// size, so size is ignored.
func (c *Canvas) DrawText(cx, cy int, text string, col core.Color, _ int) {
	n := len([]rune(text))
	c.screen.DrawText(cx/c.unitX-n/2, cy/c.unitY, text, col)
}

// mix blends a toward b by t in RGB space.
func mix(a, b core.Color, t float64) core.Color {
	ca := colorful.Color{R: float64(a.R) / 255, G: float64(a.G) / 255, B: float64(a.B) / 255}
	cb := colorful.Color{R: float64(b.R) / 255, G: float64(b.G) / 255, B: float64(b.B) / 255}
	r, g, bl := ca.BlendRgb(cb, t).Clamped().RGB255()
	return core.RGB(r, g, bl)
}
