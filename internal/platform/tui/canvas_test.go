package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

func newTestCanvas(cols int) *Canvas {
	return NewCanvas(config.DefaultSnakeConfig().Board, cols)
}

func TestCanvasSize(t *testing.T) {
	tests := []struct {
		cols         int
		wantW, wantH int
	}{
		{2, 100, 30},
		{1, 50, 30},
		{5, 100, 30},
	}

	for _, tt := range tests {
		c := newTestCanvas(tt.cols)
		if c.Screen().Width() != tt.wantW || c.Screen().Height() != tt.wantH {
			t.Errorf("cols=%d: screen %dx%d, want %dx%d",
				tt.cols, c.Screen().Width(), c.Screen().Height(), tt.wantW, tt.wantH)
		}
		if w, h := c.Size(); w != 1000 || h != 600 {
			t.Errorf("cols=%d: logical size %dx%d, want 1000x600", tt.cols, w, h)
		}
	}
}

func TestCanvasFillRect(t *testing.T) {
	c := newTestCanvas(2)
	c.Clear(core.ColorBlack)
	c.FillRect(core.NewRect(40, 20, 20, 20), core.ColorRed, 5)

	s := c.Screen()
	for _, x := range []int{4, 5} {
		if got := s.GetCell(x, 1).BG; got != core.ColorRed {
			t.Errorf("cell (%d,1) = %v, want red", x, got)
		}
	}
	for _, p := range []core.Point{{X: 3, Y: 1}, {X: 6, Y: 1}, {X: 4, Y: 0}, {X: 4, Y: 2}} {
		if got := s.GetCell(p.X, p.Y).BG; got != core.ColorBlack {
			t.Errorf("cell %v = %v, should be untouched", p, got)
		}
	}
}

func TestCanvasFillCircle(t *testing.T) {
	t.Run("covers cell", func(t *testing.T) {
		c := newTestCanvas(2)
		c.Clear(core.ColorBlack)
		c.FillCircle(10, 10, 10, core.ColorGreen)

		s := c.Screen()
		if s.GetCell(0, 0).BG != core.ColorGreen || s.GetCell(1, 0).BG != core.ColorGreen {
			t.Error("expected both columns of the cell to be filled")
		}
		if s.GetCell(2, 0).BG != core.ColorBlack {
			t.Error("circle leaked into the next cell")
		}
	})

	t.Run("small circle becomes a dot", func(t *testing.T) {
		c := newTestCanvas(2)
		c.Clear(core.ColorRed)
		c.FillCircle(505, 307, 3, core.ColorWhite)

		cell := c.Screen().GetCell(50, 15)
		if cell.Rune != dotRune || cell.FG != core.ColorWhite || cell.BG != core.ColorRed {
			t.Errorf("cell = %+v, want white dot on red", cell)
		}
	})
}

func TestCanvasDrawText(t *testing.T) {
	c := newTestCanvas(2)
	c.Clear(core.ColorBlack)
	c.DrawText(500, 300, "abcd", core.ColorYellow, 40)

	row := c.Screen().Row(15)
	if idx := strings.Index(row, "abcd"); idx != 48 {
		t.Errorf("text starts at column %d, want 48", idx)
	}
	if got := c.Screen().GetCell(48, 15).FG; got != core.ColorYellow {
		t.Errorf("text color = %v, want yellow", got)
	}
}

func TestCanvasShade(t *testing.T) {
	c := newTestCanvas(1)
	c.Clear(core.ColorWhite)

	c.Shade(core.ColorBlack, 255)
	if got := c.Screen().GetCell(3, 3).BG; got != core.ColorBlack {
		t.Errorf("full shade = %v, want black", got)
	}

	c.Clear(core.ColorWhite)
	c.Shade(core.ColorBlack, 0)
	if got := c.Screen().GetCell(3, 3).BG; got != core.ColorWhite {
		t.Errorf("zero shade = %v, want white", got)
	}
}
