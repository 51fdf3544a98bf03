package snake

import (
	"time"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Screen colors.
var (
	menuBackground  = core.RGB(50, 153, 213)
	obstacleColor   = core.RGB(213, 50, 80)
	snakeTailColor  = core.RGB(200, 0, 0)
	snakeHeadColor  = core.RGB(100, 0, 0)
	foodColorA      = core.RGB(255, 165, 0)
	foodColorB      = core.RGB(255, 69, 0)
	pauseShadeAlpha = uint8(150)
)

// levelBackground returns the board color for a level. Levels past the
// end of the palette keep the last color.
func (g *Game) levelBackground() core.Color {
	levels := g.cfg.Palette.Levels
	if len(levels) == 0 {
		return core.ColorBlack
	}
	idx := min(max(g.level-1, 0), len(levels)-1)
	c := levels[idx]
	return core.RGB(c[0], c[1], c[2])
}

// blend interpolates between two colors in RGB space, t in [0, 1].
func blend(a, b core.Color, t float64) core.Color {
	ca := colorful.Color{R: float64(a.R) / 255, G: float64(a.G) / 255, B: float64(a.B) / 255}
	cb := colorful.Color{R: float64(b.R) / 255, G: float64(b.G) / 255, B: float64(b.B) / 255}
	r, g, bl := ca.BlendRgb(cb, t).Clamped().RGB255()
	return core.RGB(r, g, bl)
}

// segmentColor shades the snake from the tail (i=0) to the head (i=n-1).
func segmentColor(i, n int) core.Color {
	return blend(snakeTailColor, snakeHeadColor, float64(i)/float64(max(n-1, 1)))
}

// cycle returns how far t is into a repeating period, in [0, 1).
func cycle(t time.Time, period time.Duration) float64 {
	return float64(t.UnixNano()%int64(period)) / float64(period)
}

// triangle maps a cycle position to a 0..1..0 wave.
func triangle(phase float64) float64 {
	if phase < 0.5 {
		return phase * 2
	}
	return (1 - phase) * 2
}
