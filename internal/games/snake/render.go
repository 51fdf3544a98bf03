package snake

import (
	"fmt"
	"math"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

const (
	titleSize = 40
	textSize  = 25

	pulsePeriod  = time.Second
	powerUpOuter = 12
	powerUpInner = 8
)

// Render draws the current phase onto the canvas. Animation depends only
// on the clock, so calling Render more often than Step is fine.
func (g *Game) Render(dst core.Canvas) {
	switch g.phase {
	case PhaseMenu:
		g.renderMenu(dst)
	case PhaseOver:
		g.renderGameOver(dst)
	default:
		g.renderBoard(dst)
	}
}

// renderMenu draws the title screen.
func (g *Game) renderMenu(dst core.Canvas) {
	w, h := dst.Size()
	cx, cy := w/2, h/2

	dst.Clear(menuBackground)
	dst.DrawText(cx, cy-60, "Ultimate Snake Game", core.ColorYellow, titleSize)
	dst.DrawText(cx, cy-10, fmt.Sprintf("High Score: %d", g.highScore), core.ColorWhite, textSize)
	dst.DrawText(cx, cy+40, "C: Start  P: Pause  Q: Quit", core.ColorYellow, textSize)
}

// renderGameOver draws the result screen for the last run.
func (g *Game) renderGameOver(dst core.Canvas) {
	w, h := dst.Size()
	cx, cy := w/2, h/2

	dst.Clear(core.ColorBlack)
	dst.DrawText(cx, cy-50, "GAME OVER!", core.ColorRed, titleSize)
	dst.DrawText(cx, cy, fmt.Sprintf("Score: %d", g.result.Score), core.ColorWhite, textSize)
	if g.result.NewHigh {
		dst.DrawText(cx, cy+50, "New High Score!", core.ColorGreen, textSize)
	}
	dst.DrawText(cx, cy+100, "Press C to Replay or Q to Quit", core.ColorYellow, textSize)
}

// renderBoard draws a running game.
func (g *Game) renderBoard(dst core.Canvas) {
	cell := g.cfg.Board.Cell
	now := g.clock.Now()

	dst.Clear(g.levelBackground())

	for _, p := range g.obstacles {
		dst.FillRect(core.NewRect(p.X, p.Y, cell, cell), obstacleColor, 0)
	}

	g.renderSnake(dst)
	g.renderFood(dst, now)
	if g.powerUp != nil {
		g.renderPowerUp(dst, now)
	}

	w, _ := dst.Size()
	hud := fmt.Sprintf("Score: %d  Level: %d", g.score, g.level)
	dst.DrawText(w/2, 20, hud, core.ColorYellow, textSize)

	if g.paused {
		_, h := dst.Size()
		dst.Shade(core.ColorBlack, pauseShadeAlpha)
		dst.DrawText(w/2, h/2, "Paused - Press P to Resume", core.ColorWhite, textSize)
	}
}

// renderSnake draws the body with a tail-to-head gradient and eyes on the head.
func (g *Game) renderSnake(dst core.Canvas) {
	cell := g.cfg.Board.Cell
	n := len(g.body)
	for i, p := range g.body {
		dst.FillRect(core.NewRect(p.X, p.Y, cell, cell), segmentColor(i, n), cell/4)
	}
	if n == 0 {
		return
	}

	head := g.body[n-1]
	eyeY := head.Y + cell*7/20
	eyeR := max(cell*3/20, 1)
	dst.FillCircle(head.X+cell/4, eyeY, eyeR, core.ColorWhite)
	dst.FillCircle(head.X+cell*3/4, eyeY, eyeR, core.ColorWhite)
}

// renderFood draws the food as a circle that breathes once per second.
func (g *Game) renderFood(dst core.Canvas, now time.Time) {
	cell := g.cfg.Board.Cell
	phase := cycle(now, pulsePeriod)

	shrink := int(4 * math.Abs(phase-0.5) * float64(cell) / 4)
	radius := max(cell/2-shrink, 1)
	color := blend(foodColorA, foodColorB, math.Abs(2*phase-1))

	dst.FillCircle(g.food.X+cell/2, g.food.Y+cell/2, radius, color)
}

// renderPowerUp draws the power-up as a gold disc with a glowing core.
func (g *Game) renderPowerUp(dst core.Canvas, now time.Time) {
	cell := g.cfg.Board.Cell
	glow := uint8(128 + int(127*triangle(cycle(now, pulsePeriod))))
	cx := g.powerUp.Pos.X + cell/2
	cy := g.powerUp.Pos.Y + cell/2

	dst.FillCircle(cx, cy, powerUpOuter, core.ColorGold)
	dst.FillCircle(cx, cy, powerUpInner, core.RGB(glow, glow, 0))
}
