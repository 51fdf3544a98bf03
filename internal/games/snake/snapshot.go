package snake

import (
	"slices"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick      uint64
	Phase     Phase
	Score     int
	Level     int
	Length    int // Target length
	Head      core.Point
	Velocity  core.Point
	Body      []core.Point // Oldest first, head last
	Food      core.Point
	PowerUp   *core.Point
	Obstacles []core.Point
	Paused    bool
	TickRate  int
}

// Snapshot returns a copy of the current game state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:      g.tick,
		Phase:     g.phase,
		Score:     g.score,
		Level:     g.level,
		Length:    g.length,
		Head:      g.head,
		Velocity:  g.velocity,
		Body:      slices.Clone(g.body),
		Food:      g.food,
		Obstacles: slices.Clone(g.obstacles),
		Paused:    g.paused,
		TickRate:  g.TickRate(),
	}
	if g.powerUp != nil {
		pos := g.powerUp.Pos
		s.PowerUp = &pos
	}
	return s
}

// Equal reports whether two snapshots describe the same state.
func (s Snapshot) Equal(o Snapshot) bool {
	samePowerUp := (s.PowerUp == nil) == (o.PowerUp == nil) &&
		(s.PowerUp == nil || *s.PowerUp == *o.PowerUp)
	return s.Tick == o.Tick &&
		s.Phase == o.Phase &&
		s.Score == o.Score &&
		s.Level == o.Level &&
		s.Length == o.Length &&
		s.Head == o.Head &&
		s.Velocity == o.Velocity &&
		slices.Equal(s.Body, o.Body) &&
		s.Food == o.Food &&
		samePowerUp &&
		slices.Equal(s.Obstacles, o.Obstacles) &&
		s.Paused == o.Paused &&
		s.TickRate == o.TickRate
}
