package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// cellSet is a set of occupied grid positions.
type cellSet map[core.Point]struct{}

// Add marks p as occupied.
func (s cellSet) Add(p core.Point) {
	s[p] = struct{}{}
}

// Has reports whether p is occupied.
func (s cellSet) Has(p core.Point) bool {
	_, ok := s[p]
	return ok
}

// occupied returns a new set holding the snake body and obstacles.
func (g *Game) occupied() cellSet {
	s := make(cellSet, len(g.body)+len(g.obstacles)+2)
	for _, p := range g.body {
		s.Add(p)
	}
	for _, p := range g.obstacles {
		s.Add(p)
	}
	return s
}

// spawn picks a uniformly random free cell by rejection sampling. There is
// no retry limit: the board is always far from full in normal play, and
// Validate guarantees room for the start position, food and initial obstacles.
func (g *Game) spawn(exclude cellSet) core.Point {
	b := g.cfg.Board
	for {
		p := core.Point{
			X: g.rng.Intn(b.Cols()) * b.Cell,
			Y: g.rng.Intn(b.Rows()) * b.Cell,
		}
		if !exclude.Has(p) {
			return p
		}
	}
}
