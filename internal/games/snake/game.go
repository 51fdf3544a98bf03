// Package snake implements the snake game loop: movement on a wrapping
// board, food, power-ups, obstacles that appear as levels go by, and the
// game-over bookkeeping against the stored high score.
//
// The game is driven by Step (one tick of logic) and Render (draw the
// current state). Frontends decide how often to call them using TickRate.
package snake

import (
	"fmt"
	"io"
	"math/rand"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Phase is the screen the game is on.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhaseOver
)

func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// SoundPlayer plays named sound assets without blocking.
type SoundPlayer interface {
	Has(name string) bool
	Play(name string)
	Loop(name string)
	StopLoop()
}

// ScoreStore persists the all-time high score.
type ScoreStore interface {
	Load() (int, error)
	Save(score int) error
}

// RunRecorder keeps a history of finished runs.
type RunRecorder interface {
	RecordRun(sum core.RunSummary) (int64, error)
}

// Deps are the collaborators the game talks to. Nil fields are replaced
// with no-op implementations.
type Deps struct {
	Clock   core.Clock
	Sounds  SoundPlayer
	Scores  ScoreStore
	History RunRecorder
	Logger  *log.Logger
}

// PowerUp is a bonus item that disappears after a while.
type PowerUp struct {
	Pos       core.Point
	SpawnedAt time.Time
}

// Game implements the snake game.
type Game struct {
	cfg     config.SnakeConfig
	clock   core.Clock
	sounds  SoundPlayer
	scores  ScoreStore
	history RunRecorder
	logger  *log.Logger

	rng   *rand.Rand
	tick  uint64
	phase Phase

	// Snake state
	head     core.Point
	velocity core.Point
	body     []core.Point // Oldest first, head last
	length   int          // Target length

	// Board state
	obstacles []core.Point
	blocked   cellSet
	food      core.Point
	powerUp   *PowerUp

	score        int
	level        int
	levelStarted time.Time
	startedAt    time.Time
	paused       bool

	eatSounds  []string
	soundIndex int // Next eat sound, kept across runs

	highScore int
	result    core.RunSummary
}

// New creates a game showing the menu. Call Reset before the first Step.
func New(cfg config.SnakeConfig, deps Deps) *Game {
	g := &Game{
		cfg:     cfg,
		clock:   deps.Clock,
		sounds:  deps.Sounds,
		scores:  deps.Scores,
		history: deps.History,
		logger:  deps.Logger,
		blocked: make(cellSet),
	}
	if g.clock == nil {
		g.clock = core.SystemClock{}
	}
	if g.sounds == nil {
		g.sounds = silence{}
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}

	// Only sounds that actually loaded take part in the rotation
	for _, name := range cfg.Sounds.Eat {
		if g.sounds.Has(name) {
			g.eatSounds = append(g.eatSounds, name)
		}
	}
	return g
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake Pro"
}

// Reset seeds the RNG and returns to the menu.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.phase = PhaseMenu
	g.result = core.RunSummary{}
	g.highScore = g.loadHighScore()
	g.newRun(g.clock.Now())
}

// newRun places a fresh snake, obstacles and food.
func (g *Game) newRun(now time.Time) {
	b := g.cfg.Board
	g.head = core.Point{X: b.Cols() / 2 * b.Cell, Y: b.Rows() / 2 * b.Cell}
	g.velocity = core.Point{}
	g.body = []core.Point{g.head}
	g.length = 1
	g.score = 0
	g.level = 1
	g.levelStarted = now
	g.startedAt = now
	g.paused = false
	g.powerUp = nil

	g.obstacles = nil
	g.blocked = make(cellSet)
	occupied := g.occupied()
	for range g.cfg.Obstacles.Initial {
		p := g.spawn(occupied)
		occupied.Add(p)
		g.addObstacle(p)
	}
	g.food = g.spawn(occupied)
}

// startRun begins a new run from the menu or the game-over screen.
func (g *Game) startRun() {
	g.newRun(g.clock.Now())
	g.phase = PhasePlaying
	if g.cfg.Sounds.Music != "" {
		g.sounds.Loop(g.cfg.Sounds.Music)
	}
	g.logger.Info("run started", "tick_rate", g.TickRate(), "obstacles", len(g.obstacles))
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	// Quit wins over everything else queued this tick
	if in.Has(core.ActionQuit) {
		g.logger.Debug("quit requested", "phase", g.phase, "score", g.score)
		return core.StepResult{State: g.State(), Quit: true}
	}

	switch g.phase {
	case PhaseMenu, PhaseOver:
		if in.Has(core.ActionConfirm) {
			g.startRun()
		}
	case PhasePlaying:
		g.playTick(in)
	}

	return core.StepResult{State: g.State()}
}

// playTick runs one tick of an active run.
func (g *Game) playTick(in core.InputFrame) {
	for _, a := range in.Actions {
		switch {
		case a == core.ActionPause:
			g.paused = !g.paused
		case a.IsDirection():
			g.steer(a)
		}
	}

	if g.paused {
		return
	}

	now := g.clock.Now()
	collided := g.move()
	g.eat(now)
	g.expirePowerUp(now)
	g.checkLevelUp(now)

	// The rest of the tick still counts; the run ends after it
	if collided {
		g.finish(now)
	}
}

// steer changes direction only across the current axis, so the snake can
// never turn straight back on itself with a single key.
func (g *Game) steer(a core.Action) {
	cell := g.cfg.Board.Cell
	switch a {
	case core.ActionLeft:
		if g.velocity.X == 0 {
			g.velocity = core.Point{X: -cell}
		}
	case core.ActionRight:
		if g.velocity.X == 0 {
			g.velocity = core.Point{X: cell}
		}
	case core.ActionUp:
		if g.velocity.Y == 0 {
			g.velocity = core.Point{Y: -cell}
		}
	case core.ActionDown:
		if g.velocity.Y == 0 {
			g.velocity = core.Point{Y: cell}
		}
	}
}

// move advances the head, grows or shifts the body and reports whether the
// head ran into the body.
func (g *Game) move() bool {
	b := g.cfg.Board
	next := g.head.Add(g.velocity).Wrap(b.Width, b.Height)

	// Obstacles stop the head in place instead of ending the run
	if g.blocked.Has(next) {
		next = g.head
	}
	g.head = next

	g.body = append(g.body, next)
	if len(g.body) > g.length {
		g.body = g.body[1:]
	}

	return slices.Contains(g.body[:len(g.body)-1], next)
}

// eat handles food and power-up pickups at the head position.
func (g *Game) eat(now time.Time) {
	sc := g.cfg.Scoring

	if g.head == g.food {
		g.length += sc.FoodGrowth
		g.score += sc.FoodPoints
		g.playNextEatSound()

		occupied := g.occupied()
		g.food = g.spawn(occupied)
		if g.powerUp == nil && g.rng.Float64() < sc.PowerUpChance {
			occupied.Add(g.food)
			g.powerUp = &PowerUp{Pos: g.spawn(occupied), SpawnedAt: now}
		}
	}

	if g.powerUp != nil && g.head == g.powerUp.Pos {
		g.score += sc.PowerUpPoints
		g.length += sc.PowerUpGrowth
		g.powerUp = nil
	}
}

// expirePowerUp removes a power-up that has been on the board too long.
func (g *Game) expirePowerUp(now time.Time) {
	if g.powerUp != nil && now.Sub(g.powerUp.SpawnedAt) > g.cfg.Timing.PowerUpDuration() {
		g.powerUp = nil
	}
}

// checkLevelUp raises the level once the level timer runs out. Each new
// level speeds the game up and adds one obstacle.
func (g *Game) checkLevelUp(now time.Time) {
	if now.Sub(g.levelStarted) <= g.cfg.Timing.LevelDuration() {
		return
	}

	g.level++
	occupied := g.occupied()
	occupied.Add(g.food)
	if g.powerUp != nil {
		occupied.Add(g.powerUp.Pos)
	}
	g.addObstacle(g.spawn(occupied))
	g.levelStarted = now

	g.logger.Info("level up", "level", g.level, "tick_rate", g.TickRate(), "score", g.score)
}

// playNextEatSound cycles through the loaded eat sounds.
func (g *Game) playNextEatSound() {
	if len(g.eatSounds) == 0 {
		return
	}
	g.sounds.Play(g.eatSounds[g.soundIndex])
	g.soundIndex = (g.soundIndex + 1) % len(g.eatSounds)
}

// finish ends the run: game-over sound, high score update, history entry.
func (g *Game) finish(now time.Time) {
	g.phase = PhaseOver
	g.paused = false

	g.sounds.StopLoop()
	if name := g.cfg.Sounds.GameOver; name != "" {
		g.sounds.Play(name)
	}

	previous := g.loadHighScore()
	high := max(g.score, previous)
	if g.scores != nil {
		if err := g.scores.Save(high); err != nil {
			g.logger.Warn("could not save high score", "error", err)
		}
	}
	g.highScore = high

	g.result = core.RunSummary{
		Score:     g.score,
		HighScore: high,
		NewHigh:   g.score > previous,
		Level:     g.level,
		Length:    g.length,
		Duration:  now.Sub(g.startedAt),
		EndedAt:   now,
	}

	if g.history != nil {
		if _, err := g.history.RecordRun(g.result); err != nil {
			g.logger.Warn("could not record run", "error", err)
		}
	}

	g.logger.Info("game over",
		"score", g.score,
		"high_score", high,
		"new_high", g.result.NewHigh,
		"level", g.level,
		"length", g.length,
	)
}

// loadHighScore reads the stored high score; failures count as 0.
func (g *Game) loadHighScore() int {
	if g.scores == nil {
		return 0
	}
	score, err := g.scores.Load()
	if err != nil {
		g.logger.Warn("could not load high score", "error", err)
		return 0
	}
	return score
}

func (g *Game) addObstacle(p core.Point) {
	g.obstacles = append(g.obstacles, p)
	g.blocked.Add(p)
}

// TickRate returns how many ticks per second the frontend should run.
func (g *Game) TickRate() int {
	if g.phase != PhasePlaying {
		return g.cfg.TickRate(1)
	}
	return g.cfg.TickRate(g.level)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Level:    g.level,
		GameOver: g.phase == PhaseOver,
		Paused:   g.paused,
	}
}

// Phase returns the current screen.
func (g *Game) Phase() Phase {
	return g.phase
}

// Result returns the summary of the last finished run.
func (g *Game) Result() core.RunSummary {
	return g.result
}

// HighScore returns the stored high score as last seen by the game.
func (g *Game) HighScore() int {
	return g.highScore
}

// Board returns the board configuration.
func (g *Game) Board() config.BoardConfig {
	return g.cfg.Board
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	return fmt.Sprintf("tick=%d phase=%s score=%d level=%d len=%d/%d head=(%d,%d) vel=(%d,%d) food=(%d,%d) paused=%v",
		g.tick, g.phase, g.score, g.level, len(g.body), g.length,
		g.head.X, g.head.Y, g.velocity.X, g.velocity.Y, g.food.X, g.food.Y, g.paused)
}

// silence is the SoundPlayer used when none is configured.
type silence struct{}

func (silence) Has(string) bool { return false }
func (silence) Play(string)     {}
func (silence) Loop(string)     {}
func (silence) StopLoop()       {}
