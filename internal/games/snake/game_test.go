package snake

import (
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type fakeSounds struct {
	loaded map[string]bool
	played []string
	loops  []string
	stops  int
}

func newFakeSounds(names ...string) *fakeSounds {
	s := &fakeSounds{loaded: make(map[string]bool)}
	for _, n := range names {
		s.loaded[n] = true
	}
	return s
}

func (s *fakeSounds) Has(name string) bool { return s.loaded[name] }
func (s *fakeSounds) Play(name string)     { s.played = append(s.played, name) }
func (s *fakeSounds) Loop(name string)     { s.loops = append(s.loops, name) }
func (s *fakeSounds) StopLoop()            { s.stops++ }

type memStore struct {
	score   int
	loadErr error
	saves   []int
}

func (m *memStore) Load() (int, error) { return m.score, m.loadErr }

func (m *memStore) Save(score int) error {
	m.saves = append(m.saves, score)
	m.score = score
	return nil
}

type fakeRecorder struct {
	runs []core.RunSummary
}

func (r *fakeRecorder) RecordRun(sum core.RunSummary) (int64, error) {
	r.runs = append(r.runs, sum)
	return int64(len(r.runs)), nil
}

type harness struct {
	g       *Game
	clock   *fakeClock
	sounds  *fakeSounds
	store   *memStore
	history *fakeRecorder
}

func testConfig() config.SnakeConfig {
	cfg := config.DefaultSnakeConfig()
	cfg.Obstacles.Initial = 0
	cfg.Scoring.PowerUpChance = 0
	cfg.Sounds.Eat = []string{"a", "b", "c"}
	cfg.Sounds.GameOver = "over"
	cfg.Sounds.Music = "music"
	return cfg
}

// newHarness builds a game from cfg, resets it and leaves it on the menu.
func newHarness(t *testing.T, cfg config.SnakeConfig) *harness {
	t.Helper()
	h := &harness{
		clock:   &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)},
		sounds:  newFakeSounds("a", "b", "c", "over", "music"),
		store:   &memStore{},
		history: &fakeRecorder{},
	}
	h.g = New(cfg, Deps{
		Clock:   h.clock,
		Sounds:  h.sounds,
		Scores:  h.store,
		History: h.history,
	})
	h.g.Reset(core.RuntimeConfig{Seed: 42})
	return h
}

// startedHarness returns a game in the playing phase with food parked in
// the top-left corner, away from the centre row.
func startedHarness(t *testing.T, cfg config.SnakeConfig) *harness {
	t.Helper()
	h := newHarness(t, cfg)
	h.step(core.ActionConfirm)
	if h.g.Phase() != PhasePlaying {
		t.Fatalf("expected playing phase after confirm, got %v", h.g.Phase())
	}
	h.g.food = core.Point{X: 0, Y: 0}
	return h
}

func (h *harness) step(actions ...core.Action) core.StepResult {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return h.g.Step(in)
}

// setSnake replaces the body (oldest first) and moves the head to its end.
func (h *harness) setSnake(vel core.Point, body ...core.Point) {
	h.g.body = slices.Clone(body)
	h.g.length = len(body)
	h.g.head = body[len(body)-1]
	h.g.velocity = vel
}

func pt(x, y int) core.Point { return core.Point{X: x, Y: y} }

var (
	right = pt(20, 0)
	up    = pt(0, -20)
)

func TestStartsOnMenu(t *testing.T) {
	h := newHarness(t, testConfig())

	if h.g.Phase() != PhaseMenu {
		t.Fatalf("expected menu phase, got %v", h.g.Phase())
	}

	// Directions and pause do nothing on the menu
	h.step(core.ActionRight, core.ActionPause)
	if h.g.Phase() != PhaseMenu {
		t.Errorf("expected to stay on menu, got %v", h.g.Phase())
	}
	if len(h.sounds.loops) != 0 {
		t.Errorf("music started before confirm: %v", h.sounds.loops)
	}
}

func TestStartPosition(t *testing.T) {
	h := startedHarness(t, testConfig())
	g := h.g

	if g.head != pt(500, 300) {
		t.Errorf("head = %v, want (500,300)", g.head)
	}
	if !g.velocity.IsZero() {
		t.Errorf("velocity = %v, want zero", g.velocity)
	}
	if g.length != 1 || len(g.body) != 1 {
		t.Errorf("length = %d body = %d, want 1 and 1", g.length, len(g.body))
	}
	if s := g.State(); s.Score != 0 || s.Level != 1 || s.GameOver || s.Paused {
		t.Errorf("unexpected initial state %+v", s)
	}
	if !slices.Equal(h.sounds.loops, []string{"music"}) {
		t.Errorf("loops = %v, want [music]", h.sounds.loops)
	}
	if g.TickRate() != 10 {
		t.Errorf("TickRate() = %d, want 10", g.TickRate())
	}
}

func TestInitialObstacles(t *testing.T) {
	cfg := testConfig()
	cfg.Obstacles.Initial = 3
	h := startedHarness(t, cfg)

	if len(h.g.obstacles) != 3 {
		t.Fatalf("expected 3 obstacles, got %d", len(h.g.obstacles))
	}
	seen := make(cellSet)
	for _, p := range h.g.obstacles {
		if p == h.g.head {
			t.Errorf("obstacle on the head at %v", p)
		}
		if seen.Has(p) {
			t.Errorf("duplicate obstacle at %v", p)
		}
		if p.X%20 != 0 || p.Y%20 != 0 {
			t.Errorf("obstacle %v is not grid aligned", p)
		}
		seen.Add(p)
	}
}

func TestStandStillWithoutInput(t *testing.T) {
	h := startedHarness(t, testConfig())

	for range 5 {
		h.step()
	}
	if h.g.head != pt(500, 300) {
		t.Errorf("head moved without input: %v", h.g.head)
	}
	if h.g.Phase() != PhasePlaying {
		t.Errorf("expected playing, got %v", h.g.Phase())
	}
}

func TestMoveRight(t *testing.T) {
	h := startedHarness(t, testConfig())

	h.step(core.ActionRight)
	for range 4 {
		h.step()
	}
	if h.g.head != pt(600, 300) {
		t.Errorf("head = %v after 5 ticks, want (600,300)", h.g.head)
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name string
		from core.Point
		vel  core.Point
		want core.Point
	}{
		{"right edge", pt(980, 300), pt(20, 0), pt(0, 300)},
		{"left edge", pt(0, 300), pt(-20, 0), pt(980, 300)},
		{"top edge", pt(500, 0), pt(0, -20), pt(500, 580)},
		{"bottom edge", pt(500, 580), pt(0, 20), pt(500, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := startedHarness(t, testConfig())
			h.g.food = pt(200, 200)
			h.setSnake(tt.vel, tt.from)
			h.step()
			if h.g.head != tt.want {
				t.Errorf("head = %v, want %v", h.g.head, tt.want)
			}
		})
	}
}

func TestNoImmediateReversal(t *testing.T) {
	h := startedHarness(t, testConfig())

	h.step(core.ActionRight)
	h.step(core.ActionLeft)
	if h.g.velocity != right {
		t.Errorf("velocity = %v, reversal should be ignored", h.g.velocity)
	}
	if h.g.head != pt(540, 300) {
		t.Errorf("head = %v, want (540,300)", h.g.head)
	}

	// Same-axis press is ignored too
	h.step(core.ActionRight)
	if h.g.velocity != right {
		t.Errorf("velocity = %v after repeated right", h.g.velocity)
	}
}

func TestDoubleTurnInOneTick(t *testing.T) {
	h := startedHarness(t, testConfig())
	h.setSnake(right, pt(440, 300), pt(460, 300), pt(480, 300), pt(500, 300))

	// Up then Left within one tick turns the snake back into its neck
	h.step(core.ActionUp, core.ActionLeft)

	if h.g.velocity != pt(-20, 0) {
		t.Fatalf("velocity = %v, want (-20,0)", h.g.velocity)
	}
	if h.g.Phase() != PhaseOver {
		t.Errorf("expected game over, got %v", h.g.Phase())
	}
}

func TestSelfCollision(t *testing.T) {
	h := startedHarness(t, testConfig())
	h.setSnake(right, pt(540, 300), pt(520, 300), pt(520, 320), pt(500, 320), pt(500, 300))

	res := h.step()

	if !res.State.GameOver {
		t.Error("expected StepResult to report game over")
	}
	if h.g.Phase() != PhaseOver {
		t.Errorf("expected game over, got %v", h.g.Phase())
	}
}

func TestFollowingTailIsSafe(t *testing.T) {
	h := startedHarness(t, testConfig())
	h.setSnake(right, pt(520, 300), pt(520, 320), pt(500, 320), pt(500, 300))

	h.step()

	if h.g.Phase() != PhasePlaying {
		t.Errorf("moving into the vacated tail cell ended the run")
	}
	if h.g.head != pt(520, 300) {
		t.Errorf("head = %v, want (520,300)", h.g.head)
	}
}

func TestObstacleBlocks(t *testing.T) {
	t.Run("length one survives", func(t *testing.T) {
		h := startedHarness(t, testConfig())
		h.g.addObstacle(pt(520, 300))
		h.setSnake(right, pt(500, 300))

		h.step()
		h.step()

		if h.g.head != pt(500, 300) {
			t.Errorf("head = %v, should stay in front of the obstacle", h.g.head)
		}
		if h.g.Phase() != PhasePlaying {
			t.Errorf("expected playing, got %v", h.g.Phase())
		}
	})

	t.Run("longer snake runs into itself", func(t *testing.T) {
		h := startedHarness(t, testConfig())
		h.g.addObstacle(pt(520, 300))
		h.setSnake(right, pt(480, 300), pt(500, 300))

		h.step()

		if h.g.Phase() != PhaseOver {
			t.Errorf("expected game over, got %v", h.g.Phase())
		}
	})
}

func TestEatFood(t *testing.T) {
	h := startedHarness(t, testConfig())
	h.setSnake(right, pt(500, 300))
	h.g.food = pt(520, 300)

	h.step()

	g := h.g
	if g.score != 10 {
		t.Errorf("score = %d, want 10", g.score)
	}
	if g.length != 2 {
		t.Errorf("length = %d, want 2", g.length)
	}
	if g.food == pt(520, 300) {
		t.Error("food was not respawned")
	}
	if slices.Contains(g.body, g.food) || g.blocked.Has(g.food) {
		t.Errorf("food respawned on an occupied cell %v", g.food)
	}
	if !slices.Equal(h.sounds.played, []string{"a"}) {
		t.Errorf("played = %v, want [a]", h.sounds.played)
	}

	// Growth shows on the next move
	g.food = pt(0, 0)
	h.step()
	if len(g.body) != 2 {
		t.Errorf("body length = %d, want 2", len(g.body))
	}
}

func TestEatSoundRoundRobin(t *testing.T) {
	tests := []struct {
		name   string
		eat    []string
		loaded []string
		want   []string
	}{
		{"cycles", []string{"a", "b", "c"}, []string{"a", "b", "c"}, []string{"a", "b", "c", "a"}},
		{"skips missing", []string{"a", "b", "c"}, []string{"a", "c"}, []string{"a", "c", "a", "c"}},
		{"none loaded", []string{"a", "b", "c"}, nil, nil},
		{"none configured", nil, []string{"a"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			cfg.Sounds.Eat = tt.eat
			clock := &fakeClock{now: time.Unix(0, 0)}
			sounds := newFakeSounds(tt.loaded...)
			g := New(cfg, Deps{Clock: clock, Sounds: sounds})
			g.Reset(core.RuntimeConfig{Seed: 1})
			g.Step(core.InputFrame{Actions: []core.Action{core.ActionConfirm}})

			g.velocity = right
			for range 4 {
				g.food = g.head.Add(right)
				g.Step(core.NewInputFrame())
			}

			if !slices.Equal(sounds.played, tt.want) {
				t.Errorf("played = %v, want %v", sounds.played, tt.want)
			}
		})
	}
}

func TestPowerUp(t *testing.T) {
	cfg := testConfig()
	cfg.Scoring.PowerUpChance = 1
	h := startedHarness(t, cfg)
	g := h.g
	h.setSnake(right, pt(500, 300))
	g.food = pt(520, 300)

	h.step()

	if g.powerUp == nil {
		t.Fatal("expected a power-up after eating with chance 1")
	}
	if g.powerUp.Pos == g.food || slices.Contains(g.body, g.powerUp.Pos) {
		t.Errorf("power-up spawned on an occupied cell %v", g.powerUp.Pos)
	}
	if !g.powerUp.SpawnedAt.Equal(h.clock.now) {
		t.Errorf("SpawnedAt = %v, want %v", g.powerUp.SpawnedAt, h.clock.now)
	}

	// Only one power-up at a time
	first := *g.powerUp
	g.powerUp.Pos = pt(0, 0)
	first.Pos = pt(0, 0)
	g.food = pt(540, 300)
	h.clock.Advance(time.Second)
	h.step()
	if g.powerUp == nil || *g.powerUp != first {
		t.Errorf("power-up replaced while active: %+v", g.powerUp)
	}

	// Eat it
	g.food = pt(0, 20)
	g.powerUp.Pos = pt(560, 300)
	h.step()
	if g.powerUp != nil {
		t.Error("power-up not consumed")
	}
	if g.score != 10+10+50 {
		t.Errorf("score = %d, want 70", g.score)
	}
	if g.length != 1+1+1+3 {
		t.Errorf("length = %d, want 6", g.length)
	}
}

func TestPowerUpExpiry(t *testing.T) {
	h := startedHarness(t, testConfig())
	h.g.powerUp = &PowerUp{Pos: pt(100, 100), SpawnedAt: h.clock.now}

	h.clock.Advance(7 * time.Second)
	h.step()
	if h.g.powerUp == nil {
		t.Fatal("power-up expired at exactly its lifetime")
	}

	h.clock.Advance(time.Millisecond)
	h.step()
	if h.g.powerUp != nil {
		t.Error("power-up should expire after its lifetime")
	}
}

func TestLevelUp(t *testing.T) {
	h := startedHarness(t, testConfig())
	g := h.g
	g.powerUp = &PowerUp{Pos: pt(100, 100), SpawnedAt: h.clock.now.Add(time.Hour)}

	h.clock.Advance(20 * time.Second)
	h.step()
	if g.level != 1 {
		t.Fatalf("level = %d at exactly the interval, want 1", g.level)
	}

	h.clock.Advance(500 * time.Millisecond)
	h.step()
	if g.level != 2 {
		t.Fatalf("level = %d, want 2", g.level)
	}
	if len(g.obstacles) != 1 {
		t.Fatalf("obstacles = %d, want 1", len(g.obstacles))
	}
	o := g.obstacles[0]
	if o == g.head || o == g.food || o == g.powerUp.Pos {
		t.Errorf("new obstacle %v placed on an occupied cell", o)
	}
	if g.TickRate() != 12 {
		t.Errorf("TickRate() = %d, want 12", g.TickRate())
	}

	// The level timer restarts
	h.clock.Advance(20 * time.Second)
	h.step()
	if g.level != 2 {
		t.Errorf("level = %d before the next interval, want 2", g.level)
	}
	h.clock.Advance(time.Millisecond)
	h.step()
	if g.level != 3 || g.TickRate() != 14 || len(g.obstacles) != 2 {
		t.Errorf("level=%d rate=%d obstacles=%d, want 3, 14, 2", g.level, g.TickRate(), len(g.obstacles))
	}
}

func TestPause(t *testing.T) {
	h := startedHarness(t, testConfig())
	h.step(core.ActionRight)
	at := h.g.head

	res := h.step(core.ActionPause)
	if !res.State.Paused {
		t.Fatal("expected paused state")
	}
	h.step()
	h.step(core.ActionDown)
	if h.g.head != at {
		t.Errorf("head moved while paused: %v -> %v", at, h.g.head)
	}

	h.step(core.ActionPause)
	if h.g.State().Paused {
		t.Fatal("expected resumed state")
	}
	// The turn queued during pause is kept
	if h.g.head != at.Add(pt(0, 20)) {
		t.Errorf("head = %v, want %v", h.g.head, at.Add(pt(0, 20)))
	}
}

func TestQuit(t *testing.T) {
	t.Run("menu", func(t *testing.T) {
		h := newHarness(t, testConfig())
		if !h.step(core.ActionQuit).Quit {
			t.Error("expected quit from menu")
		}
	})

	t.Run("playing wins over movement", func(t *testing.T) {
		h := startedHarness(t, testConfig())
		h.setSnake(right, pt(500, 300))
		if !h.step(core.ActionRight, core.ActionQuit).Quit {
			t.Error("expected quit while playing")
		}
		if h.g.head != pt(500, 300) {
			t.Errorf("snake moved on the quit tick: %v", h.g.head)
		}
	})

	t.Run("game over", func(t *testing.T) {
		h := startedHarness(t, testConfig())
		h.g.finish(h.clock.now)
		if !h.step(core.ActionQuit).Quit {
			t.Error("expected quit from game over")
		}
	})
}

func TestGameOverPersistsHighScore(t *testing.T) {
	tests := []struct {
		name     string
		previous int
		score    int
		wantSave int
		wantNew  bool
	}{
		{"beats previous", 30, 40, 40, true},
		{"below previous", 100, 40, 100, false},
		{"ties previous", 40, 40, 40, false},
		{"first run", 0, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := startedHarness(t, testConfig())
			h.store.score = tt.previous
			h.g.score = tt.score
			h.clock.Advance(3 * time.Second)

			h.g.finish(h.clock.now)

			res := h.g.Result()
			if res.NewHigh != tt.wantNew {
				t.Errorf("NewHigh = %v, want %v", res.NewHigh, tt.wantNew)
			}
			if res.HighScore != tt.wantSave || h.g.HighScore() != tt.wantSave {
				t.Errorf("HighScore = %d, want %d", res.HighScore, tt.wantSave)
			}
			if !slices.Equal(h.store.saves, []int{tt.wantSave}) {
				t.Errorf("saves = %v, want [%d]", h.store.saves, tt.wantSave)
			}
			if res.Duration != 3*time.Second {
				t.Errorf("Duration = %v, want 3s", res.Duration)
			}
			if len(h.history.runs) != 1 || h.history.runs[0].Score != tt.score {
				t.Errorf("history = %+v", h.history.runs)
			}
			if h.sounds.stops != 1 {
				t.Errorf("StopLoop called %d times, want 1", h.sounds.stops)
			}
			if last := h.sounds.played[len(h.sounds.played)-1]; last != "over" {
				t.Errorf("last sound = %q, want over", last)
			}
		})
	}
}

func TestHighScoreLoadErrorCountsAsZero(t *testing.T) {
	h := newHarness(t, testConfig())
	h.store.loadErr = errors.New("disk on fire")
	h.store.score = 99
	h.step(core.ActionConfirm)
	h.g.score = 10

	h.g.finish(h.clock.now)

	if !h.g.Result().NewHigh {
		t.Error("expected a new high score when the stored one cannot be read")
	}
}

func TestReplay(t *testing.T) {
	h := startedHarness(t, testConfig())
	h.setSnake(right, pt(540, 300), pt(520, 300), pt(520, 320), pt(500, 320), pt(500, 300))
	h.g.score = 30
	h.step()
	if h.g.Phase() != PhaseOver {
		t.Fatalf("expected game over, got %v", h.g.Phase())
	}

	// Nothing but C or Q leaves the result screen
	h.step(core.ActionRight, core.ActionPause)
	if h.g.Phase() != PhaseOver {
		t.Fatalf("left game over without confirm")
	}

	h.step(core.ActionConfirm)
	g := h.g
	if g.Phase() != PhasePlaying {
		t.Fatalf("expected playing after replay, got %v", g.Phase())
	}
	if g.score != 0 || g.level != 1 || g.length != 1 || g.head != pt(500, 300) || !g.velocity.IsZero() {
		t.Errorf("replay did not reset state: %s", g.DebugState())
	}
	if len(h.sounds.loops) != 2 {
		t.Errorf("music started %d times, want 2", len(h.sounds.loops))
	}
}

func TestSpawnFindsLastFreeCell(t *testing.T) {
	cfg := testConfig()
	cfg.Board = config.BoardConfig{Width: 100, Height: 100, Cell: 20}
	h := newHarness(t, cfg)

	free := pt(60, 40)
	exclude := make(cellSet)
	for x := 0; x < 100; x += 20 {
		for y := 0; y < 100; y += 20 {
			if p := pt(x, y); p != free {
				exclude.Add(p)
			}
		}
	}

	for range 10 {
		if got := h.g.spawn(exclude); got != free {
			t.Fatalf("spawn = %v, want %v", got, free)
		}
	}
}

func TestDeterminism(t *testing.T) {
	cfg := testConfig()
	cfg.Obstacles.Initial = 3
	cfg.Scoring.PowerUpChance = 0.5

	run := func() Snapshot {
		h := newHarness(t, cfg)
		h.step(core.ActionConfirm)
		turns := []core.Action{core.ActionUp, core.ActionLeft, core.ActionDown, core.ActionRight}
		for i := range 300 {
			h.clock.Advance(100 * time.Millisecond)
			if i%7 == 0 {
				h.step(turns[(i/7)%len(turns)])
				continue
			}
			h.step()
		}
		return h.g.Snapshot()
	}

	a, b := run(), run()
	if !a.Equal(b) {
		t.Errorf("snapshots differ:\n%+v\n%+v", a, b)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	h := startedHarness(t, testConfig())
	snap := h.g.Snapshot()
	snap.Body[0] = pt(1, 1)

	if h.g.body[0] == pt(1, 1) {
		t.Error("snapshot shares the body slice with the game")
	}
	if !h.g.Snapshot().Equal(h.g.Snapshot()) {
		t.Error("snapshot should equal itself")
	}
}

func TestNilDeps(t *testing.T) {
	g := New(testConfig(), Deps{})
	g.Reset(core.RuntimeConfig{Seed: 7})
	g.Step(core.InputFrame{Actions: []core.Action{core.ActionConfirm}})
	g.finish(time.Now())

	if g.Phase() != PhaseOver {
		t.Errorf("expected game over, got %v", g.Phase())
	}
}
