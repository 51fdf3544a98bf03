package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

var (
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	tooSmallStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Foreground(lipgloss.Color("229")).
			Padding(1, 3)
)

// Model is the Bubble Tea model running one snake game.
type Model struct {
	game     *snake.Game
	board    config.BoardConfig
	config   core.RuntimeConfig
	canvas   *Canvas
	renderer *Renderer
	keys     KeyMap
	help     help.Model
	logger   *log.Logger

	input       core.InputFrame
	width       int
	height      int
	colsPerCell int
	tooSmall    bool
	quitting    bool
}

// NewModel creates a model for the game. The board is assumed to fit
// until the first window size message says otherwise.
func NewModel(game *snake.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	board := game.Board()
	return Model{
		game:        game,
		board:       board,
		config:      cfg,
		canvas:      NewCanvas(board, 2),
		renderer:    NewRenderer(),
		keys:        DefaultKeyMap(),
		help:        help.New(),
		logger:      logger,
		input:       core.NewInputFrame(),
		colsPerCell: 2,
	}
}

// Init resets the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Debug("terminal frontend started", "seed", m.config.Seed)
	return tickCmd(m.game.TickRate())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues the key's action for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// ctrl+c leaves at once, even if ticks are stalled
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	if a := m.keys.Action(msg); a != core.ActionNone {
		m.input.Set(a)
	}
	return m, nil
}

// handleResize picks the widest layout that fits the terminal.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width

	cols, ok := fitLayout(m.board, msg.Width, msg.Height)
	m.tooSmall = !ok
	if ok && cols != m.colsPerCell {
		m.colsPerCell = cols
		m.canvas = NewCanvas(m.board, cols)
	}
	if !ok {
		m.logger.Debug("terminal too small", "width", msg.Width, "height", msg.Height)
	}
	return m, nil
}

// handleTick runs one game step with the queued input.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	in := m.input
	m.input = core.NewInputFrame()

	// The board is hidden, so only quitting is honoured
	if m.tooSmall {
		if in.Has(core.ActionQuit) {
			m.quitting = true
			return m, tea.Quit
		}
		return m, tickCmd(m.game.TickRate())
	}

	result := m.game.Step(in)
	if result.Quit {
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.game.TickRate())
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.tooSmall {
		need := m.board.Cols()
		msg := fmt.Sprintf("Terminal too small\nneed at least %dx%d, have %dx%d\nresize to continue, q to quit",
			need, m.board.Rows()+1, m.width, m.height)
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, tooSmallStyle.Render(msg))
	}

	m.game.Render(m.canvas)
	board := m.renderer.Render(m.canvas.Screen())
	footer := helpStyle.Render(m.help.View(m.keys))

	view := lipgloss.JoinVertical(lipgloss.Center, board, footer)
	if m.width > 0 {
		view = lipgloss.PlaceHorizontal(m.width, lipgloss.Center, view)
	}
	return view
}

// fitLayout returns how many terminal columns each board cell can use in
// a width×height terminal, keeping one line for the help footer.
func fitLayout(board config.BoardConfig, width, height int) (int, bool) {
	if height < board.Rows()+1 {
		return 0, false
	}
	switch {
	case width >= board.Cols()*2:
		return 2, true
	case width >= board.Cols():
		return 1, true
	}
	return 0, false
}

// Run starts the Bubble Tea program for the game and blocks until the
// player quits.
func Run(game *snake.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
