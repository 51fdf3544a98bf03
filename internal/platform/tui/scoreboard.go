package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/storage"
)

const maxRuns = 100 // Max runs to load per view

// RunSource provides recorded runs for the scoreboard.
type RunSource interface {
	TopRuns(limit int) ([]storage.Run, error)
	RecentRuns(limit int) ([]storage.Run, error)
}

// View selects which runs the scoreboard lists.
type View int

const (
	ViewTop View = iota
	ViewRecent
)

func (v View) String() string {
	if v == ViewRecent {
		return "Recent"
	}
	return "Top"
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	SwitchView key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.SwitchView, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.SwitchView, k.Quit}}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		SwitchView: key.NewBinding(
			key.WithKeys("tab", "left", "right"),
			key.WithHelp("tab", "top/recent"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model listing recorded runs.
type ScoreboardModel struct {
	source   RunSource
	view     View
	runs     []storage.Run
	loadErr  error
	table    table.Model
	help     help.Model
	keys     ScoreboardKeyMap
	width    int
	height   int
	quitting bool
}

// NewScoreboardModel creates a scoreboard showing the top runs first.
func NewScoreboardModel(source RunSource, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		source: source,
		view:   ViewTop,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.loadRuns()
	return m
}

// createTable creates a table sized for the current terminal.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 8},
		{Title: "Level", Width: 6},
		{Title: "Length", Width: 7},
		{Title: "Time", Width: 8},
		{Title: "Date", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadRuns fetches the runs for the current view.
func (m *ScoreboardModel) loadRuns() {
	m.runs, m.loadErr = nil, nil
	if m.source != nil {
		if m.view == ViewRecent {
			m.runs, m.loadErr = m.source.RecentRuns(maxRuns)
		} else {
			m.runs, m.loadErr = m.source.TopRuns(maxRuns)
		}
	}
	m.table.SetRows(RunRows(m.runs))
	m.table.GotoTop()
}

// RunRows formats runs as table rows, ranked in the given order.
func RunRows(runs []storage.Run) []table.Row {
	rows := make([]table.Row, len(runs))
	for i, r := range runs {
		score := fmt.Sprintf("%d", r.Score)
		if r.NewHigh {
			score += " *"
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			score,
			fmt.Sprintf("%d", r.Level),
			fmt.Sprintf("%d", r.Length),
			formatDuration(r.Duration()),
			r.CreatedAt.Local().Format("Jan 02 15:04"),
		}
	}
	return rows
}

// formatDuration renders a run time as m:ss.
func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.SwitchView):
			if m.view == ViewTop {
				m.view = ViewRecent
			} else {
				m.view = ViewTop
			}
			m.loadRuns()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.table.SetRows(RunRows(m.runs))
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table for scrolling
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(centerText(fmt.Sprintf("SNAKE - %s runs", m.view), m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(centerText(tableStyle.Render(m.renderTableContent()), m.width))

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or an empty message.
func (m ScoreboardModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.loadErr != nil:
		return emptyStyle.Render("Could not load runs:\n" + m.loadErr.Error())
	case len(m.runs) == 0:
		return emptyStyle.Render("No runs recorded yet.\nPlay a game to set a high score!")
	}
	return m.table.View()
}

// centerText centers a block horizontally within width.
func centerText(text string, width int) string {
	if width <= 0 {
		return text
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, text)
}

// RunScoreboard runs the scoreboard screen until the user quits.
func RunScoreboard(source RunSource, width, height int) error {
	p := tea.NewProgram(
		NewScoreboardModel(source, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
