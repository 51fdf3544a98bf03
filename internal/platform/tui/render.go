package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
)

type styleKey struct {
	fg, bg core.Color
}

// Renderer converts a Screen buffer to a styled string. Styles are cached
// per color pair because a frame only uses a handful of them.
type Renderer struct {
	styles map[styleKey]lipgloss.Style
}

// NewRenderer creates a renderer with an empty style cache.
func NewRenderer() *Renderer {
	return &Renderer{styles: make(map[styleKey]lipgloss.Style)}
}

func (r *Renderer) style(k styleKey) lipgloss.Style {
	if s, ok := r.styles[k]; ok {
		return s
	}
	s := lipgloss.NewStyle().
		Foreground(lipgloss.Color(k.fg.Hex())).
		Background(lipgloss.Color(k.bg.Hex()))
	r.styles[k] = s
	return s
}

// Render groups adjacent cells with the same colors to minimize ANSI
// escape sequences.
func (r *Renderer) Render(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)
			k := styleKey{fg: start.FG, bg: start.BG}

			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.FG != k.fg || cell.BG != k.bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(r.style(k).Render(run.String()))
		}
	}
	return sb.String()
}
