package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/neon-ascent/internal/core"
)

// ScreenRenderer converts Screen buffers to styled strings. Styles are
// cached per color. A renderer belongs to one program and is not safe for
// concurrent use.
type ScreenRenderer struct {
	r      *lipgloss.Renderer
	styles map[core.Color]lipgloss.Style
}

// NewScreenRenderer creates a renderer. A nil lipgloss renderer means the
// process default (local terminal); SSH sessions pass their own.
func NewScreenRenderer(r *lipgloss.Renderer) *ScreenRenderer {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &ScreenRenderer{
		r:      r,
		styles: make(map[core.Color]lipgloss.Style),
	}
}

// style returns the cached style for a color.
func (sr *ScreenRenderer) style(c core.Color) lipgloss.Style {
	if st, ok := sr.styles[c]; ok {
		return st
	}
	st := sr.r.NewStyle()
	if c != core.ColorDefault {
		st = st.Foreground(lipgloss.Color(c))
	}
	sr.styles[c] = st
	return st
}

// Render converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func (sr *ScreenRenderer) Render(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if startColor == core.ColorDefault {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(sr.style(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
