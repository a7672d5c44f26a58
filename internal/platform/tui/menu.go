package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/neon-ascent/internal/storage"
)

// MenuChoice is a lobby entry.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoicePlay
	ChoiceSkins
	ChoiceScores
	ChoiceQuit
)

var menuLabels = map[MenuChoice]string{
	ChoicePlay:   "Play",
	ChoiceSkins:  "Skins",
	ChoiceScores: "High Scores",
	ChoiceQuit:   "Quit",
}

// MenuModel is the lobby shown before and between rounds.
type MenuModel struct {
	title    string
	items    []MenuChoice
	cursor   int
	width    int
	height   int
	store    *storage.Store
	owner    string
	profile  storage.Profile
	best     int
	gameID   string
	keys     MenuKeyMap
	help     help.Model
	renderer *lipgloss.Renderer
	chosen   MenuChoice
}

// NewMenuModel creates a lobby for the given game and owner. The wallet and
// best height are read from store when it is non-nil.
func NewMenuModel(title, gameID string, store *storage.Store, owner string, width, height int, r *lipgloss.Renderer) MenuModel {
	items := []MenuChoice{ChoicePlay, ChoiceSkins, ChoiceScores, ChoiceQuit}
	if store == nil {
		// Shop and scoreboard need persistence.
		items = []MenuChoice{ChoicePlay, ChoiceQuit}
	}
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	m := MenuModel{
		title:    title,
		items:    items,
		width:    width,
		height:   height,
		store:    store,
		owner:    owner,
		gameID:   gameID,
		keys:     DefaultMenuKeyMap(),
		help:     help.New(),
		renderer: r,
	}
	m.refresh()
	return m
}

// refresh reloads the owner's wallet and best height.
func (m *MenuModel) refresh() {
	if m.store == nil {
		return
	}
	if p, err := m.store.Profile(m.owner); err == nil {
		m.profile = p
	}
	if best, err := m.store.HighScore(m.gameID, m.owner); err == nil {
		m.best = best
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.Back):
			m.chosen = ChoiceQuit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Select):
			m.chosen = m.items[m.cursor]
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	var b strings.Builder

	titleStyle := m.renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("#00f3ff"))
	accent := m.renderer.NewStyle().Foreground(lipgloss.Color("#ffe600"))
	dim := m.renderer.NewStyle().Foreground(lipgloss.Color("241"))
	selected := m.renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("#bc13fe"))

	b.WriteString("\n")
	b.WriteString(centerStyled(titleStyle, spaced(m.title), m.width))
	b.WriteString("\n\n")

	stats := fmt.Sprintf("BEST %dm   ● %d", m.best, m.profile.Coins)
	b.WriteString(centerStyled(accent, stats, m.width))
	b.WriteString("\n")
	b.WriteString(centerStyled(dim, "player: "+m.owner, m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		label := menuLabels[item]
		if i == m.cursor {
			b.WriteString(centerStyled(selected, "> "+label+" <", m.width))
		} else {
			b.WriteString(centerText(label, m.width))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerStyled(dim, "mouse or ←/→ to steer, p to pause", m.width))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

// Chosen returns the selected entry, or ChoiceNone.
func (m MenuModel) Chosen() MenuChoice {
	return m.chosen
}

// spaced puts a space between letters: "NEON" -> "N E O N".
func spaced(s string) string {
	return strings.Join(strings.Split(strings.ToUpper(s), ""), " ")
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	n := lipgloss.Width(text)
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}

func centerStyled(style lipgloss.Style, text string, width int) string {
	n := lipgloss.Width(text)
	if n >= width {
		return style.Render(text)
	}
	return strings.Repeat(" ", (width-n)/2) + style.Render(text)
}
