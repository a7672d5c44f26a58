package tui

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/neon-ascent/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForSidebar = 84  // Minimum width to show the stats sidebar
	sidebarWidth       = 24  // Width of stats sidebar
	maxRuns            = 100 // Max runs to load
)

// ScoreScope selects whose runs the scoreboard lists.
type ScoreScope int

const (
	ScopeAll ScoreScope = iota
	ScopeMine
)

func (s ScoreScope) String() string {
	if s == ScopeMine {
		return "My Runs"
	}
	return "All Players"
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("tab", "left", "right", "h", "l"),
			key.WithHelp("tab", "all/mine"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the high score screen.
type ScoreboardModel struct {
	gameID      string
	title       string
	owner       string
	scope       ScoreScope
	store       *storage.Store
	runs        []storage.Run
	stats       *storage.GameStats
	loadErr     error
	table       table.Model
	help        help.Model
	keys        ScoreboardKeyMap
	renderer    *lipgloss.Renderer
	width       int
	height      int
	embedded    bool // Back returns to a parent model instead of quitting
	quitting    bool
	goingBack   bool
	showSidebar bool
}

// NewScoreboardModel creates a new scoreboard model.
func NewScoreboardModel(store *storage.Store, gameID, title, owner string, width, height int, r *lipgloss.Renderer) ScoreboardModel {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		gameID:      gameID,
		title:       title,
		owner:       owner,
		store:       store,
		keys:        DefaultScoreboardKeyMap(),
		help:        h,
		renderer:    r,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	m.table = m.createTable()
	m.load()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Player", Width: 12},
		{Title: "Height", Width: 8},
		{Title: "Coins", Width: 6},
		{Title: "Skin", Width: 8},
		{Title: "Date", Width: 12},
	}

	tableWidth := m.width - 4 // Margins
	if m.showSidebar {
		tableWidth -= sidebarWidth + 3
	}
	fixed := 0
	for _, c := range columns {
		fixed += c.Width + 2
	}
	// Give spare room to the player column, take it from there when narrow.
	if extra := tableWidth - fixed; extra != 0 {
		columns[1].Width = max(6, min(24, columns[1].Width+extra))
	}

	height := m.height - 8 // Leave room for header, help, and margins
	if height < 3 {
		height = 3
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
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

// load fetches runs and stats for the current scope.
func (m *ScoreboardModel) load() {
	m.runs, m.stats, m.loadErr = nil, nil, nil
	if m.store != nil {
		if m.scope == ScopeMine {
			m.runs, m.loadErr = m.store.RecentRuns(m.owner, m.gameID, maxRuns)
			if m.loadErr == nil {
				sortRunsByScore(m.runs)
			}
		} else {
			m.runs, m.loadErr = m.store.TopRuns(m.gameID, maxRuns)
		}
		if stats, err := m.store.Stats(m.gameID, m.owner); err == nil {
			m.stats = stats
		}
	}
	m.updateTableRows()
}

// sortRunsByScore orders runs by height, highest first; ties keep order.
func sortRunsByScore(runs []storage.Run) {
	slices.SortStableFunc(runs, func(a, b storage.Run) int {
		return cmp.Compare(b.Score, a.Score)
	})
}

// updateTableRows updates the table with current runs.
func (m *ScoreboardModel) updateTableRows() {
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			r.Owner,
			fmt.Sprintf("%dm", r.Score),
			fmt.Sprintf("%d", r.Coins),
			r.SkinID,
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
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

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			if m.embedded {
				return m, nil
			}
			return m, tea.Quit

		case key.Matches(msg, m.keys.Toggle):
			if m.scope == ScopeAll {
				m.scope = ScopeMine
			} else {
				m.scope = ScopeAll
			}
			m.load()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || (m.goingBack && !m.embedded) {
		return ""
	}

	var b strings.Builder

	titleStyle := m.renderer.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := fmt.Sprintf("HIGH SCORES - %s - %s", m.title, m.scope)
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	if m.showSidebar {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(m.renderNarrowLayout())
	}

	b.WriteString("\n")
	helpStyle := m.renderer.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderWideLayout renders the table with the owner's stats beside it.
func (m ScoreboardModel) renderWideLayout() string {
	sidebarStyle := m.renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	tableStyle := m.renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		sidebarStyle.Render(m.statsText()),
		"  ",
		tableStyle.Render(m.renderTableContent()),
	)
}

// renderNarrowLayout renders a one-line summary above the table.
func (m ScoreboardModel) renderNarrowLayout() string {
	var b strings.Builder

	if m.stats != nil {
		summary := fmt.Sprintf("%s: best %dm, %d runs", m.owner, m.stats.HighScore, m.stats.GamesCount)
		b.WriteString(centerText(summary, m.width))
		b.WriteString("\n\n")
	}

	tableStyle := m.renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))

	return b.String()
}

// statsText formats the owner's aggregate stats.
func (m ScoreboardModel) statsText() string {
	var b strings.Builder
	b.WriteString(m.owner)
	b.WriteString("\n")
	b.WriteString(strings.Repeat("-", sidebarWidth-4))
	b.WriteString("\n")

	if m.stats == nil || m.stats.GamesCount == 0 {
		b.WriteString("no runs yet")
		return b.String()
	}
	fmt.Fprintf(&b, "runs   %d\n", m.stats.GamesCount)
	fmt.Fprintf(&b, "best   %dm\n", m.stats.HighScore)
	fmt.Fprintf(&b, "avg    %.0fm\n", m.stats.AvgScore)
	fmt.Fprintf(&b, "coins  %d\n", m.stats.TotalCoins)
	if !m.stats.LastPlayed.IsZero() {
		fmt.Fprintf(&b, "last   %s", m.stats.LastPlayed.Format("Jan 02"))
	}
	return b.String()
}

// renderTableContent renders the table or empty message.
func (m ScoreboardModel) renderTableContent() string {
	if m.loadErr != nil {
		return m.renderer.NewStyle().
			Foreground(lipgloss.Color("#ff2a6d")).
			Padding(1, 2).
			Render("Could not load scores:\n" + m.loadErr.Error())
	}
	if len(m.runs) == 0 {
		return m.renderer.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4).
			Render("No runs recorded yet.\nClimb to set a high score!")
	}

	return m.table.View()
}

// Runs returns the rows currently listed.
func (m ScoreboardModel) Runs() []storage.Run {
	return m.runs
}

// Scope returns the current listing scope.
func (m ScoreboardModel) Scope() ScoreScope {
	return m.scope
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen on the local terminal.
func RunScoreboard(store *storage.Store, gameID, title, owner string, width, height int) error {
	model := NewScoreboardModel(store, gameID, title, owner, width, height, nil)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
