package tui

import (
	"fmt"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-ascent/internal/config"
	"github.com/vovakirdan/neon-ascent/internal/core"
	"github.com/vovakirdan/neon-ascent/internal/registry"
	"github.com/vovakirdan/neon-ascent/internal/storage"
)

type screen int

const (
	screenMenu screen = iota
	screenGame
	screenShop
	screenScores
)

// SessionOptions configures a SessionModel.
type SessionOptions struct {
	GameID   string
	Skins    []config.Skin
	Store    *storage.Store
	Owner    string
	Logger   *log.Logger
	Renderer *lipgloss.Renderer
	Bell     io.Writer
}

// SessionModel manages the full session flow: lobby -> game, shop or
// scoreboard -> lobby. It is the top-level model for SSH sessions and for
// the local lobby.
type SessionModel struct {
	opts      SessionOptions
	title     string
	config    core.RuntimeConfig
	screen    screen
	menu      MenuModel
	gameModel *GameModel
	shop      ShopModel
	scores    ScoreboardModel
	quitting  bool
	err       error
}

// NewSessionModel creates a new session model.
func NewSessionModel(cfg core.RuntimeConfig, opts SessionOptions) (SessionModel, error) {
	if opts.Owner == "" {
		opts.Owner = storage.LocalOwner
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Renderer == nil {
		opts.Renderer = lipgloss.DefaultRenderer()
	}

	title, ok := registry.Title(opts.GameID)
	if !ok {
		return SessionModel{}, fmt.Errorf("tui: unknown game %q", opts.GameID)
	}

	m := SessionModel{
		opts:   opts,
		title:  title,
		config: cfg,
	}
	m.menu = m.newMenu()
	return m, nil
}

func (m SessionModel) newMenu() MenuModel {
	return NewMenuModel(m.title, m.opts.GameID, m.opts.Store, m.opts.Owner, m.config.ScreenW, m.config.ScreenH, m.opts.Renderer)
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenShop:
		return m.updateShop(msg)
	case screenScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in the lobby.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(TickMsg); ok {
		// Stray tick from a round that was left.
		return m, nil
	}

	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	switch m.menu.Chosen() {
	case ChoiceQuit:
		m.quitting = true
		return m, tea.Quit

	case ChoicePlay:
		return m.startGame()

	case ChoiceSkins:
		m.shop = NewShopModel(m.opts.Skins, m.opts.Store, m.opts.Owner, m.config.ScreenW, m.opts.Renderer, m.opts.Logger)
		m.screen = screenShop
		return m, nil

	case ChoiceScores:
		m.scores = NewScoreboardModel(m.opts.Store, m.opts.GameID, m.title, m.opts.Owner, m.config.ScreenW, m.config.ScreenH, m.opts.Renderer)
		m.scores.embedded = true
		m.screen = screenScores
		return m, nil
	}

	return m, cmd
}

// startGame creates a fresh game instance for the owner.
func (m SessionModel) startGame() (tea.Model, tea.Cmd) {
	game, err := registry.Create(m.opts.GameID)
	if err != nil {
		m.err = err
		m.menu = m.newMenu()
		return m, nil
	}

	cfg := m.config
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	gameModel := NewGameModel(game, cfg, GameOptions{
		Store:    m.opts.Store,
		Owner:    m.opts.Owner,
		Logger:   m.opts.Logger,
		Renderer: m.opts.Renderer,
		Bell:     m.opts.Bell,
		Embedded: true,
	})
	gameModel.Start()
	m.gameModel = &gameModel
	m.screen = screenGame
	m.opts.Logger.Debug("round started", "owner", m.opts.Owner, "seed", cfg.Seed)

	return m, m.gameModel.Init()
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.gameModel = &gameModel
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.gameModel.BackToMenu() {
		m.gameModel = nil
		m.toMenu()
		return m, nil
	}

	return m, cmd
}

// updateShop handles updates when in the skin shop.
func (m SessionModel) updateShop(msg tea.Msg) (tea.Model, tea.Cmd) {
	newShop, cmd := m.shop.Update(msg)
	if shop, ok := newShop.(ShopModel); ok {
		m.shop = shop
	}
	if m.shop.Done() {
		m.toMenu()
		return m, nil
	}
	return m, cmd
}

// updateScores handles updates when in the scoreboard.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newScores, cmd := m.scores.Update(msg)
	if scores, ok := newScores.(ScoreboardModel); ok {
		m.scores = scores
	}
	if m.scores.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scores.IsGoingBack() {
		m.toMenu()
		return m, nil
	}
	return m, cmd
}

// toMenu returns to a freshly loaded lobby.
func (m *SessionModel) toMenu() {
	m.menu = m.newMenu()
	m.screen = screenMenu
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		return m.gameModel.View()
	case screenShop:
		return m.shop.View()
	case screenScores:
		return m.scores.View()
	}

	view := m.menu.View()
	if m.err != nil {
		view += "\n" + m.err.Error()
	}
	return view
}

// RunSession runs the lobby on the local terminal.
func RunSession(cfg core.RuntimeConfig, opts SessionOptions) error {
	model, err := NewSessionModel(cfg, opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	_, err = p.Run()
	return err
}
