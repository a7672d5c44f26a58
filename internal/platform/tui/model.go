package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-ascent/internal/config"
	"github.com/vovakirdan/neon-ascent/internal/core"
	"github.com/vovakirdan/neon-ascent/internal/registry"
	"github.com/vovakirdan/neon-ascent/internal/storage"
)

// Optional capabilities a game may offer beyond registry.Game.
type (
	bestTracker interface {
		SetBest(best int)
	}
	skinEquipper interface {
		EquipSkin(id string) bool
		SkinID() string
	}
	resizer interface {
		Resize(screenW, screenH int)
	}
	tickCounter interface {
		Ticks() uint64
	}
)

// GameOptions configures a GameModel.
type GameOptions struct {
	Store    *storage.Store
	Owner    string             // profile owner; storage.LocalOwner when empty
	Logger   *log.Logger        // discarded when nil
	Renderer *lipgloss.Renderer // per-session renderer; process default when nil
	Bell     io.Writer          // receives BEL on coin and game-over cues; silent when nil
	// Embedded models return to a parent on Back instead of quitting.
	Embedded bool
}

// GameModel is the Bubble Tea model for the play screen.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	renderer   *ScreenRenderer
	store      *storage.Store
	owner      string
	logger     *log.Logger
	bell       io.Writer
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keys       GameKeyMap
	help       help.Model
	embedded   bool
	quitting   bool
	backToMenu bool
	runSaved   bool // Whether the run has been saved for the current game over
	lastSaved  string
}

// NewGameModel creates a new Bubble Tea model for the given game.
func NewGameModel(game registry.Game, cfg core.RuntimeConfig, opts GameOptions) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Owner == "" {
		opts.Owner = storage.LocalOwner
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		renderer:   NewScreenRenderer(opts.Renderer),
		store:      opts.Store,
		owner:      opts.Owner,
		logger:     opts.Logger,
		bell:       opts.Bell,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keys:       DefaultGameKeyMap(),
		help:       help.New(),
		embedded:   opts.Embedded,
	}
}

// Init starts the tick loop. Start must have been called first.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Start resets the game and applies the owner's profile (best score,
// active skin). Call once before handing the model to Bubble Tea.
func (m *GameModel) Start() {
	m.game.Reset(m.config)
	m.applyProfile()
	m.gameState = m.game.State()
}

// applyProfile loads the owner's best score and equipped skin.
func (m *GameModel) applyProfile() {
	if m.store == nil {
		return
	}
	if bt, ok := m.game.(bestTracker); ok {
		best, err := m.store.HighScore(m.game.ID(), m.owner)
		if err != nil {
			m.logger.Warn("could not load best score", "owner", m.owner, "error", err)
		} else {
			bt.SetBest(best)
		}
	}
	if se, ok := m.game.(skinEquipper); ok {
		p, err := m.store.Profile(m.owner)
		if err != nil {
			m.logger.Warn("could not load profile", "owner", m.owner, "error", err)
			return
		}
		if p.ActiveSkin != "" {
			se.EquipSkin(p.ActiveSkin)
		}
	}
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.config.ScreenW > 0 {
			m.inputFrame.SetPointer(float64(msg.X) / float64(m.config.ScreenW))
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Back):
		if m.embedded {
			m.backToMenu = true
			return m, nil
		}
		m.inputFrame.Set(core.ActionPause)
		return m, nil
	}

	if action := m.keys.Action(msg); action != core.ActionNone {
		if action == core.ActionRestart && !m.gameState.GameOver {
			return m, nil
		}
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize refits the game to the new window size.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.help.Width = msg.Width

	if r, ok := m.game.(resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu || m.quitting {
		return m, nil
	}

	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.runSaved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	for _, cue := range result.Cues {
		m.ring(cue)
	}

	if m.gameState.GameOver && !m.runSaved {
		m.saveRun()
		m.runSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// ring maps sound cues to the terminal bell.
func (m *GameModel) ring(cue core.Cue) {
	if m.bell == nil {
		return
	}
	switch cue {
	case core.CueCoin, core.CueGameOver:
		//nolint:errcheck // Best-effort bell
		m.bell.Write([]byte{'\a'})
	}
}

// saveRun records the finished round. Failures are logged; play continues.
func (m *GameModel) saveRun() {
	run := storage.Run{
		Owner:  m.owner,
		GameID: m.game.ID(),
		Score:  m.gameState.Score,
		Coins:  m.gameState.Coins,
		Seed:   m.config.Seed,
	}
	if se, ok := m.game.(skinEquipper); ok {
		run.SkinID = se.SkinID()
	}
	if tc, ok := m.game.(tickCounter); ok {
		run.Ticks = tc.Ticks()
	}

	m.logger.Info("round over", "owner", run.Owner, "height", run.Score, "coins", run.Coins, "ticks", run.Ticks)

	if m.store == nil || (run.Score == 0 && run.Coins == 0) {
		return
	}
	id, err := m.store.SaveRun(run)
	if err != nil {
		m.logger.Error("could not save run", "owner", run.Owner, "error", err)
		return
	}
	m.lastSaved = id
	if bt, ok := m.game.(bestTracker); ok {
		bt.SetBest(run.Score)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, config.AppDir, "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	out := m.renderer.Render(m.screen)

	// Replace the last row with help when the round is not running.
	if (m.gameState.Paused || m.gameState.GameOver) && m.screen.Height() > 2 {
		if cut := lastLineStart(out); cut >= 0 {
			out = out[:cut] + m.help.View(m.keys)
		}
	}
	return out
}

// lastLineStart returns the index just past the last newline, or -1.
func lastLineStart(s string) int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == '\n' {
			return i + 1
		}
	}
	return -1
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the lobby.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// GameState returns the state observed on the last tick.
func (m GameModel) GameState() core.GameState {
	return m.gameState
}

// LastRunID returns the ID of the most recently saved run, if any.
func (m GameModel) LastRunID() string {
	return m.lastSaved
}

// Run starts the Bubble Tea program with the given game on the local terminal.
func Run(game registry.Game, cfg core.RuntimeConfig, opts GameOptions) error {
	model := NewGameModel(game, cfg, opts)
	model.Start()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(), // Pointer steering
	)

	_, err := p.Run()
	return err
}
