package tui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-ascent/internal/config"
	"github.com/vovakirdan/neon-ascent/internal/storage"
)

// ShopModel lists skins and lets the owner buy or equip them with coins
// earned in play.
type ShopModel struct {
	skins    []config.Skin
	store    *storage.Store
	owner    string
	profile  storage.Profile
	cursor   int
	status   string
	failed   bool
	width    int
	keys     MenuKeyMap
	help     help.Model
	renderer *lipgloss.Renderer
	logger   *log.Logger
	done     bool
}

// NewShopModel creates a shop over the configured skins.
func NewShopModel(skins []config.Skin, store *storage.Store, owner string, width int, r *lipgloss.Renderer, logger *log.Logger) ShopModel {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	m := ShopModel{
		skins:    skins,
		store:    store,
		owner:    owner,
		width:    width,
		keys:     DefaultMenuKeyMap(),
		help:     help.New(),
		renderer: r,
		logger:   logger,
	}
	m.reload()
	return m
}

func (m *ShopModel) reload() {
	p, err := m.store.Profile(m.owner)
	if err != nil {
		m.setStatus(fmt.Sprintf("cannot load profile: %v", err), true)
		return
	}
	m.profile = p
}

func (m *ShopModel) setStatus(s string, failed bool) {
	m.status = s
	m.failed = failed
}

// Init initializes the shop.
func (m ShopModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the shop.
func (m ShopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Quit):
			m.done = true
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.skins)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Select):
			if len(m.skins) > 0 {
				m.activate(m.skins[m.cursor])
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
	}
	return m, nil
}

// activate buys the skin if needed, then equips it.
func (m *ShopModel) activate(skin config.Skin) {
	owned := skin.Price == 0 || m.profile.HasSkin(skin.ID)
	if !owned {
		err := m.store.UnlockSkin(m.owner, skin.ID, skin.Price)
		switch {
		case errors.Is(err, storage.ErrInsufficientCoins):
			m.setStatus(fmt.Sprintf("%s costs %d coins, you have %d", skin.Name, skin.Price, m.profile.Coins), true)
			return
		case err != nil:
			m.logger.Error("unlock failed", "owner", m.owner, "skin", skin.ID, "error", err)
			m.setStatus("purchase failed", true)
			return
		}
		m.logger.Info("skin unlocked", "owner", m.owner, "skin", skin.ID, "price", skin.Price)
	}

	if err := m.store.EquipSkin(m.owner, skin.ID, skin.Price); err != nil {
		m.logger.Error("equip failed", "owner", m.owner, "skin", skin.ID, "error", err)
		m.setStatus("could not equip "+skin.Name, true)
		return
	}
	m.reload()
	if owned {
		m.setStatus(skin.Name+" equipped", false)
	} else {
		m.setStatus(skin.Name+" unlocked and equipped", false)
	}
}

// View renders the shop.
func (m ShopModel) View() string {
	var b strings.Builder

	title := m.renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dim := m.renderer.NewStyle().Foreground(lipgloss.Color("241"))
	okStyle := m.renderer.NewStyle().Foreground(lipgloss.Color("#39ff14"))
	errStyle := m.renderer.NewStyle().Foreground(lipgloss.Color("#ff2a6d"))

	b.WriteString("\n")
	b.WriteString(centerStyled(title, "S K I N S", m.width))
	b.WriteString("\n")
	b.WriteString(centerStyled(dim, fmt.Sprintf("wallet: ● %d", m.profile.Coins), m.width))
	b.WriteString("\n\n")

	for i, s := range m.skins {
		swatch := m.renderer.NewStyle().Foreground(lipgloss.Color(s.Color)).Render("●")

		var tag string
		switch {
		case s.ID == m.profile.ActiveSkin:
			tag = "equipped"
		case s.Price == 0 || m.profile.HasSkin(s.ID):
			tag = "owned"
		default:
			tag = fmt.Sprintf("%d coins", s.Price)
		}

		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%s %-10s %10s", cursor, swatch, s.Name, tag)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.status != "" {
		style := okStyle
		if m.failed {
			style = errStyle
		}
		b.WriteString(centerStyled(style, m.status, m.width))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// Done reports whether the owner left the shop.
func (m ShopModel) Done() bool {
	return m.done
}
