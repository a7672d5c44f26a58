// Package ascent implements Neon Ascent, an endless vertical climber.
// The ball bounces on its own; the player only steers it left and right
// across platforms, collecting coins and avoiding hazards.
package ascent

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-ascent/internal/config"
	"github.com/vovakirdan/neon-ascent/internal/core"
	"github.com/vovakirdan/neon-ascent/internal/games/ascent/engine"
	"github.com/vovakirdan/neon-ascent/internal/registry"
)

// GameID is the registry and storage identifier.
const GameID = "ascent"

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset
var skinID string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetSkin selects the skin new games start with.
func SetSkin(id string) {
	skinID = id
}

// Game adapts the simulation engine to the arcade platform.
type Game struct {
	cfg     config.AscentConfig
	sim     *engine.Simulation
	layout  Layout
	runtime core.RuntimeConfig
	skin    config.Skin
	best    int
	fixed   bool // config supplied by NewWithConfig, never reloaded
}

// New creates a game that loads its configuration on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game with an explicit configuration.
func NewWithConfig(cfg config.AscentConfig) *Game {
	return &Game{cfg: cfg, fixed: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Neon Ascent"
}

// Reset starts a new round. The simulation is rebuilt when the seed
// changes; otherwise its random stream carries on so each round differs.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	rebuild := g.sim == nil || runtime.Seed != g.runtime.Seed
	g.runtime = runtime

	if rebuild {
		g.cfg = g.loadConfig()
		g.skin = g.pickSkin()
	}
	g.layout = NewLayout(runtime.ScreenW, runtime.ScreenH, g.cfg.World.Width)

	if rebuild {
		sim, err := g.newSimulation(runtime.Seed)
		if err != nil {
			log.Warn("ascent: config rejected, using defaults", "err", err)
			g.cfg = config.DefaultAscentConfig()
			if sim, err = g.newSimulation(runtime.Seed); err != nil {
				panic(fmt.Errorf("ascent: default config: %w", err))
			}
		}
		g.sim = sim
	} else {
		g.sim.SetViewHeight(g.layout.ViewHeight)
	}
	g.sim.Start()
}

func (g *Game) newSimulation(seed int64) (*engine.Simulation, error) {
	return engine.New(engine.Options{
		Config:     g.cfg,
		Seed:       seed,
		ViewHeight: g.layout.ViewHeight,
		Skin:       g.skin,
	})
}

func (g *Game) loadConfig() config.AscentConfig {
	cfg := g.cfg
	if !g.fixed {
		loaded, err := config.LoadAscent(configPath)
		if err != nil {
			loaded = config.DefaultAscentConfig()
		}
		cfg = loaded
	}
	if difficultyPreset != "" {
		config.ApplyAscentPreset(&cfg, difficultyPreset)
	}
	if cfg.Validate() != nil {
		cfg = config.DefaultAscentConfig()
	}
	return cfg
}

func (g *Game) pickSkin() config.Skin {
	if g.skin.ID != "" {
		if s, ok := g.cfg.SkinByID(g.skin.ID); ok {
			return s
		}
	}
	if s, ok := g.cfg.SkinByID(skinID); ok {
		return s
	}
	return g.cfg.DefaultSkin()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.sim.State() == engine.StateTerminal {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		if g.sim.Paused() {
			g.sim.Resume()
		} else {
			g.sim.Pause()
		}
	}

	// Pointer moves during a pause must not drag the avatar on resume.
	if !g.sim.Paused() {
		g.steer(in)
	}

	res := g.sim.Tick()
	ended := false
	for _, e := range res.Events {
		if e.Kind == engine.EventRoundEnded {
			ended = true
		}
	}
	if s := res.Snapshot.Score; s > g.best && ended {
		g.best = s
	}

	return core.StepResult{
		State:      g.State(),
		RoundEnded: ended,
		Cues:       engine.Cues(res.Events),
	}
}

// steer turns pointer and key input into a horizontal target.
func (g *Game) steer(in core.InputFrame) {
	width := g.cfg.World.Width
	if in.HasPointer {
		g.sim.SetTarget(g.layout.WorldX(in.Pointer, width))
		return
	}

	snap := g.sim.Latest()
	if snap == nil {
		return
	}
	nudge := width / 8
	switch {
	case in.Has(core.ActionLeft):
		g.sim.SetTarget(core.ClampF(snap.Avatar.X-nudge, 0, width))
	case in.Has(core.ActionRight):
		g.sim.SetTarget(core.ClampF(snap.Avatar.X+nudge, 0, width))
	}
}

// Resize refits the playfield to a new screen size without restarting
// the round. The simulation keeps its view height until the next Reset.
func (g *Game) Resize(screenW, screenH int) {
	g.runtime.ScreenW = screenW
	g.runtime.ScreenH = screenH
	g.layout = NewLayout(screenW, screenH, g.cfg.World.Width)
	if g.sim != nil {
		g.sim.SetViewHeight(g.layout.ViewHeight)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.sim == nil {
		return core.GameState{}
	}
	snap := g.sim.Latest()
	if snap == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    snap.Score,
		Coins:    snap.CoinsCollected,
		GameOver: snap.State == engine.StateTerminal,
		Paused:   snap.Paused,
	}
}

// Snapshot returns the latest published world snapshot.
func (g *Game) Snapshot() *engine.Snapshot {
	if g.sim == nil {
		return nil
	}
	return g.sim.Latest()
}

// SetBest sets the best score shown in the HUD.
func (g *Game) SetBest(best int) {
	g.best = max(g.best, best)
}

// Best returns the best score known to the game.
func (g *Game) Best() int {
	return g.best
}

// SkinID returns the active skin ID.
func (g *Game) SkinID() string {
	return g.skin.ID
}

// EquipSkin switches the avatar skin. Unknown IDs are ignored.
func (g *Game) EquipSkin(id string) bool {
	s, ok := g.cfg.SkinByID(id)
	if !ok {
		return false
	}
	g.skin = s
	if g.sim != nil {
		g.sim.SetSkin(s)
	}
	return true
}

// Ticks returns the number of ticks played this round.
func (g *Game) Ticks() uint64 {
	if snap := g.Snapshot(); snap != nil {
		return snap.Tick
	}
	return 0
}

// Config returns the configuration in use.
func (g *Game) Config() config.AscentConfig {
	return g.cfg
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
