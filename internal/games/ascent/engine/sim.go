package engine

import (
	"fmt"
	"math"
	"math/rand"
	"slices"
	"sync/atomic"

	"github.com/vovakirdan/neon-ascent/internal/config"
	"github.com/vovakirdan/neon-ascent/internal/core"
)

// DefaultViewHeight is the visible height in world units when none is given.
const DefaultViewHeight = 560

// RoundState is the round lifecycle: Idle, then Running, then Terminal.
// Terminal goes back to Running only through Start.
type RoundState int

const (
	StateIdle RoundState = iota
	StateRunning
	StateTerminal
)

func (s RoundState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateTerminal:
		return "terminal"
	default:
		return fmt.Sprintf("RoundState(%d)", int(s))
	}
}

// Options configures a Simulation.
type Options struct {
	Config config.AscentConfig
	// Difficulty overrides the manager built from Config.Difficulty.
	Difficulty *config.DifficultyManager
	Seed       int64
	ViewHeight float64 // world units; DefaultViewHeight when zero
	Skin       config.Skin
	Listener   Listener
	// Debug runs full-world invariant checks after every tick.
	Debug bool
}

// TickResult is what one Tick produced.
type TickResult struct {
	Tick     uint64
	Events   []Event
	Snapshot *Snapshot
}

// Simulation owns one World and advances it one tick at a time.
//
// All methods except SetTarget, Target and Latest must be called from a
// single goroutine. SetTarget may be called from any goroutine; Latest
// returns the most recently published snapshot to any reader.
type Simulation struct {
	cfg        config.AscentConfig
	difficulty *config.DifficultyManager
	gen        *Generator
	fx         emitter
	resolver   resolver
	listener   Listener
	debug      bool

	world      *World
	viewHeight float64
	state      RoundState
	paused     bool
	level      float64
	skin       config.Skin

	target atomic.Uint64 // math.Float64bits of the target x
	latest atomic.Pointer[Snapshot]

	hits   collisions
	events []Event
}

// New creates a simulation in the Idle state. Call Start to begin a round.
func New(opts Options) (*Simulation, error) {
	cfg := opts.Config
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}

	difficulty := opts.Difficulty
	if difficulty == nil {
		difficulty = config.NewDifficultyManager(cfg.Difficulty)
	}
	viewHeight := opts.ViewHeight
	if viewHeight <= 0 {
		viewHeight = DefaultViewHeight
	}
	skin := opts.Skin
	if skin.ID == "" {
		skin = cfg.DefaultSkin()
	}

	s := &Simulation{
		cfg:        cfg,
		difficulty: difficulty,
		gen:        NewGenerator(cfg.Generation, cfg.World.Width, difficulty, rand.New(rand.NewSource(opts.Seed))),
		fx:         emitter{cfg: cfg.Effects, rng: rand.New(rand.NewSource(opts.Seed + 1))},
		resolver:   newResolver(cfg),
		listener:   opts.Listener,
		debug:      opts.Debug,
		viewHeight: viewHeight,
		skin:       skin,
	}
	s.SetTarget(cfg.World.Width / 2)
	return s, nil
}

// Start resets the world and begins a new round. It is valid from any state.
func (s *Simulation) Start() {
	w := newWorld(s.cfg.World.Width, s.viewHeight)
	startY := s.viewHeight - s.cfg.Avatar.StartOffset
	w.Avatar = Avatar{
		X:  w.Width / 2,
		Y:  startY,
		VY: s.cfg.Physics.JumpImpulse,
	}
	s.SetTarget(w.Width / 2)
	s.gen.Seed(w, startY)

	s.world = w
	s.state = StateRunning
	s.paused = false
	s.level = s.difficulty.Level(0, 0)
	s.publish()
}

// Pause freezes the round. Ticks while paused change nothing.
func (s *Simulation) Pause() {
	if s.state != StateRunning || s.paused {
		return
	}
	s.paused = true
	s.publish()
}

// Resume continues a paused round.
func (s *Simulation) Resume() {
	if !s.paused {
		return
	}
	s.paused = false
	s.publish()
}

// Paused reports whether the round is paused.
func (s *Simulation) Paused() bool {
	return s.paused
}

// State returns the round state.
func (s *Simulation) State() RoundState {
	return s.state
}

// SetTarget sets the horizontal position the avatar steers toward.
// Safe for concurrent use; the last write before a tick wins.
func (s *Simulation) SetTarget(x float64) {
	s.target.Store(math.Float64bits(x))
}

// Target returns the current steering target.
func (s *Simulation) Target() float64 {
	return math.Float64frombits(s.target.Load())
}

// SetSkin changes the cosmetic skin reported in snapshots.
func (s *Simulation) SetSkin(skin config.Skin) {
	s.skin = skin
	if s.world != nil {
		s.publish()
	}
}

// Skin returns the active skin.
func (s *Simulation) Skin() config.Skin {
	return s.skin
}

// SetViewHeight changes the visible height, e.g. after a terminal resize.
// The camera and fall-off line depend on it, so a running round keeps
// its height; the new value applies from the next Start.
func (s *Simulation) SetViewHeight(h float64) {
	if h <= 0 {
		return
	}
	s.viewHeight = h
}

// Width returns the playfield width in world units.
func (s *Simulation) Width() float64 {
	return s.cfg.World.Width
}

// Tick advances a running round by one step: integrate, resolve
// collisions, generate ahead, reclaim behind, age particles, publish.
//
// While paused or after the round ended it returns the last snapshot and
// no events. Calling Tick before Start panics.
func (s *Simulation) Tick() TickResult {
	if s.state == StateIdle {
		panic("engine: Tick called before Start")
	}
	if s.paused || s.state == StateTerminal {
		return TickResult{Tick: s.world.Tick, Snapshot: s.Latest()}
	}

	w := s.world
	prevCamera, prevScore := w.Camera, w.Score
	s.events = s.events[:0]
	w.Tick++

	if integrate(w, s.Target(), s.cfg.Physics, s.cfg.World) {
		s.emit(Event{Kind: EventScoreChanged, Score: w.Score})
	}

	s.resolver.resolve(w, &s.hits)
	for _, l := range s.hits.Landings {
		s.fx.burst(w, l.At, TintSkin, s.cfg.Effects.BounceBurst)
		s.emit(Event{Kind: EventCue, Cue: core.CueBounce})
		if l.Broke {
			s.fx.burst(w, l.Center, TintBreaking, s.cfg.Effects.BreakBurst)
		}
	}
	for _, at := range s.hits.Coins {
		w.CoinsCollected++
		s.emit(Event{Kind: EventCoinsCollected, Coins: 1})
		s.fx.burst(w, at, TintCoin, s.cfg.Effects.CoinBurst)
		s.emit(Event{Kind: EventCue, Cue: core.CueCoin})
	}
	if s.hits.Fatal {
		s.endRound()
	}

	s.level = s.difficulty.Level(w.Score, int(w.Tick))
	s.gen.Extend(w, s.level)
	reclaim(w, s.cfg.World.CleanupMargin)
	ageParticles(w, s.cfg.Effects.ParticleDecay)

	if s.debug {
		s.checkInvariants(prevCamera, prevScore)
	}

	snap := s.publish()
	return TickResult{
		Tick:     w.Tick,
		Events:   slices.Clone(s.events),
		Snapshot: snap,
	}
}

// Snapshot returns a fresh deep copy of the current world.
func (s *Simulation) Snapshot() *Snapshot {
	if s.world == nil {
		return &Snapshot{State: StateIdle, Width: s.cfg.World.Width, ViewHeight: s.viewHeight, Skin: s.skin}
	}
	return takeSnapshot(s.world, s.state, s.paused, s.cfg.Avatar.Radius, s.level, s.skin)
}

// Latest returns the most recently published snapshot, or nil before Start.
func (s *Simulation) Latest() *Snapshot {
	return s.latest.Load()
}

// endRound performs the terminal transition. The latch makes it fire once.
func (s *Simulation) endRound() {
	if s.world.gameOver {
		return
	}
	s.world.gameOver = true
	s.state = StateTerminal
	s.emit(Event{Kind: EventCue, Cue: core.CueGameOver})
	s.emit(Event{Kind: EventRoundEnded})
}

func (s *Simulation) emit(e Event) {
	s.events = append(s.events, e)
	dispatch(s.listener, e)
}

func (s *Simulation) publish() *Snapshot {
	snap := s.Snapshot()
	s.latest.Store(snap)
	return snap
}

// checkInvariants panics if the world violates an engine invariant.
func (s *Simulation) checkInvariants(prevCamera float64, prevScore int) {
	w := s.world
	if w.Camera > prevCamera {
		panic(fmt.Sprintf("engine: camera regressed from %v to %v", prevCamera, w.Camera))
	}
	if w.Score < prevScore {
		panic(fmt.Sprintf("engine: score decreased from %d to %d", prevScore, w.Score))
	}

	seen := make(map[EntityID]struct{}, w.Live())
	check := func(id EntityID) {
		if _, dup := seen[id]; dup {
			panic(fmt.Sprintf("engine: duplicate entity id %d", id))
		}
		seen[id] = struct{}{}
	}
	for _, p := range w.Platforms {
		if p.Width <= 0 {
			panic(fmt.Sprintf("engine: platform %d has non-positive width %v", p.ID, p.Width))
		}
		check(p.ID)
	}
	for _, c := range w.Coins {
		check(c.ID)
	}
	for _, h := range w.Hazards {
		check(h.ID)
	}
}
