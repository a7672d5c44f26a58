package engine

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/neon-ascent/internal/config"
)

// maxSpawnsPerTick bounds Extend so a bad configuration cannot spin forever.
const maxSpawnsPerTick = 64

// DifficultyContext carries what a spawn decision may depend on.
type DifficultyContext struct {
	Height float64 // |y| of the spawn
	Level  float64 // 0.0 to 1.0
}

// Generator produces platforms, coins and hazards above the frontier.
type Generator struct {
	cfg        config.AscentGeneration
	width      float64
	rng        *rand.Rand
	rules      platformRules
	hazards    hazardRules
	difficulty *config.DifficultyManager
}

// NewGenerator creates a generator for a playfield of the given width.
func NewGenerator(cfg config.AscentGeneration, width float64, difficulty *config.DifficultyManager, rng *rand.Rand) *Generator {
	return &Generator{
		cfg:        cfg,
		width:      width,
		rng:        rng,
		rules:      newPlatformRules(cfg.PlatformRules),
		hazards:    newHazardRules(cfg.Hazards.KindRules),
		difficulty: difficulty,
	}
}

// Seed populates a fresh world: a full-width static platform beneath the
// avatar start and a ladder of platforms above it.
func (g *Generator) Seed(w *World, startY float64) {
	base := startY + g.cfg.StartPlatformGap
	w.Platforms = append(w.Platforms, Platform{
		ID:    w.ids.Next(),
		X:     0,
		Y:     base,
		Width: w.Width,
		Kind:  PlatformStatic,
	})
	w.Frontier = base

	level := g.difficulty.Level(0, 0)
	for i := 0; i < g.cfg.InitialLadder; i++ {
		y := startY - (float64(i)*g.cfg.LadderSpacing + g.cfg.LadderSpacing)
		g.SpawnPlatformAbove(w, y, DifficultyContext{Height: math.Abs(y), Level: level})
	}
}

// Extend spawns platforms until the frontier is LookAhead above the camera.
// It returns the number of platforms spawned.
func (g *Generator) Extend(w *World, level float64) int {
	spawned := 0
	for w.Frontier > w.Camera-g.cfg.LookAhead && spawned < maxSpawnsPerTick {
		gap := g.cfg.GapMin + g.rng.Float64()*(g.cfg.GapMax-g.cfg.GapMin)
		y := w.Frontier - g.difficulty.Gap(gap, level)
		g.SpawnPlatformAbove(w, y, DifficultyContext{Height: math.Abs(y), Level: level})
		spawned++
	}
	return spawned
}

// SpawnPlatformAbove appends one platform with its top at y, and possibly
// a coin above it and a hazard near it.
func (g *Generator) SpawnPlatformAbove(w *World, y float64, ctx DifficultyContext) {
	width := g.cfg.PlatformWidthMin + g.rng.Float64()*(g.cfg.PlatformWidthMax-g.cfg.PlatformWidthMin)
	x := g.rng.Float64() * (g.width - width)

	boost := func(p float64) float64 { return g.difficulty.Probability(p, ctx.Level) }
	p := Platform{
		ID:    w.ids.Next(),
		X:     x,
		Y:     y,
		Width: width,
		Kind:  g.rules.pick(ctx.Height, g.rng, boost),
	}
	if p.Kind == PlatformMoving {
		p.Dir = 1
		if g.rng.Float64() < 0.5 {
			p.Dir = -1
		}
	}
	w.Platforms = append(w.Platforms, p)
	if y < w.Frontier {
		w.Frontier = y
	}

	if g.rng.Float64() < g.cfg.Coins.Probability {
		w.Coins = append(w.Coins, Coin{
			ID: w.ids.Next(),
			X:  x + width/2,
			Y:  y - g.cfg.Coins.Lift,
		})
	}

	hz := g.cfg.Hazards
	if ctx.Height > hz.MinHeight && g.rng.Float64() < boost(hz.Probability) {
		w.Hazards = append(w.Hazards, Hazard{
			ID:   w.ids.Next(),
			X:    g.rng.Float64() * g.width,
			Y:    y - hz.Lift,
			Kind: g.hazards.pick(ctx.Height, g.rng),
		})
	}
}
