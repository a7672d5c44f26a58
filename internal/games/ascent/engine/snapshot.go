package engine

import (
	"math"
	"slices"

	"github.com/vovakirdan/neon-ascent/internal/config"
)

// Snapshot is an immutable copy of the world taken at the end of a tick.
// It shares no memory with the live world.
type Snapshot struct {
	Tick   uint64
	State  RoundState
	Paused bool

	Width      float64
	ViewHeight float64
	Camera     float64
	Avatar     Avatar
	Radius     float64

	Score          int
	CoinsCollected int
	Level          float64

	Skin config.Skin

	Platforms []Platform
	Coins     []Coin
	Hazards   []Hazard
	Particles []Particle
}

// Live returns the number of platforms, coins and hazards in the snapshot.
func (s *Snapshot) Live() int {
	return len(s.Platforms) + len(s.Coins) + len(s.Hazards)
}

// Hash returns a deterministic digest of the gameplay state.
// Used for determinism testing; particles and cosmetics are excluded.
func (s *Snapshot) Hash() uint64 {
	h := uint64(17)
	mix := func(v uint64) { h = h*31 + v }
	mixF := func(f float64) { mix(math.Float64bits(f)) }

	mix(s.Tick)
	mix(uint64(s.State))
	mixF(s.Camera)
	mixF(s.Avatar.X)
	mixF(s.Avatar.Y)
	mixF(s.Avatar.VY)
	mix(uint64(s.Score))
	mix(uint64(s.CoinsCollected))

	for _, p := range s.Platforms {
		mix(uint64(p.ID))
		mixF(p.X)
		mixF(p.Y)
		mixF(p.Width)
		mix(uint64(p.Kind))
		if p.Broken {
			mix(1)
		}
	}
	for _, c := range s.Coins {
		mix(uint64(c.ID))
		mixF(c.X)
		mixF(c.Y)
		if c.Collected {
			mix(1)
		}
	}
	for _, hz := range s.Hazards {
		mix(uint64(hz.ID))
		mixF(hz.X)
		mixF(hz.Y)
		mix(uint64(hz.Kind))
	}
	return h
}

// takeSnapshot deep-copies the world.
func takeSnapshot(w *World, state RoundState, paused bool, radius, level float64, skin config.Skin) *Snapshot {
	return &Snapshot{
		Tick:           w.Tick,
		State:          state,
		Paused:         paused,
		Width:          w.Width,
		ViewHeight:     w.ViewHeight,
		Camera:         w.Camera,
		Avatar:         w.Avatar,
		Radius:         radius,
		Score:          w.Score,
		CoinsCollected: w.CoinsCollected,
		Level:          level,
		Skin:           skin,
		Platforms:      slices.Clone(w.Platforms),
		Coins:          slices.Clone(w.Coins),
		Hazards:        slices.Clone(w.Hazards),
		Particles:      slices.Clone(w.Particles),
	}
}
