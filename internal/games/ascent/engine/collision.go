package engine

import (
	"github.com/vovakirdan/neon-ascent/internal/config"
	"github.com/vovakirdan/neon-ascent/internal/core"
)

// landing describes one platform bounce.
type landing struct {
	Platform EntityID
	Broke    bool
	At       core.Vec // contact point
	Center   core.Vec // platform centre, for the break burst
}

// collisions is what one resolve pass found.
type collisions struct {
	Landings []landing
	Coins    []core.Vec // positions of coins collected this tick
	Fatal    bool       // hazard contact or fall-off
}

// resolver holds the geometry constants used by collision tests.
type resolver struct {
	radius       float64
	coinRadius   float64
	hazardRadius float64
	tolerance    float64
	jumpImpulse  float64
	fallMargin   float64
}

func newResolver(cfg config.AscentConfig) resolver {
	return resolver{
		radius:       cfg.Avatar.Radius,
		coinRadius:   cfg.Generation.Coins.Radius,
		hazardRadius: cfg.Generation.Hazards.Radius,
		tolerance:    cfg.Physics.LandingTolerance,
		jumpImpulse:  cfg.Physics.JumpImpulse,
		fallMargin:   cfg.World.FallMargin,
	}
}

// resolve tests the avatar against every platform, coin and hazard and
// applies the outcomes to the world. The caller turns the result into
// particles, events and the terminal transition.
func (r resolver) resolve(w *World, out *collisions) {
	out.Landings = out.Landings[:0]
	out.Coins = out.Coins[:0]
	out.Fatal = false

	a := &w.Avatar
	pos := core.Vec{X: a.X, Y: a.Y}

	// Platforms are one-way: only a descending avatar can land.
	if a.VY > 0 {
		for i := range w.Platforms {
			p := &w.Platforms[i]
			if p.Broken || !r.lands(a, p) {
				continue
			}
			a.VY = r.jumpImpulse
			l := landing{
				Platform: p.ID,
				At:       core.Vec{X: a.X, Y: p.Y},
				Center:   core.Vec{X: p.X + p.Width/2, Y: p.Y},
			}
			if p.Kind == PlatformBreaking {
				p.Broken = true
				l.Broke = true
			}
			out.Landings = append(out.Landings, l)
		}
	}

	for i := range w.Coins {
		c := &w.Coins[i]
		if c.Collected {
			continue
		}
		at := core.Vec{X: c.X, Y: c.Y}
		if core.CirclesOverlap(pos, r.radius, at, r.coinRadius) {
			c.Collected = true
			out.Coins = append(out.Coins, at)
		}
	}

	for _, h := range w.Hazards {
		if core.CirclesOverlap(pos, r.radius, core.Vec{X: h.X, Y: h.Y}, r.hazardRadius) {
			out.Fatal = true
			break
		}
	}

	if a.Y > w.bottomEdge()+r.fallMargin {
		out.Fatal = true
	}
}

// lands reports whether the avatar's bottom edge is inside the landing band
// of p and the two overlap horizontally.
func (r resolver) lands(a *Avatar, p *Platform) bool {
	if !core.SpanOverlap(a.X-r.radius, a.X+r.radius, p.X, p.Right()) {
		return false
	}
	bottom := a.Y + r.radius
	return bottom >= p.Y && bottom <= p.Y+r.tolerance
}
