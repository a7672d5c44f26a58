package engine

import (
	"math/rand"

	"github.com/vovakirdan/neon-ascent/internal/config"
	"github.com/vovakirdan/neon-ascent/internal/core"
)

// emitter spawns particle bursts from its own random stream, so visual
// effects never shift level generation.
type emitter struct {
	cfg config.AscentEffects
	rng *rand.Rand
}

// burst appends n particles at pos. Beyond MaxParticles new sparks are dropped.
func (e emitter) burst(w *World, pos core.Vec, tint Tint, n int) {
	for i := 0; i < n; i++ {
		if e.cfg.MaxParticles > 0 && len(w.Particles) >= e.cfg.MaxParticles {
			return
		}
		w.Particles = append(w.Particles, Particle{
			X:    pos.X,
			Y:    pos.Y,
			VX:   (e.rng.Float64() - 0.5) * 2 * e.cfg.ParticleSpeed,
			VY:   (e.rng.Float64() - 0.5) * 2 * e.cfg.ParticleSpeed,
			Life: 1,
			Tint: tint,
		})
	}
}

// ageParticles moves every particle and drops the ones whose life ran out.
func ageParticles(w *World, decay float64) {
	alive := w.Particles[:0]
	for _, p := range w.Particles {
		p.X += p.VX
		p.Y += p.VY
		p.Life -= decay
		if p.Life > 0 {
			alive = append(alive, p)
		}
	}
	w.Particles = alive
}
