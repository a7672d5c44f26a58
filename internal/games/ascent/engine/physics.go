package engine

import (
	"math"

	"github.com/vovakirdan/neon-ascent/internal/config"
	"github.com/vovakirdan/neon-ascent/internal/core"
)

// integrate advances the avatar, the moving platforms and the camera by
// one tick. It reports whether the score increased.
func integrate(w *World, targetX float64, ph config.AscentPhysics, wc config.AscentWorld) bool {
	a := &w.Avatar
	a.X = core.Lerp(a.X, targetX, ph.MovementLerp)

	a.VY += ph.Gravity
	if ph.ClampFallSpeed && a.VY > ph.TerminalVelocity {
		a.VY = ph.TerminalVelocity
	}
	a.Y += a.VY

	a.X = core.Wrap(a.X, w.Width)

	moveMovingPlatforms(w, ph.PlatformSpeed)

	return followCamera(w, wc.CameraBias, wc.ScoreDivisor)
}

// moveMovingPlatforms slides moving platforms and bounces them off the walls.
func moveMovingPlatforms(w *World, speed float64) {
	for i := range w.Platforms {
		p := &w.Platforms[i]
		if p.Kind != PlatformMoving {
			continue
		}
		p.X += p.Dir * speed
		if p.X > w.Width-p.Width {
			p.Dir = -1
		}
		if p.X < 0 {
			p.Dir = 1
		}
	}
}

// followCamera raises the camera toward the avatar. The camera never moves
// down; the score follows the camera and only ever increases.
func followCamera(w *World, bias, divisor float64) bool {
	candidate := w.Avatar.Y - w.ViewHeight*bias
	if candidate >= w.Camera {
		return false
	}
	w.Camera = candidate

	height := int(math.Floor(math.Abs(w.Camera) / divisor))
	if height <= w.Score {
		return false
	}
	w.Score = height
	return true
}
