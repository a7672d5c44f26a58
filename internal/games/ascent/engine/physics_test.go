package engine

import (
	"math"
	"testing"

	"github.com/vovakirdan/neon-ascent/internal/config"
)

func TestHorizontalWrap(t *testing.T) {
	cfg := config.DefaultAscentConfig()
	tests := []struct {
		name string
		x    float64
		want float64
	}{
		{"past right edge", 405, 5},
		{"past left edge", -5, 395},
		{"inside", 200, 200},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newWorld(cfg.World.Width, DefaultViewHeight)
			w.Avatar = Avatar{X: tt.x}
			integrate(w, tt.x, cfg.Physics, cfg.World)
			if w.Avatar.X != tt.want {
				t.Errorf("x = %v, want %v", w.Avatar.X, tt.want)
			}
		})
	}
}

func TestIntegrateLerpAndGravity(t *testing.T) {
	cfg := config.DefaultAscentConfig()
	w := newWorld(cfg.World.Width, DefaultViewHeight)
	w.Avatar = Avatar{X: 100, Y: 300, VY: 2}

	integrate(w, 300, cfg.Physics, cfg.World)
	if want := 100 + 200*cfg.Physics.MovementLerp; math.Abs(w.Avatar.X-want) > 1e-9 {
		t.Errorf("x = %v, want %v", w.Avatar.X, want)
	}
	if want := 2 + cfg.Physics.Gravity; math.Abs(w.Avatar.VY-want) > 1e-9 {
		t.Errorf("vy = %v, want %v", w.Avatar.VY, want)
	}
	if want := 300 + 2 + cfg.Physics.Gravity; math.Abs(w.Avatar.Y-want) > 1e-9 {
		t.Errorf("y = %v, want %v", w.Avatar.Y, want)
	}
}

func TestFallSpeedClamp(t *testing.T) {
	cfg := config.DefaultAscentConfig()

	w := newWorld(cfg.World.Width, DefaultViewHeight)
	w.Avatar.VY = 30
	integrate(w, 0, cfg.Physics, cfg.World)
	if w.Avatar.VY <= cfg.Physics.TerminalVelocity {
		t.Errorf("unclamped vy = %v, expected to exceed terminal velocity", w.Avatar.VY)
	}

	cfg.Physics.ClampFallSpeed = true
	w = newWorld(cfg.World.Width, DefaultViewHeight)
	w.Avatar.VY = 30
	integrate(w, 0, cfg.Physics, cfg.World)
	if w.Avatar.VY != cfg.Physics.TerminalVelocity {
		t.Errorf("clamped vy = %v, want %v", w.Avatar.VY, cfg.Physics.TerminalVelocity)
	}
}

func TestMovingPlatformBounces(t *testing.T) {
	w := newWorld(400, DefaultViewHeight)
	w.Platforms = []Platform{
		{ID: 1, X: 298, Width: 100, Kind: PlatformMoving, Dir: 1},
		{ID: 2, X: 1, Width: 100, Kind: PlatformMoving, Dir: -1},
		{ID: 3, X: 50, Width: 100, Kind: PlatformStatic},
	}

	moveMovingPlatforms(w, 2)
	if p := w.Platforms[0]; p.X != 300 || p.Dir != 1 {
		t.Errorf("right mover = %+v", p)
	}
	moveMovingPlatforms(w, 2)
	if p := w.Platforms[0]; p.X != 302 || p.Dir != -1 {
		t.Errorf("right mover should turn at the wall: %+v", p)
	}
	if p := w.Platforms[1]; p.Dir != 1 {
		t.Errorf("left mover should turn at the wall: %+v", p)
	}
	if p := w.Platforms[2]; p.X != 50 {
		t.Errorf("static platform moved to %v", p.X)
	}
}

func TestCameraOnlyRises(t *testing.T) {
	w := newWorld(400, 560)

	w.Avatar.Y = 231 // candidate -105
	if !followCamera(w, 0.6, 10) {
		t.Fatal("score should increase")
	}
	if w.Camera != 231-560*0.6 || w.Score != 10 {
		t.Errorf("camera=%v score=%d", w.Camera, w.Score)
	}

	w.Avatar.Y = 300
	if followCamera(w, 0.6, 10) {
		t.Error("descending avatar must not raise the score")
	}
	if w.Camera != 231-560*0.6 {
		t.Errorf("camera regressed to %v", w.Camera)
	}

	// A small rise that does not cross the next score boundary.
	w.Avatar.Y = 230.5
	if followCamera(w, 0.6, 10) {
		t.Error("score must not change inside a 10-unit band")
	}
	if w.Camera >= 231-560*0.6 {
		t.Error("camera should still move up")
	}
}
