// Package engine is the Neon Ascent simulation core: physics integration,
// camera-relative level generation, collision resolution, cleanup of
// off-screen geometry and particle bookkeeping.
//
// The engine has no I/O and no dependency on the terminal. One Simulation
// owns one World and is the only writer to it; renderers read immutable
// Snapshots.
//
// Coordinates are world units with y growing downward, so ascending means
// y (and the camera offset) getting smaller.
package engine

import "fmt"

// EntityID identifies a platform, coin or hazard within one world lifetime.
type EntityID uint64

// PlatformKind is the platform variant. It never changes after creation.
type PlatformKind int

const (
	PlatformStatic PlatformKind = iota
	PlatformMoving
	PlatformBreaking
)

// String returns the lowercase kind name used in configuration.
func (k PlatformKind) String() string {
	switch k {
	case PlatformStatic:
		return "static"
	case PlatformMoving:
		return "moving"
	case PlatformBreaking:
		return "breaking"
	default:
		return fmt.Sprintf("PlatformKind(%d)", int(k))
	}
}

// HazardKind is the hazard variant. Both kinds kill on contact.
type HazardKind int

const (
	HazardSpike HazardKind = iota
	HazardOrb
)

// String returns the lowercase kind name used in configuration.
func (k HazardKind) String() string {
	switch k {
	case HazardSpike:
		return "spike"
	case HazardOrb:
		return "orb"
	default:
		return fmt.Sprintf("HazardKind(%d)", int(k))
	}
}

// Tint says which palette entry a particle takes. The renderer resolves
// TintSkin against the active skin.
type Tint int

const (
	TintSkin Tint = iota
	TintBreaking
	TintCoin
)

// Avatar is the player ball. X, Y is its center.
type Avatar struct {
	X, Y   float64
	VX, VY float64
}

// Platform is a one-way ledge. Y is its top surface.
type Platform struct {
	ID     EntityID
	X, Y   float64
	Width  float64
	Kind   PlatformKind
	Dir    float64 // +1 or -1 for moving platforms, 0 otherwise
	Broken bool    // Breaking platforms only; set once on first landing
}

// Right returns the x-coordinate of the right edge.
func (p Platform) Right() float64 {
	return p.X + p.Width
}

// Coin is a collectible. Collected coins stay inert until cleanup.
type Coin struct {
	ID        EntityID
	X, Y      float64
	Collected bool
}

// Hazard kills the avatar on contact.
type Hazard struct {
	ID   EntityID
	X, Y float64
	Kind HazardKind
}

// Particle is a purely visual spark.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   float64
	Tint   Tint
}

// World is the complete mutable state of one round.
type World struct {
	Width      float64
	ViewHeight float64

	Avatar Avatar
	Camera float64

	Platforms []Platform
	Coins     []Coin
	Hazards   []Hazard
	Particles []Particle

	Score          int
	CoinsCollected int
	Tick           uint64

	// Frontier is the y of the highest platform ever generated this round.
	Frontier float64

	gameOver bool
	ids      idAllocator
}

// newWorld creates an empty world for a view of the given size.
func newWorld(width, viewHeight float64) *World {
	return &World{
		Width:      width,
		ViewHeight: viewHeight,
		Platforms:  make([]Platform, 0, 32),
		Coins:      make([]Coin, 0, 8),
		Hazards:    make([]Hazard, 0, 8),
		Particles:  make([]Particle, 0, 64),
	}
}

// GameOver reports whether the terminal latch is set.
func (w *World) GameOver() bool {
	return w.gameOver
}

// Live returns the number of platforms, coins and hazards currently held.
func (w *World) Live() int {
	return len(w.Platforms) + len(w.Coins) + len(w.Hazards)
}

// bottomEdge returns the y of the bottom of the visible window.
func (w *World) bottomEdge() float64 {
	return w.Camera + w.ViewHeight
}
