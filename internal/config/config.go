// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/neon-ascent/internal/core"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// AscentConfig contains all configuration for the Neon Ascent game.
type AscentConfig struct {
	World      AscentWorld      `yaml:"world"`
	Physics    AscentPhysics    `yaml:"physics"`
	Avatar     AscentAvatar     `yaml:"avatar"`
	Generation AscentGeneration `yaml:"generation"`
	Effects    AscentEffects    `yaml:"effects"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Skins      []Skin           `yaml:"skins"`
}

// AscentWorld defines the playfield and the cleanup window.
type AscentWorld struct {
	Width         float64 `yaml:"width"`
	CameraBias    float64 `yaml:"camera_bias"`    // Fraction of the view kept below the avatar
	FallMargin    float64 `yaml:"fall_margin"`    // Distance below the view that ends the round
	CleanupMargin float64 `yaml:"cleanup_margin"` // Distance below the view where entities are reclaimed
	ScoreDivisor  float64 `yaml:"score_divisor"`  // Camera units per score point
}

// AscentPhysics defines avatar and platform motion.
type AscentPhysics struct {
	Gravity          float64 `yaml:"gravity"`
	JumpImpulse      float64 `yaml:"jump_impulse"`
	TerminalVelocity float64 `yaml:"terminal_velocity"`
	ClampFallSpeed   bool    `yaml:"clamp_fall_speed"`
	MovementLerp     float64 `yaml:"movement_lerp"`
	PlatformSpeed    float64 `yaml:"platform_speed"`
	LandingTolerance float64 `yaml:"landing_tolerance"`
}

// AscentAvatar defines avatar size and start placement.
type AscentAvatar struct {
	Radius      float64 `yaml:"radius"`
	StartOffset float64 `yaml:"start_offset"` // Start height above the bottom of the view
}

// AscentGeneration defines procedural level generation.
type AscentGeneration struct {
	PlatformWidthMin float64        `yaml:"platform_width_min"`
	PlatformWidthMax float64        `yaml:"platform_width_max"`
	PlatformHeight   float64        `yaml:"platform_height"`
	GapMin           float64        `yaml:"gap_min"`
	GapMax           float64        `yaml:"gap_max"`
	LookAhead        float64        `yaml:"look_ahead"`
	StartPlatformGap float64        `yaml:"start_platform_gap"` // Start platform distance below the avatar
	InitialLadder    int            `yaml:"initial_ladder"`
	LadderSpacing    float64        `yaml:"ladder_spacing"`
	PlatformRules    []PlatformRule `yaml:"platform_rules"`
	Hazards          HazardConfig   `yaml:"hazards"`
	Coins            CoinConfig     `yaml:"coins"`
}

// PlatformRule gates one platform kind behind a height and a probability.
// Rules are evaluated in the order listed; the first success wins.
type PlatformRule struct {
	Kind        string  `yaml:"kind"` // "moving" or "breaking"
	MinHeight   float64 `yaml:"min_height"`
	Probability float64 `yaml:"probability"`
}

// HazardConfig defines hazard spawning.
type HazardConfig struct {
	MinHeight   float64      `yaml:"min_height"`
	Probability float64      `yaml:"probability"`
	Lift        float64      `yaml:"lift"` // Placement above the spawning platform
	Radius      float64      `yaml:"radius"`
	KindRules   []HazardRule `yaml:"kind_rules"`
}

// HazardRule selects a hazard kind other than the default spike.
type HazardRule struct {
	Kind        string  `yaml:"kind"` // "orb"
	MinHeight   float64 `yaml:"min_height"`
	Probability float64 `yaml:"probability"`
}

// CoinConfig defines coin spawning.
type CoinConfig struct {
	Probability float64 `yaml:"probability"`
	Lift        float64 `yaml:"lift"`
	Radius      float64 `yaml:"radius"`
}

// AscentEffects defines particle bursts.
type AscentEffects struct {
	ParticleSpeed float64 `yaml:"particle_speed"` // Max initial speed on each axis
	ParticleDecay float64 `yaml:"particle_decay"`
	BounceBurst   int     `yaml:"bounce_burst"`
	BreakBurst    int     `yaml:"break_burst"`
	CoinBurst     int     `yaml:"coin_burst"`
	MaxParticles  int     `yaml:"max_particles"`
}

// Skin is a purchasable cosmetic for the avatar.
type Skin struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Color string `yaml:"color"`
	Glow  string `yaml:"glow"`
	Price int    `yaml:"price"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	ProbabilityBoost float64 `yaml:"probability_boost"` // Added to every rule probability at max difficulty
	GapIncrease      float64 `yaml:"gap_increase"`      // Added to the vertical platform gap at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string to a preset. Unknown strings yield "".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// SkinByID looks up a skin in the catalogue.
func (c AscentConfig) SkinByID(id string) (Skin, bool) {
	for _, s := range c.Skins {
		if s.ID == id {
			return s, true
		}
	}
	return Skin{}, false
}

// DefaultSkin returns the first free skin, or the first skin in the catalogue.
func (c AscentConfig) DefaultSkin() Skin {
	for _, s := range c.Skins {
		if s.Price == 0 {
			return s
		}
	}
	if len(c.Skins) > 0 {
		return c.Skins[0]
	}
	return Skin{ID: "cyan", Name: "Cyber", Color: "#00E5FF", Glow: "#00E5FF"}
}

// Validate checks the configuration for values the engine cannot run with.
func (c AscentConfig) Validate() error {
	g := c.Generation
	switch {
	case c.World.Width <= 0:
		return fmt.Errorf("%w: world.width must be positive", ErrInvalidConfig)
	case c.World.ScoreDivisor <= 0:
		return fmt.Errorf("%w: world.score_divisor must be positive", ErrInvalidConfig)
	case c.World.CameraBias < 0 || c.World.CameraBias > 1:
		return fmt.Errorf("%w: world.camera_bias must be within [0, 1]", ErrInvalidConfig)
	case c.Physics.JumpImpulse >= 0:
		return fmt.Errorf("%w: physics.jump_impulse must be negative (upward)", ErrInvalidConfig)
	case c.Physics.Gravity <= 0:
		return fmt.Errorf("%w: physics.gravity must be positive", ErrInvalidConfig)
	case c.Physics.MovementLerp <= 0 || c.Physics.MovementLerp > 1:
		return fmt.Errorf("%w: physics.movement_lerp must be within (0, 1]", ErrInvalidConfig)
	case c.Avatar.Radius <= 0:
		return fmt.Errorf("%w: avatar.radius must be positive", ErrInvalidConfig)
	case g.PlatformWidthMin <= 0 || g.PlatformWidthMax < g.PlatformWidthMin:
		return fmt.Errorf("%w: platform widths must satisfy 0 < min <= max", ErrInvalidConfig)
	case g.PlatformWidthMax > c.World.Width:
		return fmt.Errorf("%w: platform_width_max exceeds world width", ErrInvalidConfig)
	case g.GapMin <= 0 || g.GapMax < g.GapMin:
		return fmt.Errorf("%w: gaps must satisfy 0 < gap_min <= gap_max", ErrInvalidConfig)
	case c.Effects.ParticleDecay <= 0:
		return fmt.Errorf("%w: effects.particle_decay must be positive", ErrInvalidConfig)
	}

	for i, r := range g.PlatformRules {
		if r.Kind != "moving" && r.Kind != "breaking" {
			return fmt.Errorf("%w: platform_rules[%d]: unknown kind %q", ErrInvalidConfig, i, r.Kind)
		}
		if r.Probability < 0 || r.Probability > 1 {
			return fmt.Errorf("%w: platform_rules[%d]: probability out of range", ErrInvalidConfig, i)
		}
	}
	for i, r := range g.Hazards.KindRules {
		if r.Kind != "orb" && r.Kind != "spike" {
			return fmt.Errorf("%w: hazards.kind_rules[%d]: unknown kind %q", ErrInvalidConfig, i, r.Kind)
		}
	}

	seen := make(map[string]bool, len(c.Skins))
	for _, s := range c.Skins {
		if s.ID == "" || seen[s.ID] {
			return fmt.Errorf("%w: skin ids must be unique and non-empty (%q)", ErrInvalidConfig, s.ID)
		}
		seen[s.ID] = true
		if !core.Color(s.Color).IsHex() || !core.Color(s.Glow).IsHex() {
			return fmt.Errorf("%w: skin %q: colors must be #RRGGBB", ErrInvalidConfig, s.ID)
		}
	}
	return nil
}
