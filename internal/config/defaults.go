package config

import (
	_ "embed"
)

//go:embed defaults/ascent.yaml
var defaultAscentYAML []byte

// DefaultAscentConfig returns the default Neon Ascent configuration.
// It mirrors defaults/ascent.yaml and is used if the embedded file fails to parse.
func DefaultAscentConfig() AscentConfig {
	return AscentConfig{
		World: AscentWorld{
			Width:         400,
			CameraBias:    0.6,
			FallMargin:    100,
			CleanupMargin: 200,
			ScoreDivisor:  10,
		},
		Physics: AscentPhysics{
			Gravity:          0.6,
			JumpImpulse:      -14,
			TerminalVelocity: 15,
			ClampFallSpeed:   false,
			MovementLerp:     0.15,
			PlatformSpeed:    2,
			LandingTolerance: 20,
		},
		Avatar: AscentAvatar{
			Radius:      12,
			StartOffset: 100,
		},
		Generation: AscentGeneration{
			PlatformWidthMin: 70,
			PlatformWidthMax: 110,
			PlatformHeight:   12,
			GapMin:           60,
			GapMax:           120,
			LookAhead:        100,
			StartPlatformGap: 50,
			InitialLadder:    10,
			LadderSpacing:    100,
			PlatformRules: []PlatformRule{
				{Kind: "moving", MinHeight: 2000, Probability: 0.3},
				{Kind: "breaking", MinHeight: 4000, Probability: 0.2},
			},
			Hazards: HazardConfig{
				MinHeight:   1000,
				Probability: 0.1,
				Lift:        50,
				Radius:      15,
				KindRules: []HazardRule{
					{Kind: "orb", MinHeight: 6000, Probability: 0.35},
				},
			},
			Coins: CoinConfig{
				Probability: 0.2,
				Lift:        40,
				Radius:      8,
			},
		},
		Effects: AscentEffects{
			ParticleSpeed: 4,
			ParticleDecay: 0.05,
			BounceBurst:   4,
			BreakBurst:    8,
			CoinBurst:     6,
			MaxParticles:  256,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 1500,
			},
			Scaling: ScalingConfig{
				ProbabilityBoost: 0.2,
				GapIncrease:      30,
			},
		},
		Skins: []Skin{
			{ID: "cyan", Name: "Cyber", Color: "#00E5FF", Glow: "#00E5FF", Price: 0},
			{ID: "pink", Name: "Plasma", Color: "#E040FB", Glow: "#E040FB", Price: 100},
			{ID: "lime", Name: "Toxic", Color: "#76FF03", Glow: "#76FF03", Price: 250},
			{ID: "white", Name: "Starlight", Color: "#FFFFFF", Glow: "#FFFFFF", Price: 500},
			{ID: "red", Name: "Fury", Color: "#FF1744", Glow: "#FF1744", Price: 1000},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "ascent":
		return defaultAscentYAML
	default:
		return nil
	}
}
