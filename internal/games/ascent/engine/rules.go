package engine

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/neon-ascent/internal/config"
)

// platformRule upgrades a spawn from Static to Kind once the spawn height
// exceeds MinHeight, with the given probability.
type platformRule struct {
	Kind        PlatformKind
	MinHeight   float64
	Probability float64
}

// platformRules is evaluated in order; the first rule that passes both its
// height gate and its draw decides the kind. Later rules are not drawn, so
// variants are mutually exclusive.
type platformRules []platformRule

func newPlatformRules(src []config.PlatformRule) platformRules {
	rules := make(platformRules, 0, len(src))
	for _, r := range src {
		var kind PlatformKind
		switch r.Kind {
		case "moving":
			kind = PlatformMoving
		case "breaking":
			kind = PlatformBreaking
		default:
			panic(fmt.Sprintf("engine: unknown platform rule kind %q", r.Kind))
		}
		rules = append(rules, platformRule{Kind: kind, MinHeight: r.MinHeight, Probability: r.Probability})
	}
	return rules
}

// pick returns the kind for a platform spawned at the given height.
// boost maps a base probability to the effective one.
func (rs platformRules) pick(height float64, rng *rand.Rand, boost func(float64) float64) PlatformKind {
	for _, r := range rs {
		if height <= r.MinHeight {
			continue
		}
		if rng.Float64() < boost(r.Probability) {
			return r.Kind
		}
	}
	return PlatformStatic
}

type hazardRule struct {
	Kind        HazardKind
	MinHeight   float64
	Probability float64
}

// hazardRules selects the hazard kind the same way platformRules does,
// defaulting to a spike.
type hazardRules []hazardRule

func newHazardRules(src []config.HazardRule) hazardRules {
	rules := make(hazardRules, 0, len(src))
	for _, r := range src {
		var kind HazardKind
		switch r.Kind {
		case "spike":
			kind = HazardSpike
		case "orb":
			kind = HazardOrb
		default:
			panic(fmt.Sprintf("engine: unknown hazard rule kind %q", r.Kind))
		}
		rules = append(rules, hazardRule{Kind: kind, MinHeight: r.MinHeight, Probability: r.Probability})
	}
	return rules
}

func (rs hazardRules) pick(height float64, rng *rand.Rand) HazardKind {
	for _, r := range rs {
		if height > r.MinHeight && rng.Float64() < r.Probability {
			return r.Kind
		}
	}
	return HazardSpike
}
