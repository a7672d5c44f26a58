package config

import (
	"math"
	"testing"
)

func TestDifficultyDisabledHoldsInitialLevel(t *testing.T) {
	d := NewDifficultyManager(DefaultAscentConfig().Difficulty)

	if d.IsEnabled() {
		t.Fatal("default difficulty should be disabled")
	}
	if lvl := d.Level(100000, 100000); lvl != 0 {
		t.Errorf("Level() = %v, expected 0 when disabled", lvl)
	}
	if p := d.Probability(0.3, 0); p != 0.3 {
		t.Errorf("Probability at level 0 = %v, expected base 0.3", p)
	}
	if g := d.Gap(60, 0); g != 60 {
		t.Errorf("Gap at level 0 = %v, expected base 60", g)
	}
}

func TestDifficultyScoreProgression(t *testing.T) {
	cfg := DefaultAscentConfig().Difficulty
	cfg.Enabled = true
	cfg.InitialLevel = 0.3
	d := NewDifficultyManager(cfg)

	tests := []struct {
		score    int
		expected float64
	}{
		{0, 0.3},
		{750, 0.65},
		{1500, 1.0},
		{9000, 1.0},
	}

	for _, tc := range tests {
		if got := d.Level(tc.score, 0); math.Abs(got-tc.expected) > 1e-9 {
			t.Errorf("Level(%d) = %v, expected %v", tc.score, got, tc.expected)
		}
	}
}

func TestDifficultyTimeProgression(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "time", MaxAt: 600},
	}
	d := NewDifficultyManager(cfg)

	if got := d.Level(0, 300); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("Level at half time = %v, expected 0.5", got)
	}
}

func TestDifficultyProbabilityCapped(t *testing.T) {
	cfg := DefaultAscentConfig().Difficulty
	cfg.Scaling.ProbabilityBoost = 5
	d := NewDifficultyManager(cfg)

	if p := d.Probability(0.5, 1); p != 1 {
		t.Errorf("Probability() = %v, expected cap at 1", p)
	}
}
