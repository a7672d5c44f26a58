package main

import (
	"os"
	"testing"
)

func TestMuteIsGlobal(t *testing.T) {
	if rootCmd.PersistentFlags().Lookup("mute") == nil {
		t.Fatal("--mute should be a persistent flag")
	}

	t.Cleanup(func() { flagMute = false })
	flagMute = false
	if bell() != os.Stdout {
		t.Error("bell should ring on stdout by default")
	}
	flagMute = true
	if bell() != nil {
		t.Error("muted bell should be nil")
	}
}

func TestRuntimeConfigKeepsSeed(t *testing.T) {
	t.Cleanup(func() { flagSeed, flagFPS = 0, 60 })
	flagSeed, flagFPS = 42, 30
	cfg := runtimeConfig()
	if cfg.Seed != 42 || cfg.TickRate != 30 {
		t.Errorf("runtimeConfig() = %+v", cfg)
	}
	if cfg.ScreenW <= 0 || cfg.ScreenH <= 0 {
		t.Errorf("screen size %dx%d", cfg.ScreenW, cfg.ScreenH)
	}
}
