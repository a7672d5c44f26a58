package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// AppDir is the per-user directory holding configs, the database and host keys.
const AppDir = ".neon-ascent"

// LoadAscent loads Neon Ascent configuration.
// Search order: customPath -> ~/.neon-ascent/configs/ascent.yaml -> ./configs/ascent.yaml -> embedded default
//
// Files are decoded over the defaults, so a partial file only overrides the
// keys it sets. A custom path that cannot be read or parsed is an error; the
// implicit locations are skipped silently.
func LoadAscent(customPath string) (AscentConfig, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, err
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath("ascent.yaml"); userCfgPath != "" {
		if cfg, err := loadFile(userCfgPath); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	if cfg, err := loadFile(filepath.Join("configs", "ascent.yaml")); err == nil && cfg.Validate() == nil {
		return cfg, nil
	}

	return embeddedDefault(), nil
}

// ParseAscent decodes YAML over the defaults and validates the result.
func ParseAscent(data []byte) (AscentConfig, error) {
	cfg := embeddedDefault()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadFile(path string) (AscentConfig, error) {
	cfg := embeddedDefault()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

func embeddedDefault() AscentConfig {
	var cfg AscentConfig
	if err := yaml.Unmarshal(defaultAscentYAML, &cfg); err != nil {
		return DefaultAscentConfig() // Fallback to hardcoded if embed fails
	}
	return cfg
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, AppDir, "configs", filename)
}

// ApplyAscentPreset modifies the config based on a difficulty preset.
func ApplyAscentPreset(cfg *AscentConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}
