package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-ascent/internal/config"
	"github.com/vovakirdan/neon-ascent/internal/games/ascent"
	"github.com/vovakirdan/neon-ascent/internal/platform/tui"
	"github.com/vovakirdan/neon-ascent/internal/registry"
)

var (
	flagDifficulty string
	flagSkin       string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a round directly",
	Long: `Start climbing right away, skipping the lobby.

Controls:
  Mouse      - Steer towards the pointer
  Left/Right - Nudge left or right
  P/Space    - Pause
  R/Enter    - Restart (after game over)
  Ctrl+S     - Save a screenshot
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Without --difficulty the config decides; the shipped default keeps
progression off.

Examples:
  ascent play
  ascent play --difficulty hard
  ascent play --seed 42
  ascent play --skin lime
  ascent play --config ./my-ascent.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagSkin, "skin", "", "Skin to use when the profile has none equipped")
}

func runPlay(_ *cobra.Command, _ []string) {
	logger := newLogger("ascent")

	cfg, err := loadConfig()
	if err != nil {
		logger.Fatal("invalid config", "error", err)
	}
	store := openStore(logger, false)

	if flagSkin != "" {
		skin, ok := cfg.SkinByID(flagSkin)
		if !ok {
			logger.Fatal("unknown skin", "skin", flagSkin)
		}
		if store != nil && skin.Price > 0 {
			p, err := store.Profile(flagPlayer)
			if err == nil && !p.HasSkin(skin.ID) {
				logger.Fatal("skin is locked, buy it with 'ascent skins buy'", "skin", skin.ID, "price", skin.Price)
			}
		}
		ascent.SetSkin(skin.ID)
	}
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		logger.Fatal("unknown difficulty preset", "difficulty", flagDifficulty)
	}
	ascent.SetDifficultyPreset(flagDifficulty)

	game, err := registry.Create(ascent.GameID)
	if err != nil {
		logger.Fatal("could not create game", "error", err)
	}

	sessLog, closeLog := sessionLogger()
	opts := tui.GameOptions{
		Store:  store,
		Owner:  flagPlayer,
		Logger: sessLog,
		Bell:   bell(),
	}

	runErr := tui.Run(game, runtimeConfig(), opts)

	closeLog()
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		logger.Error("game failed", "error", runErr)
		os.Exit(1)
	}
}
