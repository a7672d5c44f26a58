// ascent is Neon Ascent, an endless vertical climber for the terminal.
//
// Usage:
//
//	ascent                   - Open the lobby (play, skins, high scores)
//	ascent play              - Start a round directly
//	ascent serve             - Start SSH server for remote play
//	ascent scores            - Show high scores
//	ascent skins             - List, buy and equip skins
//	ascent profile           - Show wallet and statistics
//	ascent config            - Print the configuration as YAML
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible levels
//	--db <path>          - Set database path (default: ~/.neon-ascent/scores.db)
//	--player <name>      - Profile to play as (default: local)
//	--log-level <level>  - debug, info, warn or error
//	--config <path>      - Custom game config YAML
//	--mute               - Do not ring the terminal bell
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/neon-ascent/internal/config"
	"github.com/vovakirdan/neon-ascent/internal/core"
	"github.com/vovakirdan/neon-ascent/internal/games/ascent"
	"github.com/vovakirdan/neon-ascent/internal/platform/tui"
	"github.com/vovakirdan/neon-ascent/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagPlayer   string
	flagLogLevel string
	flagConfig   string
	flagMute     bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ascent",
	Short: "Neon Ascent - bounce your way up an endless neon tower",
	Long: `Neon Ascent is an endless climber for the terminal. The ball bounces
on its own; steer it left and right with the mouse or arrow keys, land on
platforms, grab coins and keep away from spikes and orbs.

Coins go into your wallet and buy new skins.

Examples:
  ascent
  ascent play --difficulty hard
  ascent serve --ssh :2222
  ascent skins buy pink
  ascent scores --mine`,
	SilenceUsage: true,
	Run:          runLobby,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/"+config.AppDir+"/scores.db", "Path to profile database")
	rootCmd.PersistentFlags().StringVar(&flagPlayer, "player", storage.LocalOwner, "Profile name for local play")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Do not ring the terminal bell")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(skinsCmd)
	rootCmd.AddCommand(profileCmd)
}

// newLogger returns a stderr logger at the configured level.
func newLogger(prefix string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if lvl, err := log.ParseLevel(flagLogLevel); err == nil {
		logger.SetLevel(lvl)
	} else {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
	}
	return logger
}

// sessionLogger returns a logger for full-screen sessions. Writing to
// stderr would tear the alternate screen, so it appends to a file in the
// app directory. The returned close func is never nil.
func sessionLogger() (*log.Logger, func()) {
	home, err := os.UserHomeDir()
	if err != nil {
		return log.New(io.Discard), func() {}
	}
	dir := filepath.Join(home, config.AppDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return log.New(io.Discard), func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, "ascent.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return log.New(io.Discard), func() {}
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "ascent",
	})
	if lvl, err := log.ParseLevel(flagLogLevel); err == nil {
		logger.SetLevel(lvl)
	}
	return logger, func() { f.Close() }
}

// loadConfig loads the game config once up front so that a bad --config
// is reported before the terminal switches to the alternate screen.
func loadConfig() (config.AscentConfig, error) {
	cfg, err := config.LoadAscent(flagConfig)
	if err != nil {
		return cfg, err
	}
	ascent.SetConfigPath(flagConfig)
	return cfg, nil
}

// openStore opens the profile database, or exits when required is set.
// Optional stores degrade to nil with a warning.
func openStore(logger *log.Logger, required bool) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		if required {
			logger.Fatal("could not open database", "path", flagDBPath, "error", err)
		}
		logger.Warn("could not open database, progress will not be saved", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// runtimeConfig builds the runtime config from flags and the terminal size.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	cfg.Seed = flagSeed
	return cfg
}

// bell returns where coin and game-over cues ring, or nil when muted.
func bell() io.Writer {
	if flagMute {
		return nil
	}
	return os.Stdout
}

func runLobby(_ *cobra.Command, _ []string) {
	logger := newLogger("ascent")

	cfg, err := loadConfig()
	if err != nil {
		logger.Fatal("invalid config", "error", err)
	}

	store := openStore(logger, false)
	if store != nil {
		defer store.Close()
	}

	sessLog, closeLog := sessionLogger()
	defer closeLog()

	runErr := tui.RunSession(runtimeConfig(), tui.SessionOptions{
		GameID: ascent.GameID,
		Skins:  cfg.Skins,
		Store:  store,
		Owner:  flagPlayer,
		Logger: sessLog,
		Bell:   bell(),
	})
	if runErr != nil {
		logger.Error("session failed", "error", runErr)
		os.Exit(1)
	}
}
