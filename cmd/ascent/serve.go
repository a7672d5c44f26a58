package main

import (
	"net"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-ascent/internal/games/ascent"
	"github.com/vovakirdan/neon-ascent/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Neon Ascent SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own lobby. The SSH user name is the profile:
wallet, skins and runs are kept per user in the server's database, and the
high score table is shared by everyone.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.neon-ascent/host_key

Examples:
  ascent serve                           # Listen on :23234 with auto-generated key
  ascent serve --ssh :2222               # Listen on port 2222
  ascent serve --host-key ./my_host_key  # Use specific host key
  ascent serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	logger := newLogger("ascent-ssh")

	gameCfg, err := loadConfig()
	if err != nil {
		logger.Fatal("invalid config", "error", err)
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.GameID = ascent.GameID
	cfg.Skins = gameCfg.Skins
	cfg.TickRate = flagFPS

	server, err := tui.NewSSHServer(cfg, logger)
	if err != nil {
		logger.Fatal("could not create server", "error", err)
	}

	logger.Info("connect with ssh", "command", "ssh localhost -p "+portOf(cfg.Address))

	if err := server.ListenAndServe(); err != nil {
		logger.Fatal("server stopped", "error", err)
	}
}

// portOf returns the port part of a listen address.
func portOf(addr string) string {
	if _, port, err := net.SplitHostPort(addr); err == nil {
		return port
	}
	return addr
}
