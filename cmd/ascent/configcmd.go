package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/neon-ascent/internal/config"
	"github.com/vovakirdan/neon-ascent/internal/games/ascent"
)

var flagEffective bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the game configuration as YAML",
	Long: `Print the shipped default configuration, ready to copy to
~/.neon-ascent/configs/ascent.yaml and edit. With --effective, print the
configuration that would be used after applying the search order and
--config.

Examples:
  ascent config > ~/.neon-ascent/configs/ascent.yaml
  ascent config --effective --config ./my-ascent.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagEffective, "effective", false, "Print the resolved configuration instead of the default")
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) {
	logger := newLogger("ascent")

	if !flagEffective {
		//nolint:errcheck // Best-effort write to stdout
		os.Stdout.Write(config.GetDefaultYAML(ascent.GameID))
		return
	}

	cfg, err := loadConfig()
	if err != nil {
		logger.Fatal("invalid config", "error", err)
	}
	out, err := yaml.Marshal(cfg)
	if err != nil {
		logger.Fatal("could not encode config", "error", err)
	}
	fmt.Print(string(out))
}
