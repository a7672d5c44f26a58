package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-ascent/internal/games/ascent"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show wallet, skins and statistics",
	Long: `Show the profile of --player: coin wallet, equipped and unlocked
skins, and run statistics.

Examples:
  ascent profile
  ascent profile --player alice`,
	Args: cobra.NoArgs,
	Run:  runProfile,
}

func runProfile(_ *cobra.Command, _ []string) {
	logger := newLogger("ascent")

	store := openStore(logger, true)
	defer store.Close()

	p, err := store.Profile(flagPlayer)
	if err != nil {
		logger.Fatal("could not load profile", "error", err)
	}
	stats, err := store.Stats(ascent.GameID, flagPlayer)
	if err != nil {
		logger.Fatal("could not load stats", "error", err)
	}

	active := p.ActiveSkin
	if active == "" {
		active = "(default)"
	}
	unlocked := strings.Join(p.Unlocked, ", ")
	if unlocked == "" {
		unlocked = "(none)"
	}

	fmt.Printf("Profile - %s\n", flagPlayer)
	fmt.Println()
	fmt.Printf("  Wallet:        %d coins\n", p.Coins)
	fmt.Printf("  Skin:          %s\n", active)
	fmt.Printf("  Unlocked:      %s\n", unlocked)
	fmt.Println()
	fmt.Printf("  Runs:          %d\n", stats.GamesCount)
	fmt.Printf("  Best height:   %dm\n", stats.HighScore)
	fmt.Printf("  Average:       %.0fm\n", stats.AvgScore)
	fmt.Printf("  Coins earned:  %d\n", stats.TotalCoins)
	if !stats.LastPlayed.IsZero() {
		fmt.Printf("  Last played:   %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
	}
}
