package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-ascent/internal/storage"
)

var skinsCmd = &cobra.Command{
	Use:   "skins",
	Short: "List, buy and equip skins",
	Long: `Skins change the colour of the ball and its trail. Coins collected
while climbing are added to your wallet and buy skins.

Examples:
  ascent skins
  ascent skins buy lime
  ascent skins equip cyan
  ascent skins --player alice`,
	Args: cobra.NoArgs,
	Run:  runSkinsList,
}

var skinsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List skins with prices and ownership",
	Args:  cobra.NoArgs,
	Run:   runSkinsList,
}

var skinsBuyCmd = &cobra.Command{
	Use:   "buy <skin>",
	Short: "Unlock a skin with coins and equip it",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		runSkinChange(args[0], true)
	},
}

var skinsEquipCmd = &cobra.Command{
	Use:   "equip <skin>",
	Short: "Equip an unlocked skin",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		runSkinChange(args[0], false)
	},
}

func init() {
	skinsCmd.AddCommand(skinsListCmd)
	skinsCmd.AddCommand(skinsBuyCmd)
	skinsCmd.AddCommand(skinsEquipCmd)
}

func runSkinsList(_ *cobra.Command, _ []string) {
	logger := newLogger("ascent")

	cfg, err := loadConfig()
	if err != nil {
		logger.Fatal("invalid config", "error", err)
	}

	store := openStore(logger, true)
	defer store.Close()

	p, err := store.Profile(flagPlayer)
	if err != nil {
		logger.Fatal("could not load profile", "error", err)
	}

	fmt.Printf("Skins - %s (wallet: %d coins)\n", flagPlayer, p.Coins)
	fmt.Println()
	fmt.Printf("  %-10s  %-10s  %-8s  %s\n", "ID", "Name", "Price", "Status")
	fmt.Printf("  %-10s  %-10s  %-8s  %s\n", "--", "----", "-----", "------")

	for _, s := range cfg.Skins {
		status := "locked"
		switch {
		case s.ID == p.ActiveSkin || (p.ActiveSkin == "" && s.ID == cfg.DefaultSkin().ID):
			status = "equipped"
		case s.Price == 0 || p.HasSkin(s.ID):
			status = "owned"
		}
		fmt.Printf("  %-10s  %-10s  %-8d  %s\n", s.ID, s.Name, s.Price, status)
	}
}

// runSkinChange buys (when buy is set) and equips a skin.
func runSkinChange(id string, buy bool) {
	logger := newLogger("ascent")

	cfg, err := loadConfig()
	if err != nil {
		logger.Fatal("invalid config", "error", err)
	}
	skin, ok := cfg.SkinByID(id)
	if !ok {
		logger.Fatal("unknown skin", "skin", id)
	}

	store := openStore(logger, true)
	defer store.Close()

	if buy {
		err := store.UnlockSkin(flagPlayer, skin.ID, skin.Price)
		if errors.Is(err, storage.ErrInsufficientCoins) {
			p, _ := store.Profile(flagPlayer)
			logger.Error("not enough coins", "skin", skin.ID, "price", skin.Price, "wallet", p.Coins)
			return
		}
		if err != nil {
			logger.Fatal("purchase failed", "error", err)
		}
	}

	err = store.EquipSkin(flagPlayer, skin.ID, skin.Price)
	if errors.Is(err, storage.ErrSkinLocked) {
		logger.Error("skin is locked, buy it first", "skin", skin.ID, "price", skin.Price)
		return
	}
	if err != nil {
		logger.Fatal("equip failed", "error", err)
	}

	p, err := store.Profile(flagPlayer)
	if err != nil {
		logger.Fatal("could not load profile", "error", err)
	}
	logger.Info("skin equipped", "player", flagPlayer, "skin", skin.Name, "wallet", p.Coins)
}
