package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-ascent/internal/games/ascent"
	"github.com/vovakirdan/neon-ascent/internal/platform/tui"
	"github.com/vovakirdan/neon-ascent/internal/registry"
	"github.com/vovakirdan/neon-ascent/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresMine  bool
	flagScoresTUI   bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best runs recorded in the database.

Examples:
  ascent scores
  ascent scores --mine
  ascent scores --limit 25
  ascent scores --tui
  ascent scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresMine, "mine", false, "Only show runs of --player")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Open the interactive scoreboard")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded runs (wallets and skins are kept)")
}

func runScores(_ *cobra.Command, _ []string) {
	logger := newLogger("ascent")

	title, ok := registry.Title(ascent.GameID)
	if !ok {
		logger.Fatal("game not registered", "game", ascent.GameID)
	}

	store := openStore(logger, true)
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearRuns(ascent.GameID); err != nil {
			logger.Fatal("could not clear runs", "error", err)
		}
		logger.Info("runs cleared", "game", ascent.GameID)
		return
	}

	if flagScoresTUI {
		cfg := runtimeConfig()
		if err := tui.RunScoreboard(store, ascent.GameID, title, flagPlayer, cfg.ScreenW, cfg.ScreenH); err != nil {
			logger.Fatal("scoreboard failed", "error", err)
		}
		return
	}

	var (
		runs []storage.Run
		err  error
	)
	if flagScoresMine {
		runs, err = store.RecentRuns(flagPlayer, ascent.GameID, flagScoresLimit)
	} else {
		runs, err = store.TopRuns(ascent.GameID, flagScoresLimit)
	}
	if err != nil {
		logger.Fatal("could not load runs", "error", err)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'ascent play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-12s  %-8s  %-6s  %-10s  %s\n", "Rank", "Player", "Height", "Coins", "Skin", "Date")
	fmt.Printf("  %-4s  %-12s  %-8s  %-6s  %-10s  %s\n", "----", "------", "------", "-----", "----", "----")

	for i, r := range runs {
		fmt.Printf("  %-4d  %-12s  %-8s  %-6d  %-10s  %s\n",
			i+1, r.Owner, fmt.Sprintf("%dm", r.Score), r.Coins, r.SkinID, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	owner := ""
	if flagScoresMine {
		owner = flagPlayer
	}
	if best, err := store.HighScore(ascent.GameID, owner); err == nil {
		fmt.Println()
		fmt.Printf("Best: %dm\n", best)
	}
}
