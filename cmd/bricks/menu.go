package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/brick-arcade/internal/config"
	"github.com/vovakirdan/brick-arcade/internal/core"
	"github.com/vovakirdan/brick-arcade/internal/platform/tui"
	"github.com/vovakirdan/brick-arcade/internal/registry"
	"github.com/vovakirdan/brick-arcade/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with the main menu",
	Long: `Start the arcade in interactive menu mode.

Pick Classic or Reborn, change settings, or browse high scores.
Going back from a game returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - High scores
  Esc/Q        - Quit

Examples:
  bricks menu
  bricks menu --fps 30
  bricks menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	logger := newLogger(true)
	settings := loadSettings(logger)
	store := openStore(logger)

	menuLoop(store, logger, settings, runtimeConfig(settings.Difficulty))

	if store != nil {
		store.Close()
	}
}

// menuLoop runs the menu until the player quits, dispatching to modes,
// the settings screen, and the scoreboard.
func menuLoop(store *storage.Store, logger *log.Logger, settings config.Settings, cfg core.RuntimeConfig) {
	for {
		cfg.Difficulty = settings.Difficulty

		menuResult, err := tui.RunMenu(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		cfg = menuResult.Config
		if menuResult.Quit {
			return
		}

		switch menuResult.Entry {
		case tui.EntrySettings:
			res, err := tui.RunSettings(settings, flagSettingsPath, logger, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return
			}
			if res.Quit {
				return
			}
			settings = res.Settings

		case tui.EntryScoreboard:
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			if !goBack {
				return
			}

		case tui.EntryGame:
			game, err := registry.Create(menuResult.GameID)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error creating mode: %v\n", err)
				continue
			}

			cfg.Seed = time.Now().UnixNano()
			outcome, err := tui.Run(game, store, logger, cfg)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
				continue
			}
			if !outcome.BackToMenu {
				return
			}
		}
	}
}
