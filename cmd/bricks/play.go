package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/brick-arcade/internal/core"
	"github.com/vovakirdan/brick-arcade/internal/platform/desktop"
	"github.com/vovakirdan/brick-arcade/internal/platform/tui"
	"github.com/vovakirdan/brick-arcade/internal/registry"
	"github.com/vovakirdan/brick-arcade/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagWindow     bool
)

var playCmd = &cobra.Command{
	Use:   "play <mode>",
	Short: "Play a mode",
	Long: `Start playing the specified mode.

Controls:
  A/D, Left/Right - Move paddle (classic)
  Mouse           - Aim cannon, hold left button to fire (reborn)
  1/2/3           - Choose shot: normal, explosive, pierce (reborn)
  Space           - Launch ball / fire
  P/Esc           - Pause
  Enter           - Resume
  R               - Restart
  B               - Back to menu
  Q/Ctrl+C        - Quit

Difficulty defaults to the saved setting (see 'bricks settings').

Examples:
  bricks play classic
  bricks play reborn --difficulty hard
  bricks play classic --window
  bricks play classic --config ./my-classic.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom mode layout YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty: easy, normal, hard (default: saved setting)")
	playCmd.Flags().BoolVar(&flagWindow, "window", false, "Play in a desktop window instead of the terminal")
}

// configLoader is implemented by modes that read a YAML layout.
type configLoader interface {
	LoadConfig(path string) error
}

func runPlay(_ *cobra.Command, args []string) {
	modeID := args[0]

	if !registry.Exists(modeID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", modeID)
		fmt.Fprintln(os.Stderr, "Run 'bricks list' to see available modes.")
		os.Exit(1)
	}

	logger := newLogger(!flagWindow)
	settings := loadSettings(logger)

	difficulty := settings.Difficulty
	if flagDifficulty != "" {
		d, err := core.ParseDifficulty(flagDifficulty)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		difficulty = d
	}

	cfg := runtimeConfig(difficulty)

	game, err := registry.Create(modeID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating mode: %v\n", err)
		os.Exit(1)
	}
	if l, ok := game.(configLoader); ok {
		if err := l.LoadConfig(flagConfig); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
		}
	}

	store := openStore(logger)

	var backToMenu bool
	if flagWindow {
		backToMenu, err = desktop.Run(game, store, logger, cfg)
	} else {
		var outcome tui.Outcome
		outcome, err = tui.Run(game, store, logger, cfg)
		backToMenu = outcome.BackToMenu
	}

	if err != nil {
		if store != nil {
			store.Close()
		}
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}

	if backToMenu {
		menuLoop(store, logger, settings, cfg)
	}

	if store != nil {
		store.Close()
	}
}

// runtimeConfig sizes the config to the terminal.
func runtimeConfig(d core.Difficulty) core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:    width,
		ScreenH:    height,
		TickRate:   flagFPS,
		Seed:       time.Now().UnixNano(),
		Difficulty: d,
	}
}

// openStore opens the score database. Play continues without history
// when it cannot be opened.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("score history disabled", "error", err)
		return nil
	}
	return store
}
