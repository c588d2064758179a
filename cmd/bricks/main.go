// bricks is a brick breaker arcade with two modes, playable in the terminal,
// in a desktop window, or over SSH.
//
// Usage:
//
//	bricks                    - Start the menu (same as bricks menu)
//	bricks list               - List available modes
//	bricks play <mode>        - Play a mode directly
//	bricks menu               - Pick modes and settings interactively
//	bricks scores <mode>      - Show score history for a mode
//	bricks settings           - Show or change saved settings
//	bricks serve              - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--db <path>         - Set database path (default: ~/.arcade/bricks/scores.db)
//	--settings <path>   - Set settings file (default: ~/.arcade/bricks/settings.yaml)
//	--log-level <level> - debug, info, warn or error (default: info)
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/brick-arcade/internal/config"

	// Import modes to register them
	_ "github.com/vovakirdan/brick-arcade/internal/games/classic"
	_ "github.com/vovakirdan/brick-arcade/internal/games/reborn"
)

var (
	// Global flags
	flagFPS          int
	flagDBPath       string
	flagSettingsPath string
	flagLogLevel     string
	flagLogFile      string
)

// logFile is closed by rootCmd's PersistentPostRun.
var logFile *os.File

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bricks",
	Short: "Brick Arcade - break bricks in your terminal",
	Long: `Brick Arcade is a brick breaker with two modes:

  classic  - paddle and ball, clear the wall before you run out of lives
  reborn   - aim a cannon, pick a shot, stop the descending wall

Available commands:
  list      - Show all available modes
  play      - Play a mode directly
  menu      - Interactive menu (default)
  scores    - View score history
  settings  - Show or change difficulty and volume
  serve     - Start SSH server for remote play

Examples:
  bricks
  bricks play classic
  bricks play reborn --window
  bricks settings --difficulty hard
  bricks serve --ssh :2222`,
	Run: runMenu,
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		if logFile != nil {
			logFile.Close()
		}
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/bricks/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagSettingsPath, "settings", config.DefaultSettingsPath(), "Path to settings file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(serveCmd)
}

// newLogger builds the process logger from the global flags. Interactive
// commands own the terminal, so they log nowhere unless --log-file is set.
func newLogger(interactive bool) *log.Logger {
	var w io.Writer = os.Stderr
	if interactive {
		w = io.Discard
	}

	if flagLogFile != "" {
		path, err := config.ExpandHome(flagLogFile)
		if err == nil {
			logFile, err = os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		} else {
			w = logFile
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "bricks",
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// loadSettings reads the settings file, falling back to defaults with a
// warning when it cannot be read.
func loadSettings(logger *log.Logger) config.Settings {
	settings, err := config.LoadSettings(flagSettingsPath)
	if err != nil {
		logger.Warn("could not load settings, using defaults", "error", err)
	}
	logger.Debug("settings loaded", "difficulty", settings.Difficulty, "volume", settings.MasterVolume)
	return settings
}
