package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brick-arcade/internal/config"
	"github.com/vovakirdan/brick-arcade/internal/core"
)

var (
	flagSetDifficulty string
	flagSetVolume     float64
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change saved settings",
	Long: `Print the saved difficulty and master volume, or change them.

Without flags the current values are printed. The menu's Settings
screen edits the same file.

Examples:
  bricks settings
  bricks settings --difficulty easy
  bricks settings --volume 0.5`,
	Args: cobra.NoArgs,
	Run:  runSettings,
}

func init() {
	settingsCmd.Flags().StringVar(&flagSetDifficulty, "difficulty", "", "Set difficulty: easy, normal, hard")
	settingsCmd.Flags().Float64Var(&flagSetVolume, "volume", -1, "Set master volume (0 to 1)")
}

func runSettings(cmd *cobra.Command, _ []string) {
	logger := newLogger(false)
	settings := loadSettings(logger)

	changed := false
	if cmd.Flags().Changed("difficulty") {
		d, err := core.ParseDifficulty(flagSetDifficulty)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		settings.Difficulty = d
		changed = true
	}
	if cmd.Flags().Changed("volume") {
		settings.SetVolume(flagSetVolume)
		changed = true
	}

	if changed {
		if err := config.SaveSettings(flagSettingsPath, settings); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving settings: %v\n", err)
			os.Exit(1)
		}
		logger.Info("settings saved", "path", flagSettingsPath)
	}

	fmt.Printf("Difficulty:    %s\n", settings.Difficulty.Title())
	fmt.Printf("Master volume: %.0f%%\n", settings.MasterVolume*100)
}
