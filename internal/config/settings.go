package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/brick-arcade/internal/core"
)

// DefaultVolume is the master volume used when no settings file exists.
const DefaultVolume = 0.7

// Settings are the user choices that survive restarts.
type Settings struct {
	Difficulty   core.Difficulty `yaml:"difficulty"`
	MasterVolume float64         `yaml:"master_volume"`
}

// DefaultSettings returns normal difficulty at the default volume.
func DefaultSettings() Settings {
	return Settings{
		Difficulty:   core.DifficultyNormal,
		MasterVolume: DefaultVolume,
	}
}

// SetVolume stores v clamped to [0, 1].
func (s *Settings) SetVolume(v float64) {
	s.MasterVolume = core.Clamp(v, 0, 1)
}

// DefaultSettingsPath returns ~/.arcade/bricks/settings.yaml.
func DefaultSettingsPath() string {
	return userConfigPath("settings.yaml")
}

// LoadSettings reads settings from path. A missing file yields the
// defaults without an error. Out-of-range volume is clamped and unknown
// difficulty names fall back to normal.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()

	path, err := ExpandHome(path)
	if err != nil {
		return s, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("config: failed to read settings %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &s); err != nil {
		return DefaultSettings(), fmt.Errorf("config: failed to parse settings %s: %w", path, err)
	}
	s.SetVolume(s.MasterVolume)
	return s, nil
}

// SaveSettings writes settings to path, creating parent directories.
func SaveSettings(path string, s Settings) error {
	path, err := ExpandHome(path)
	if err != nil {
		return err
	}
	s.SetVolume(s.MasterVolume)

	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("config: failed to encode settings: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: cannot create directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("config: failed to write settings %s: %w", path, err)
	}
	return nil
}
