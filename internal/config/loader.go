package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadClassic loads Classic mode configuration.
// Search order: customPath -> ~/.arcade/bricks/classic.yaml -> ./configs/classic.yaml -> embedded default
func LoadClassic(customPath string) (ClassicConfig, error) {
	return load(customPath, "classic.yaml", defaultClassicYAML, DefaultClassicConfig())
}

// LoadReborn loads Reborn mode configuration.
// Search order: customPath -> ~/.arcade/bricks/reborn.yaml -> ./configs/reborn.yaml -> embedded default
func LoadReborn(customPath string) (RebornConfig, error) {
	return load(customPath, "reborn.yaml", defaultRebornYAML, DefaultRebornConfig())
}

// load decodes the first readable source on top of the hardcoded defaults,
// so partial files only override the keys they set. Only an explicit
// customPath is allowed to fail; the other sources fall through silently.
func load[T any](customPath, filename string, embedded []byte, defaults T) (T, error) {
	if customPath != "" {
		cfg := defaults
		data, err := os.ReadFile(customPath)
		if err != nil {
			return defaults, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return defaults, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{
		userConfigPath(filename),
		filepath.Join("configs", filename),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg := defaults
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	cfg := defaults
	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return defaults, nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// UserDir returns ~/.arcade/bricks, or empty if home is unavailable.
func UserDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "bricks")
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	dir := UserDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, filename)
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
