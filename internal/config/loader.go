package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file name searched for in the config directories.
const FileName = "flapgate.yaml"

// Load loads the Flapgate configuration.
// Search order: customPath -> ~/.flapgate/configs/flapgate.yaml -> ./configs/flapgate.yaml -> embedded default
// A custom path that cannot be read or parsed is an error; the other locations
// are skipped silently.
func Load(customPath string) (FlapgateConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return FlapgateConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return FlapgateConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{userConfigPath(FileName), filepath.Join("configs", FileName)}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse(defaultFlapgateYAML)
	if err != nil {
		return DefaultFlapgateConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the built-in defaults, so a partial file only
// overrides what it names, and sanitizes the result.
func Parse(data []byte) (FlapgateConfig, error) {
	cfg := DefaultFlapgateConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return FlapgateConfig{}, err
	}
	cfg.Sanitize()
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".flapgate", "configs", filename)
}
