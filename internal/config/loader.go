package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadMahjong loads the mahjong configuration.
// Search order: customPath -> ~/.arcade/configs/mahjong.yaml ->
// ./configs/mahjong.yaml -> embedded default -> hardcoded default.
// Only an explicit customPath can fail; broken files elsewhere are skipped.
func LoadMahjong(customPath string) (MahjongConfig, error) {
	if customPath != "" {
		cfg, err := readMahjong(customPath)
		if err != nil {
			return cfg, err
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("%w (in %s)", err, customPath)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath("mahjong.yaml"); userCfgPath != "" {
		if cfg, err := readMahjong(userCfgPath); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	if cfg, err := readMahjong(filepath.Join("configs", "mahjong.yaml")); err == nil && cfg.Validate() == nil {
		return cfg, nil
	}

	cfg, err := ParseMahjong(defaultMahjongYAML)
	if err != nil {
		return DefaultMahjongConfig(), nil
	}
	return cfg, nil
}

// ParseMahjong decodes a mahjong config document and fills unset values.
func ParseMahjong(data []byte) (MahjongConfig, error) {
	var cfg MahjongConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: cannot parse mahjong config: %w", err)
	}
	applyDefaults(&cfg)
	return cfg, nil
}

func readMahjong(path string) (MahjongConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return MahjongConfig{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	var cfg MahjongConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	applyDefaults(&cfg)
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
