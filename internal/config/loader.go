package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

const fileName = "duel.yaml"

// Load loads the duel configuration and validates it.
// Search order: customPath -> ~/.duel/configs/duel.yaml -> ./configs/duel.yaml -> embedded default
//
// A custom path ending in .toml is read as TOML. Fields missing from a file
// keep their default values.
func Load(customPath string) (DuelConfig, error) {
	cfg, err := find(customPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", cfg.Source, err)
	}
	return cfg, nil
}

func find(customPath string) (DuelConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DuelConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := decode(customPath, data)
		if err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(fileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := decode(userCfgPath, data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	local := filepath.Join("configs", fileName)
	if data, err := os.ReadFile(local); err == nil {
		if cfg, err := decode(local, data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := decode("embedded", defaultDuelYAML)
	if err != nil {
		return DefaultDuelConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// decode parses data on top of the hardcoded defaults.
func decode(source string, data []byte) (DuelConfig, error) {
	cfg := DefaultDuelConfig()
	// Lists are replaced wholesale rather than merged element by element.
	cfg.Weapons = nil
	cfg.Players = nil

	var err error
	if strings.EqualFold(filepath.Ext(source), ".toml") {
		_, err = toml.Decode(string(data), &cfg)
	} else {
		err = yaml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return cfg, err
	}

	defaults := DefaultDuelConfig()
	if len(cfg.Weapons) == 0 {
		cfg.Weapons = defaults.Weapons
		if len(cfg.Players) == 0 {
			cfg.Players = defaults.Players
		}
	}
	cfg.Source = source
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".duel", "configs", filename)
}
