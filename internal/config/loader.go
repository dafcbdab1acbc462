package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// load resolves a game's YAML config using the standard search order:
// customPath -> ~/.chase-arcade/configs/<name>.yaml -> ./configs/<name>.yaml
// -> embedded default. A custom path that fails to read or parse is an error;
// missing files on the fallback path are not.
func load(gameID, customPath string, out any) error {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return nil
	}

	filename := gameID + ".yaml"

	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, out); err == nil {
				return nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", filename)); err == nil {
		if err := yaml.Unmarshal(data, out); err == nil {
			return nil
		}
	}

	if embedded := GetDefaultYAML(gameID); embedded != nil {
		if err := yaml.Unmarshal(embedded, out); err == nil {
			return nil
		}
	}

	return fmt.Errorf("no usable config found for %s", gameID)
}

// LoadChase loads the Fruit Chase configuration.
func LoadChase(customPath string) (ChaseConfig, error) {
	cfg := DefaultChaseConfig()
	if err := load("chase", customPath, &cfg); err != nil {
		if customPath != "" {
			return cfg, err
		}
		return DefaultChaseConfig(), nil
	}
	return cfg, nil
}

// LoadMove loads the movement sandbox configuration.
func LoadMove(customPath string) (MoveConfig, error) {
	cfg := DefaultMoveConfig()
	if err := load("move", customPath, &cfg); err != nil {
		if customPath != "" {
			return cfg, err
		}
		return DefaultMoveConfig(), nil
	}
	return cfg, nil
}

// LoadDuo loads the two-player tag configuration.
func LoadDuo(customPath string) (DuoConfig, error) {
	cfg := DefaultDuoConfig()
	if err := load("duo", customPath, &cfg); err != nil {
		if customPath != "" {
			return cfg, err
		}
		return DefaultDuoConfig(), nil
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is
// unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".chase-arcade", "configs", filename)
}

// ApplyChasePreset modifies the chase config based on a difficulty preset.
func ApplyChasePreset(cfg *ChaseConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)

	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Predators.Count = 1
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Predators.Count = 3
	}
}
