package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Source names reported by LoadSnake.
const (
	SourceEmbedded = "embedded"
	SourceBuiltin  = "builtin"
)

// LoadSnake loads the snake configuration and reports where it came from.
// Search order: customPath -> ~/.snake/configs/snake.yaml -> ./configs/snake.yaml -> embedded default.
// Files are decoded over the defaults, so a file only needs the keys it changes.
func LoadSnake(customPath string) (SnakeConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return SnakeConfig{}, "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseSnake(data)
		if err != nil {
			return SnakeConfig{}, "", fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	// Try user config directory, then local configs directory
	candidates := []string{userConfigPath("snake.yaml"), filepath.Join("configs", "snake.yaml")}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parseSnake(data); err == nil {
			return cfg, path, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseSnake(defaultSnakeYAML)
	if err != nil {
		return DefaultSnakeConfig(), SourceBuiltin, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// parseSnake decodes YAML over the defaults and validates the result.
func parseSnake(data []byte) (SnakeConfig, error) {
	cfg := DefaultSnakeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SnakeConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return SnakeConfig{}, err
	}
	return cfg, nil
}

// Validate checks that the configuration describes a playable board.
func (c SnakeConfig) Validate() error {
	b := c.Board
	switch {
	case b.Cell <= 0:
		return fmt.Errorf("board.cell must be positive, got %d", b.Cell)
	case b.Width <= 0 || b.Height <= 0:
		return fmt.Errorf("board size must be positive, got %dx%d", b.Width, b.Height)
	case b.Width%b.Cell != 0 || b.Height%b.Cell != 0:
		return fmt.Errorf("board %dx%d is not a multiple of cell %d", b.Width, b.Height, b.Cell)
	case b.Cols()*b.Rows() < 2+c.Obstacles.Initial:
		return fmt.Errorf("board %dx%d is too small for %d obstacles", b.Cols(), b.Rows(), c.Obstacles.Initial)
	}
	if c.Speed.Base < 1 {
		return fmt.Errorf("speed.base must be at least 1, got %d", c.Speed.Base)
	}
	if c.Speed.Step < 0 {
		return fmt.Errorf("speed.step must not be negative, got %d", c.Speed.Step)
	}
	if c.Timing.LevelInterval <= 0 || c.Timing.PowerUpLifetime <= 0 {
		return fmt.Errorf("timing values must be positive")
	}
	if c.Scoring.PowerUpChance < 0 || c.Scoring.PowerUpChance > 1 {
		return fmt.Errorf("scoring.power_up_chance must be within [0, 1], got %g", c.Scoring.PowerUpChance)
	}
	if len(c.Palette.Levels) == 0 {
		return fmt.Errorf("palette.levels must not be empty")
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snake", "configs", filename)
}

// ParseDifficulty validates a preset name. The empty string is allowed
// and leaves the configuration untouched.
func ParseDifficulty(name string) (DifficultyPreset, error) {
	preset := DifficultyPreset(strings.ToLower(strings.TrimSpace(name)))
	switch preset {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return preset, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// ApplySnakePreset modifies the config based on a difficulty preset.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Speed.Base = 8
		cfg.Speed.Step = 1
	case DifficultyHard:
		cfg.Speed.Base = 14
		cfg.Speed.Step = 3
	case DifficultyFixed:
		cfg.Speed.Step = 0
	}
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
