// Package config provides YAML-based game configuration loading and
// difficulty presets for the snake game.
package config

import "time"

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	Board     BoardConfig    `yaml:"board"`
	Speed     SpeedConfig    `yaml:"speed"`
	Timing    TimingConfig   `yaml:"timing"`
	Scoring   ScoringConfig  `yaml:"scoring"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
	Sounds    SoundConfig    `yaml:"sounds"`
	Storage   StorageConfig  `yaml:"storage"`
	Palette   PaletteConfig  `yaml:"palette"`
}

// BoardConfig defines the logical canvas and its grid.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Cell   int `yaml:"cell"`
}

// Cols returns the number of grid columns.
func (b BoardConfig) Cols() int {
	if b.Cell <= 0 {
		return 0
	}
	return b.Width / b.Cell
}

// Rows returns the number of grid rows.
func (b BoardConfig) Rows() int {
	if b.Cell <= 0 {
		return 0
	}
	return b.Height / b.Cell
}

// SpeedConfig defines the tick rate: Base + Step*(level-1) ticks per second.
type SpeedConfig struct {
	Base int `yaml:"base"`
	Step int `yaml:"step"`
}

// TimingConfig holds the wall-clock timers, in seconds.
type TimingConfig struct {
	LevelInterval   float64 `yaml:"level_interval"`
	PowerUpLifetime float64 `yaml:"power_up_lifetime"`
}

// LevelDuration returns LevelInterval as a time.Duration.
func (t TimingConfig) LevelDuration() time.Duration {
	return seconds(t.LevelInterval)
}

// PowerUpDuration returns PowerUpLifetime as a time.Duration.
func (t TimingConfig) PowerUpDuration() time.Duration {
	return seconds(t.PowerUpLifetime)
}

// ScoringConfig defines rewards for eating.
type ScoringConfig struct {
	FoodPoints    int     `yaml:"food_points"`
	FoodGrowth    int     `yaml:"food_growth"`
	PowerUpPoints int     `yaml:"power_up_points"`
	PowerUpGrowth int     `yaml:"power_up_growth"`
	PowerUpChance float64 `yaml:"power_up_chance"` // Probability per eaten food
}

// ObstacleConfig defines obstacle placement.
type ObstacleConfig struct {
	Initial int `yaml:"initial"` // Obstacles placed at game start; one more per level
}

// SoundConfig names the sound assets. Missing files are skipped.
type SoundConfig struct {
	Dir      string   `yaml:"dir"`
	Eat      []string `yaml:"eat"` // Played round-robin on each eaten food
	GameOver string   `yaml:"game_over"`
	Music    string   `yaml:"music"` // Looped while playing
}

// All returns every configured asset name.
func (s SoundConfig) All() []string {
	names := make([]string, 0, len(s.Eat)+2)
	names = append(names, s.Eat...)
	if s.GameOver != "" {
		names = append(names, s.GameOver)
	}
	if s.Music != "" {
		names = append(names, s.Music)
	}
	return names
}

// StorageConfig defines where scores are kept.
type StorageConfig struct {
	HighScoreFile string `yaml:"high_score_file"`
	HistoryDB     string `yaml:"history_db"`
}

// PaletteConfig lists the background color per level as [r, g, b] triples.
// Levels past the end reuse the last entry.
type PaletteConfig struct {
	Levels [][3]uint8 `yaml:"levels"`
}

// TickRate returns the ticks per second at the given level.
func (c SnakeConfig) TickRate(level int) int {
	if level < 1 {
		level = 1
	}
	rate := c.Speed.Base + c.Speed.Step*(level-1)
	if rate < 1 {
		rate = 1
	}
	return rate
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// IsFixedPreset returns true if the preset disables speed progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
