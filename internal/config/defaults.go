package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: BoardConfig{
			Width:  1000,
			Height: 600,
			Cell:   20,
		},
		Speed: SpeedConfig{
			Base: 10,
			Step: 2,
		},
		Timing: TimingConfig{
			LevelInterval:   20,
			PowerUpLifetime: 7,
		},
		Scoring: ScoringConfig{
			FoodPoints:    10,
			FoodGrowth:    1,
			PowerUpPoints: 50,
			PowerUpGrowth: 3,
			PowerUpChance: 0.2,
		},
		Obstacles: ObstacleConfig{
			Initial: 3,
		},
		Sounds: SoundConfig{
			Dir:      ".",
			Eat:      []string{"eat.mp3", "eat2.mp3", "eat3.mp3"},
			GameOver: "gameover.wav",
			Music:    "bgmn.mp3",
		},
		Storage: StorageConfig{
			HighScoreFile: "highscore.json",
			HistoryDB:     "~/.snake/history.db",
		},
		Palette: PaletteConfig{
			Levels: [][3]uint8{
				{50, 213, 153},
				{40, 190, 140},
				{30, 160, 120},
				{20, 130, 100},
				{10, 100, 80},
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultSnakeYAML
}
