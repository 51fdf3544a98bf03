package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/audio"
	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/highscore"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// newLogger creates the application logger writing to w.
func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// openLogFile opens the log file for appending, creating its directory.
func openLogFile(path string) (*os.File, error) {
	path, err := config.ExpandHome(path)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}

// loadConfig loads the config, applies the difficulty preset and the
// path flags, and validates the result.
func loadConfig(logger *log.Logger) (config.SnakeConfig, error) {
	cfg, source, err := config.LoadSnake(flagConfig)
	if err != nil {
		return cfg, err
	}
	logger.Debug("config loaded", "source", source)

	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplySnakePreset(&cfg, preset)
	if config.IsFixedPreset(preset) {
		logger.Debug("speed progression disabled")
	}

	if flagDBPath != "" {
		cfg.Storage.HistoryDB = flagDBPath
	}
	if flagScoreFile != "" {
		cfg.Storage.HighScoreFile = flagScoreFile
	}
	if flagSounds != "" {
		cfg.Sounds.Dir = flagSounds
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// session holds a game and everything it was wired to.
type session struct {
	cfg     config.SnakeConfig
	game    *snake.Game
	runtime core.RuntimeConfig
	closers []func()
}

// newSession builds a game with sound, high score file and run history.
// Sound and history are optional: failures are logged and play goes on.
func newSession(logger *log.Logger) (*session, error) {
	cfg, err := loadConfig(logger)
	if err != nil {
		return nil, err
	}

	s := &session{cfg: cfg}
	deps := snake.Deps{
		Clock:  core.SystemClock{},
		Logger: logger,
	}

	if flagMute {
		deps.Sounds = audio.Silent{}
	} else {
		player := audio.Open(cfg.Sounds.Dir, cfg.Sounds.All(), logger)
		logger.Debug("sounds loaded", "dir", cfg.Sounds.Dir, "count", player.Loaded())
		deps.Sounds = player
		s.closers = append(s.closers, player.Close)
	}

	scoreFile, err := config.ExpandHome(cfg.Storage.HighScoreFile)
	if err != nil {
		return nil, err
	}
	deps.Scores = highscore.New(scoreFile)

	// Open run history
	if store, err := storage.Open(cfg.Storage.HistoryDB); err != nil {
		logger.Warn("could not open run history", "path", cfg.Storage.HistoryDB, "error", err)
	} else {
		deps.History = store
		s.closers = append(s.closers, func() {
			if err := store.Close(); err != nil {
				logger.Warn("could not close run history", "error", err)
			}
		})
	}

	s.game = snake.New(cfg, deps)
	s.runtime = core.RuntimeConfig{
		ScreenW:  cfg.Board.Width,
		ScreenH:  cfg.Board.Height,
		TickRate: cfg.TickRate(1),
		Seed:     flagSeed,
	}
	return s, nil
}

// Close releases the session resources in reverse order.
func (s *session) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
}
