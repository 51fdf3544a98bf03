package window

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// keyActions maps raylib key codes to game actions.
var keyActions = map[int32]core.Action{
	rl.KeyUp:    core.ActionUp,
	rl.KeyDown:  core.ActionDown,
	rl.KeyLeft:  core.ActionLeft,
	rl.KeyRight: core.ActionRight,
	rl.KeyW:     core.ActionUp,
	rl.KeyS:     core.ActionDown,
	rl.KeyA:     core.ActionLeft,
	rl.KeyD:     core.ActionRight,
	rl.KeyC:     core.ActionConfirm,
	rl.KeyEnter: core.ActionConfirm,
	rl.KeyP:     core.ActionPause,
	rl.KeyQ:     core.ActionQuit,
}

// pollInput drains the keys pressed since the previous frame, in order.
func pollInput() core.InputFrame {
	in := core.NewInputFrame()
	for k := rl.GetKeyPressed(); k != 0; k = rl.GetKeyPressed() {
		if a, ok := keyActions[k]; ok {
			in.Set(a)
		}
	}
	return in
}

// Run opens a window sized to the board and plays until the player quits
// or closes the window. Each frame is one game tick; the frame rate
// follows the game's tick rate.
func Run(game *snake.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	board := game.Board()
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(board.Width), int32(board.Height), game.Title())
	defer rl.CloseWindow()

	// Escape is pause in the terminal; here it must not close the window
	rl.SetExitKey(rl.KeyNull)

	canvas := NewCanvas(board.Width, board.Height)
	game.Reset(cfg)

	rate := game.TickRate()
	rl.SetTargetFPS(int32(rate))
	logger.Debug("window opened", "width", board.Width, "height", board.Height, "seed", cfg.Seed)

	for !rl.WindowShouldClose() {
		result := game.Step(pollInput())
		if result.Quit {
			break
		}

		if r := game.TickRate(); r != rate {
			rate = r
			rl.SetTargetFPS(int32(rate))
			logger.Debug("frame rate changed", "fps", rate)
		}

		rl.BeginDrawing()
		game.Render(canvas)
		rl.EndDrawing()
	}

	return nil
}
