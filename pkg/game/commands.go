package game

import (
	"github.com/cbodonnell/simon/pkg/game/types"
)

// Commands are queued from any goroutine with Session.Enqueue and applied
// by the control goroutine on its next tick, in arrival order.

// NewGameCommand replaces the live game.
type NewGameCommand struct {
	PlayerName string
	Difficulty types.Difficulty
}

// GuessCommand submits a color at the session's current cursor.
type GuessCommand struct {
	Color types.Color
}

// SetDifficultyCommand changes the difficulty for the next playback.
type SetDifficultyCommand struct {
	Difficulty types.Difficulty
}

// ShutdownCommand stops the session loop.
type ShutdownCommand struct{}
