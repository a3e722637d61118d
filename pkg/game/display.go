package game

import (
	"github.com/cbodonnell/simon/pkg/game/types"
)

// DisplayAdapter renders what the session decides.
// All methods are called from the session's control goroutine.
type DisplayAdapter interface {
	// OnFlash highlights one element of the sequence during playback.
	OnFlash(index int, color types.Color)
	// OnInputEnabled is called once playback finished and guesses are accepted.
	OnInputEnabled()
	// OnLevelChanged is called when a game starts and after every level-up.
	OnLevelChanged(levelNumber int)
	// OnGameOver is called once when a guess breaks the chain.
	OnGameOver(finalScore int, isNewHighScore bool)
}

// NopDisplay ignores every notification.
type NopDisplay struct{}

func (NopDisplay) OnFlash(int, types.Color) {}
func (NopDisplay) OnInputEnabled()          {}
func (NopDisplay) OnLevelChanged(int)       {}
func (NopDisplay) OnGameOver(int, bool)     {}

// MultiDisplay fans notifications out to several adapters in order.
type MultiDisplay []DisplayAdapter

func (m MultiDisplay) OnFlash(index int, color types.Color) {
	for _, d := range m {
		d.OnFlash(index, color)
	}
}

func (m MultiDisplay) OnInputEnabled() {
	for _, d := range m {
		d.OnInputEnabled()
	}
}

func (m MultiDisplay) OnLevelChanged(levelNumber int) {
	for _, d := range m {
		d.OnLevelChanged(levelNumber)
	}
}

func (m MultiDisplay) OnGameOver(finalScore int, isNewHighScore bool) {
	for _, d := range m {
		d.OnGameOver(finalScore, isNewHighScore)
	}
}
