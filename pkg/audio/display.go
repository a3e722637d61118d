package audio

import (
	"github.com/cbodonnell/simon/pkg/game/types"
)

// Player is anything that can sound a color.
type Player interface {
	Play(c types.Color)
}

// ToneDisplay sounds each playback flash. Use it next to a visual
// display in a game.MultiDisplay.
type ToneDisplay struct {
	player Player
}

func NewToneDisplay(player Player) *ToneDisplay {
	return &ToneDisplay{player: player}
}

func (d *ToneDisplay) OnFlash(index int, color types.Color) {
	d.player.Play(color)
}

func (d *ToneDisplay) OnInputEnabled()      {}
func (d *ToneDisplay) OnLevelChanged(int)   {}
func (d *ToneDisplay) OnGameOver(int, bool) {}
