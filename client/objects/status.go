package objects

import (
	"fmt"
	"image/color"

	"github.com/cbodonnell/simon/client/fonts"
	gametypes "github.com/cbodonnell/simon/pkg/game/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

// StatusObject shows the player, level, score and high score in the top left corner.
type StatusObject struct {
	*BaseObject

	game   func() *gametypes.Game
	prompt string
}

// NewStatusObject reads the game through snapshot on every frame.
func NewStatusObject(id string, snapshot func() *gametypes.Game) *StatusObject {
	return &StatusObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{ZIndex: 5}),
		game:       snapshot,
	}
}

// SetPrompt sets the hint shown under the scores.
func (o *StatusObject) SetPrompt(prompt string) {
	o.prompt = prompt
}

func (o *StatusObject) Draw(screen *ebiten.Image) {
	game := o.game()
	if game == nil {
		return
	}
	f := fonts.TTFSmallFont
	lines := []string{
		fmt.Sprintf("Player: %s", game.Player.Name),
		fmt.Sprintf("Level: %d  (%s)", game.Stage.LevelNumber, game.Difficulty),
		fmt.Sprintf("Points: %d", game.Player.CurrentScore),
		fmt.Sprintf("High score: %d", game.HighScore),
	}
	if o.prompt != "" {
		lines = append(lines, o.prompt)
	}
	lineHeight := f.Metrics().Height.Ceil()
	for i, line := range lines {
		text.Draw(screen, line, f, 8, lineHeight*(i+1), color.White)
	}
}
