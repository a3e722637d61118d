package scenes

import (
	"fmt"
	"time"

	"github.com/cbodonnell/simon/client/input"
	"github.com/cbodonnell/simon/client/objects"
	"github.com/cbodonnell/simon/pkg/clock"
	"github.com/cbodonnell/simon/pkg/game"
	"github.com/cbodonnell/simon/pkg/game/constants"
	gametypes "github.com/cbodonnell/simon/pkg/game/types"
	"github.com/cbodonnell/simon/pkg/log"
)

// BoardScene is the play scene: four buttons and the score panel.
type BoardScene struct {
	*BaseScene

	session *game.Session
	clock   clock.TimeProvider
	tones   TonePlayer
	board   *objects.BoardObject
	status  *objects.StatusObject

	pressed      gametypes.Color
	pressedUntil time.Time
}

// TonePlayer sounds the button the player pressed.
type TonePlayer interface {
	Play(c gametypes.Color)
}

type BoardSceneOptions struct {
	Session      *game.Session
	Clock        clock.TimeProvider
	Tones        TonePlayer
	ScreenWidth  int
	ScreenHeight int
}

var _ Scene = &BoardScene{}

func NewBoardScene(opts BoardSceneOptions) (*BoardScene, error) {
	if opts.Session == nil {
		return nil, fmt.Errorf("board scene requires a session")
	}
	s := &BoardScene{
		session: opts.Session,
		clock:   opts.Clock,
		tones:   opts.Tones,
	}
	if s.clock == nil {
		s.clock = clock.NewRealTimeProvider()
	}

	root := objects.NewBaseObject("board-root", nil)
	s.board = objects.NewBoardObject("board", opts.ScreenWidth, opts.ScreenHeight, s.isLit)
	s.status = objects.NewStatusObject("status", s.session.Game)
	root.AddChild(s.board)
	root.AddChild(s.status)
	s.BaseScene = NewBaseScene(root)

	return s, nil
}

func (s *BoardScene) Update() error {
	for _, point := range input.JustPressedPoints() {
		if c, ok := s.board.ButtonAt(point[0], point[1]); ok {
			s.press(c)
		}
	}
	for _, c := range input.JustPressedColors() {
		s.press(c)
	}
	s.status.SetPrompt(s.prompt())
	return s.BaseScene.Update()
}

// press lights the button and hands a guess to the session while it is listening.
func (s *BoardScene) press(c gametypes.Color) {
	current := s.session.Game()
	if current == nil || current.State != gametypes.RoundStateListening {
		return
	}
	s.pressed = c
	s.pressedUntil = s.clock.Now().Add(constants.FlashDuration)
	if s.tones != nil {
		s.tones.Play(c)
	}
	if err := s.session.Enqueue(&game.GuessCommand{Color: c}); err != nil {
		log.Error("Failed to enqueue guess: %v", err)
	}
}

func (s *BoardScene) isLit(c gametypes.Color) bool {
	if c == s.pressed && s.clock.Now().Before(s.pressedUntil) {
		return true
	}
	index, ok := s.session.Flash().Index()
	if !ok {
		return false
	}
	current := s.session.Game()
	if current == nil || index >= current.Stage.Len() {
		return false
	}
	return current.Stage.At(index) == c
}

func (s *BoardScene) prompt() string {
	current := s.session.Game()
	if current == nil {
		return ""
	}
	switch current.State {
	case gametypes.RoundStatePlayback:
		return "Watch..."
	case gametypes.RoundStateListening:
		return fmt.Sprintf("Your turn: %d/%d", s.session.Cursor(), current.Stage.Len())
	default:
		return ""
	}
}
