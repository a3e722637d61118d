package scenes

import (
	"fmt"
	"image/color"

	"github.com/cbodonnell/simon/client/fonts"
	"github.com/cbodonnell/simon/client/objects"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
)

type GameOverScene struct {
	*BaseScene

	ui        *ebitenui.UI
	onNewGame func()
	onExit    func()
}

type GameOverSceneOptions struct {
	FinalScore     int
	IsNewHighScore bool
	// OnNewGame starts another game for the same player.
	OnNewGame func()
	OnExit    func()
}

var _ Scene = &GameOverScene{}

func NewGameOverScene(opts GameOverSceneOptions) (Scene, error) {
	lines := []string{"Game Over!", fmt.Sprintf("Total points: %d", opts.FinalScore)}
	if opts.IsNewHighScore {
		lines = append(lines, "New high score!")
	}
	return &GameOverScene{
		BaseScene: NewBaseScene(objects.NewTextOverlayObject("overlay-gameover", lines...)),
		onNewGame: opts.OnNewGame,
		onExit:    opts.OnExit,
	}, nil
}

func (s *GameOverScene) Init() error {
	fontFace := fonts.TTFNormalFont

	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(40),
			widget.RowLayoutOpts.Padding(widget.Insets{
				Top:  380,
				Left: 150,
			}))),
	)

	newGameButton := newMenuButton("New Game", fontFace)
	newGameButton.ClickedEvent.AddHandler(func(args interface{}) {
		if s.onNewGame != nil {
			s.onNewGame()
		}
	})
	rootContainer.AddChild(newGameButton)

	exitButton := newMenuButton("Exit", fontFace)
	exitButton.ClickedEvent.AddHandler(func(args interface{}) {
		if s.onExit != nil {
			s.onExit()
		}
	})
	rootContainer.AddChild(exitButton)

	s.ui = &ebitenui.UI{
		Container: rootContainer,
	}
	return s.BaseScene.Init()
}

func (s *GameOverScene) Update() error {
	s.ui.Update()
	return s.BaseScene.Update()
}

func (s *GameOverScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	s.BaseScene.Draw(screen)
	s.ui.Draw(screen)
}
