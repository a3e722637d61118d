package scenes

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/cbodonnell/simon/client/fonts"
	"github.com/cbodonnell/simon/client/objects"
	"github.com/cbodonnell/simon/client/ui"
	gametypes "github.com/cbodonnell/simon/pkg/game/types"
	"github.com/cbodonnell/simon/pkg/log"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
)

type MenuScene struct {
	*BaseScene

	onStart       func(playerName string, difficulty gametypes.Difficulty) error
	onToggleSound func() bool
	ui            *ebitenui.UI
	playerName    string
	difficulty    gametypes.Difficulty
	muted         bool
	startErr      string
}

type MenuSceneOptions struct {
	PlayerName string
	Difficulty gametypes.Difficulty
	Muted      bool
	// OnStart is called when the start button is pressed.
	OnStart func(playerName string, difficulty gametypes.Difficulty) error
	// OnToggleSound flips the sound setting and returns whether it is now muted.
	OnToggleSound func() bool
}

var _ Scene = &MenuScene{}

func NewMenuScene(opts MenuSceneOptions) (Scene, error) {
	if opts.OnStart == nil {
		return nil, fmt.Errorf("menu scene requires a start handler")
	}
	return &MenuScene{
		BaseScene:     NewBaseScene(objects.NewBaseObject("menu-root", nil)),
		onStart:       opts.OnStart,
		onToggleSound: opts.OnToggleSound,
		playerName:    opts.PlayerName,
		difficulty:    opts.Difficulty,
		muted:         opts.Muted,
	}, nil
}

func (s *MenuScene) Init() error {
	s.renderUI()
	return s.BaseScene.Init()
}

func (s *MenuScene) renderUI() {
	fontFace := fonts.TTFNormalFont

	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(20),
			widget.RowLayoutOpts.Padding(widget.Insets{
				Top:    90,
				Left:   120,
				Right:  120,
				Bottom: 60,
			}))),
	)

	rootContainer.AddChild(widget.NewText(
		widget.TextOpts.Text("SIMON", fonts.TTFLargeFont, color.NRGBA{254, 255, 255, 255}),
		widget.TextOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
		),
	))

	nameTextInput := widget.NewTextInput(
		widget.TextInputOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
				Stretch:  true,
			}),
		),
		widget.TextInputOpts.MobileInputMode("text"),
		widget.TextInputOpts.Image(&widget.TextInputImage{
			Idle:     image.NewNineSliceColor(color.NRGBA{R: 100, G: 100, B: 100, A: 255}),
			Disabled: image.NewNineSliceColor(color.NRGBA{R: 100, G: 100, B: 100, A: 255}),
		}),
		widget.TextInputOpts.Face(fontFace),
		widget.TextInputOpts.Color(&widget.TextInputColor{
			Idle:          color.NRGBA{254, 255, 255, 255},
			Disabled:      color.NRGBA{R: 200, G: 200, B: 200, A: 255},
			Caret:         color.NRGBA{254, 255, 255, 255},
			DisabledCaret: color.NRGBA{R: 200, G: 200, B: 200, A: 255},
		}),
		widget.TextInputOpts.Padding(widget.NewInsetsSimple(5)),
		widget.TextInputOpts.CaretOpts(
			widget.CaretOpts.Size(fontFace, 2),
		),
		widget.TextInputOpts.Placeholder("Your name"),
		widget.TextInputOpts.ChangedHandler(func(args *widget.TextInputChangedEventArgs) {
			s.playerName = args.InputText
		}),
	)
	nameTextInput.SetText(s.playerName)
	rootContainer.AddChild(nameTextInput)

	difficultyButton := newMenuButton(s.difficultyLabel(), fontFace)
	difficultyButton.ClickedEvent.AddHandler(func(args interface{}) {
		s.difficulty = s.difficulty.Next()
		difficultyButton.Text().Label = s.difficultyLabel()
	})
	rootContainer.AddChild(difficultyButton)

	if s.onToggleSound != nil {
		soundButton := newMenuButton(s.soundLabel(), fontFace)
		soundButton.ClickedEvent.AddHandler(func(args interface{}) {
			s.muted = s.onToggleSound()
			soundButton.Text().Label = s.soundLabel()
		})
		rootContainer.AddChild(soundButton)
	}

	startButton := newMenuButton("Start", fontFace)
	rootContainer.AddChild(startButton)

	if s.startErr != "" {
		rootContainer.AddChild(widget.NewText(
			widget.TextOpts.Text(s.startErr, fontFace, color.NRGBA{R: 255, G: 0, B: 0, A: 255}),
			widget.TextOpts.WidgetOpts(
				widget.WidgetOpts.LayoutData(widget.RowLayoutData{
					Position: widget.RowLayoutPositionCenter,
				}),
			),
		))
		s.startErr = ""
	}

	// auto focus the name text input
	nameTextInput.Focus(true)

	startHandler := func(args interface{}) {
		if err := s.start(nameTextInput.GetText()); err != nil {
			log.Error("Failed to start game: %v", err)
			if actionableErr, ok := err.(*ui.ActionableError); ok {
				s.startErr = actionableErr.Message
			} else {
				s.startErr = "Failed to start. Please try again."
			}
			s.renderUI()
		}
	}
	nameTextInput.SubmitEvent.AddHandler(startHandler)
	startButton.ClickedEvent.AddHandler(startHandler)

	s.ui = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (s *MenuScene) start(input string) error {
	name := strings.TrimSpace(input)
	if name == "" {
		return &ui.ActionableError{Message: "Please enter your name."}
	}
	s.playerName = name
	return s.onStart(name, s.difficulty)
}

func (s *MenuScene) difficultyLabel() string {
	return fmt.Sprintf("Difficulty: %s", s.difficulty)
}

func (s *MenuScene) soundLabel() string {
	if s.muted {
		return "Sound: off"
	}
	return "Sound: on"
}

func newMenuButton(label string, fontFace font.Face) *widget.Button {
	buttonImage := &widget.ButtonImage{
		Idle:    image.NewNineSliceColor(color.NRGBA{R: 170, G: 170, B: 180, A: 255}),
		Hover:   image.NewNineSliceColor(color.NRGBA{R: 135, G: 135, B: 150, A: 255}),
		Pressed: image.NewNineSliceColor(color.NRGBA{R: 100, G: 100, B: 120, A: 255}),
	}
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
				Stretch:  true,
			}),
		),
		widget.ButtonOpts.Image(buttonImage),
		widget.ButtonOpts.Text(label, fontFace, &widget.ButtonTextColor{
			Idle:     color.NRGBA{254, 255, 255, 255},
			Disabled: color.NRGBA{R: 200, G: 200, B: 200, A: 255},
		}),
		widget.ButtonOpts.TextPadding(widget.Insets{
			Left:   30,
			Right:  30,
			Top:    5,
			Bottom: 5,
		}),
	)
}

func (s *MenuScene) Update() error {
	s.ui.Update()
	return s.BaseScene.Update()
}

func (s *MenuScene) Draw(screen *ebiten.Image) {
	s.ui.Draw(screen)
	s.BaseScene.Draw(screen)
}
