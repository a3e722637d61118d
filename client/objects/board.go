package objects

import (
	"image/color"

	"github.com/cbodonnell/simon/pkg/collisions"
	gametypes "github.com/cbodonnell/simon/pkg/game/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	BoardX   = 200
	BoardY   = 40
	BoardGap = 8
	// BoardSize is the width and height of the 2x2 button grid
	BoardSize = 408
)

var (
	dimColors = map[gametypes.Color]color.RGBA{
		gametypes.ColorRed:    {R: 110, G: 20, B: 20, A: 255},
		gametypes.ColorBlue:   {R: 20, G: 30, B: 110, A: 255},
		gametypes.ColorYellow: {R: 120, G: 110, B: 20, A: 255},
		gametypes.ColorGreen:  {R: 20, G: 100, B: 30, A: 255},
	}
	litColors = map[gametypes.Color]color.RGBA{
		gametypes.ColorRed:    {R: 255, G: 60, B: 60, A: 255},
		gametypes.ColorBlue:   {R: 70, G: 110, B: 255, A: 255},
		gametypes.ColorYellow: {R: 255, G: 240, B: 70, A: 255},
		gametypes.ColorGreen:  {R: 70, G: 235, B: 90, A: 255},
	}
)

// ButtonObject is one color button of the board.
type ButtonObject struct {
	*BaseObject

	color gametypes.Color
	rect  collisions.Rect
	lit   func(gametypes.Color) bool
}

func NewButtonObject(id string, c gametypes.Color, rect collisions.Rect, lit func(gametypes.Color) bool) *ButtonObject {
	return &ButtonObject{
		BaseObject: NewBaseObject(id, nil),
		color:      c,
		rect:       rect,
		lit:        lit,
	}
}

func (o *ButtonObject) Draw(screen *ebiten.Image) {
	clr := dimColors[o.color]
	if o.lit(o.color) {
		clr = litColors[o.color]
	}
	vector.DrawFilledRect(screen, float32(o.rect.X), float32(o.rect.Y), float32(o.rect.W), float32(o.rect.H), clr, false)
}

// BoardObject groups the four buttons and maps screen points to colors.
type BoardObject struct {
	*BaseObject

	space *collisions.BoardSpace
}

// NewBoardObject creates the board. lit decides which buttons are drawn highlighted.
func NewBoardObject(id string, screenWidth, screenHeight int, lit func(gametypes.Color) bool) *BoardObject {
	space := collisions.NewBoardSpace(screenWidth, screenHeight, collisions.Rect{
		X: BoardX,
		Y: BoardY,
		W: BoardSize,
		H: BoardSize,
	}, BoardGap)

	board := &BoardObject{
		BaseObject: NewBaseObject(id, nil),
		space:      space,
	}
	for _, c := range gametypes.Palette {
		board.AddChild(NewButtonObject(id+"-"+c.String(), c, space.ButtonRect(c), lit))
	}
	return board
}

// ButtonAt returns the color of the button under the screen point.
func (o *BoardObject) ButtonAt(x, y int) (gametypes.Color, bool) {
	return o.space.ColorAt(float64(x), float64(y))
}
