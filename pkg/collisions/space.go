package collisions

import (
	"github.com/cbodonnell/simon/pkg/game/types"
	"github.com/solarlune/resolv"
)

const (
	cellSize = 16
	// TagButton marks the objects of the four color buttons
	TagButton = "button"
)

// Rect is an axis aligned rectangle in screen coordinates.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// BoardSpace answers which color button lies under a screen point.
type BoardSpace struct {
	space   *resolv.Space
	width   float64
	height  float64
	buttons map[*resolv.Object]types.Color
	rects   map[types.Color]Rect
}

// NewBoardSpace lays the palette out as a 2x2 grid of buttons inside bounds,
// separated by gap. Red is top left, blue top right, yellow bottom left and
// green bottom right.
func NewBoardSpace(screenWidth, screenHeight int, bounds Rect, gap float64) *BoardSpace {
	b := &BoardSpace{
		space:   resolv.NewSpace(screenWidth, screenHeight, cellSize, cellSize),
		width:   float64(screenWidth),
		height:  float64(screenHeight),
		buttons: make(map[*resolv.Object]types.Color),
		rects:   make(map[types.Color]Rect),
	}

	w := (bounds.W - gap) / 2
	h := (bounds.H - gap) / 2
	for i, c := range types.Palette {
		r := Rect{
			X: bounds.X + float64(i%2)*(w+gap),
			Y: bounds.Y + float64(i/2)*(h+gap),
			W: w,
			H: h,
		}
		obj := resolv.NewObject(r.X, r.Y, r.W, r.H, TagButton)
		b.space.Add(obj)
		b.buttons[obj] = c
		b.rects[c] = r
	}
	return b
}

// ButtonRect returns the rectangle of the button for c.
func (b *BoardSpace) ButtonRect(c types.Color) Rect {
	return b.rects[c]
}

// ColorAt returns the color of the button containing the point, if any.
func (b *BoardSpace) ColorAt(x, y float64) (types.Color, bool) {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return 0, false
	}

	point := resolv.NewObject(x, y, 1, 1)
	b.space.Add(point)
	defer b.space.Remove(point)

	collision := point.Check(0, 0, TagButton)
	if collision == nil {
		return 0, false
	}
	// objects sharing a cell are candidates only
	for _, obj := range collision.Objects {
		c, ok := b.buttons[obj]
		if !ok {
			continue
		}
		if b.rects[c].Contains(x, y) {
			return c, true
		}
	}
	return 0, false
}
