package objects

import (
	"image/color"
	"strings"

	"github.com/cbodonnell/simon/client/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// TextOverlayObject draws centered lines of text over the whole screen.
type TextOverlayObject struct {
	*BaseObject

	lines []string
}

func NewTextOverlayObject(id string, lines ...string) *TextOverlayObject {
	return &TextOverlayObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{ZIndex: 10}),
		lines:      lines,
	}
}

func (o *TextOverlayObject) SetLines(lines ...string) {
	o.lines = lines
}

func (o *TextOverlayObject) Draw(screen *ebiten.Image) {
	if len(o.lines) == 0 {
		return
	}
	f := fonts.TTFLargeFont
	lineHeight := float64(f.Metrics().Height.Ceil())
	top := float64(screen.Bounds().Dy())/2 - lineHeight*float64(len(o.lines))/2
	for i, line := range o.lines {
		t := strings.ToUpper(line)
		bounds, _ := font.BoundString(f, t)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(screen.Bounds().Dx())/2-float64(bounds.Max.X>>6)/2, top+lineHeight*float64(i+1))
		op.ColorScale.ScaleWithColor(color.White)
		text.DrawWithOptions(screen, t, f, op)
	}
}
