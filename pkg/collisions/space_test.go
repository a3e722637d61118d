package collisions

import (
	"testing"

	"github.com/cbodonnell/simon/pkg/game/types"
	"github.com/stretchr/testify/assert"
)

func TestBoardSpace_ColorAt(t *testing.T) {
	board := NewBoardSpace(640, 480, Rect{X: 200, Y: 40, W: 408, H: 408}, 8)

	tests := []struct {
		name  string
		x, y  float64
		color types.Color
		found bool
	}{
		{name: "red top left", x: 210, y: 50, color: types.ColorRed, found: true},
		{name: "blue top right", x: 500, y: 50, color: types.ColorBlue, found: true},
		{name: "yellow bottom left", x: 300, y: 300, color: types.ColorYellow, found: true},
		{name: "green bottom right", x: 600, y: 440, color: types.ColorGreen, found: true},
		{name: "vertical gap", x: 402, y: 100, found: false},
		{name: "horizontal gap", x: 300, y: 242, found: false},
		{name: "status area", x: 20, y: 20, found: false},
		{name: "off screen", x: -5, y: 700, found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := board.ColorAt(tt.x, tt.y)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.color, c)
			}
		})
	}
}

func TestBoardSpace_HitTestLeavesSpaceUnchanged(t *testing.T) {
	board := NewBoardSpace(640, 480, Rect{X: 0, Y: 0, W: 640, H: 480}, 0)
	for i := 0; i < 10; i++ {
		board.ColorAt(10, 10)
	}
	assert.Len(t, board.space.Objects(), len(types.Palette))
}

func TestBoardSpace_ButtonRect(t *testing.T) {
	board := NewBoardSpace(640, 480, Rect{X: 200, Y: 40, W: 408, H: 408}, 8)
	assert.Equal(t, Rect{X: 408, Y: 248, W: 200, H: 200}, board.ButtonRect(types.ColorGreen))
}
