package input

import (
	gametypes "github.com/cbodonnell/simon/pkg/game/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// IsPositiveJustPressed returns a boolean value indicating whether the generic positive input is just pressed.
// This is used to handle both keyboard and touch inputs.
func IsPositiveJustPressed() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		return true
	}
	gamepadIDs := ebiten.AppendGamepadIDs(nil)
	for _, g := range gamepadIDs {
		if ebiten.IsStandardGamepadLayoutAvailable(g) {
			if inpututil.IsStandardGamepadButtonJustPressed(g, ebiten.StandardGamepadButtonRightBottom) {
				return true
			}
		} else if inpututil.IsGamepadButtonJustPressed(g, ebiten.GamepadButton0) {
			// The button 0 might not be the A button.
			return true
		}
	}
	return false
}

// IsNegativeJustPressed returns a boolean value indicating whether the generic negative input is just pressed.
func IsNegativeJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

func IsMuteJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyM)
}

func IsDifficultyJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyD)
}

// JustPressedPoints returns the screen positions of mouse clicks and touches that started this tick.
func JustPressedPoints() [][2]int {
	var points [][2]int
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		points = append(points, [2]int{x, y})
	}
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		points = append(points, [2]int{x, y})
	}
	return points
}

var colorKeys = map[ebiten.Key]gametypes.Color{
	ebiten.Key1: gametypes.ColorRed,
	ebiten.KeyR: gametypes.ColorRed,
	ebiten.Key2: gametypes.ColorBlue,
	ebiten.KeyB: gametypes.ColorBlue,
	ebiten.Key3: gametypes.ColorYellow,
	ebiten.KeyY: gametypes.ColorYellow,
	ebiten.Key4: gametypes.ColorGreen,
	ebiten.KeyG: gametypes.ColorGreen,
}

// JustPressedColors returns the colors whose keys were pressed this tick.
func JustPressedColors() []gametypes.Color {
	var colors []gametypes.Color
	for _, key := range inpututil.AppendJustPressedKeys(nil) {
		if c, ok := colorKeys[key]; ok {
			colors = append(colors, c)
		}
	}
	return colors
}
