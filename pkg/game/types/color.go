package types

import (
	"fmt"
	"strings"
)

// Color is one of the four signal colors of the board.
type Color int

const (
	ColorRed Color = iota
	ColorBlue
	ColorYellow
	ColorGreen
)

// Palette lists every color in board order.
var Palette = [...]Color{ColorRed, ColorBlue, ColorYellow, ColorGreen}

func (c Color) String() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorBlue:
		return "blue"
	case ColorYellow:
		return "yellow"
	case ColorGreen:
		return "green"
	default:
		return "unknown"
	}
}

// Valid reports whether c belongs to the palette.
func (c Color) Valid() bool {
	return c >= ColorRed && c <= ColorGreen
}

// ParseColor parses a color name or its single-letter shorthand.
func ParseColor(s string) (Color, error) {
	switch strings.ToLower(s) {
	case "red", "r":
		return ColorRed, nil
	case "blue", "b":
		return ColorBlue, nil
	case "yellow", "y":
		return ColorYellow, nil
	case "green", "g":
		return ColorGreen, nil
	default:
		return 0, fmt.Errorf("unknown color: %s", s)
	}
}
