package types

import (
	"fmt"
	"strings"
	"time"

	"github.com/cbodonnell/simon/pkg/game/constants"
)

// Difficulty selects the playback delay between two colors.
type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyMedium
	DifficultyHard
)

func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyMedium:
		return "medium"
	case DifficultyHard:
		return "hard"
	default:
		return "unknown"
	}
}

func (d Difficulty) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// StepDelay returns the playback interval for the difficulty.
// Unknown values fall back to the medium delay.
func (d Difficulty) StepDelay() time.Duration {
	switch d {
	case DifficultyEasy:
		return constants.EasyStepDelay
	case DifficultyHard:
		return constants.HardStepDelay
	default:
		return constants.MediumStepDelay
	}
}

// ParseDifficulty parses a difficulty string.
// Valid difficulties are: easy, medium, hard.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(s) {
	case "easy":
		return DifficultyEasy, nil
	case "medium":
		return DifficultyMedium, nil
	case "hard":
		return DifficultyHard, nil
	default:
		return DifficultyMedium, fmt.Errorf("unknown difficulty: %s", s)
	}
}

// Next cycles easy, medium, hard and back to easy.
func (d Difficulty) Next() Difficulty {
	switch d {
	case DifficultyEasy:
		return DifficultyMedium
	case DifficultyMedium:
		return DifficultyHard
	default:
		return DifficultyEasy
	}
}
