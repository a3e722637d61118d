package game

import (
	"errors"
	"fmt"

	"github.com/cbodonnell/simon/pkg/game/types"
)

// InvalidTransitionError is returned when an engine operation is called
// outside the round state that allows it.
type InvalidTransitionError struct {
	Op    string
	State types.RoundState
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition: %s not allowed in state %s", e.Op, e.State)
}

func IsInvalidTransition(err error) bool {
	var target *InvalidTransitionError
	return errors.As(err, &target)
}

// IndexOutOfRangeError is returned when a guess cursor points past the sequence.
type IndexOutOfRangeError struct {
	Cursor int
	Length int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("cursor %d out of range for sequence of length %d", e.Cursor, e.Length)
}

func IsIndexOutOfRange(err error) bool {
	var target *IndexOutOfRangeError
	return errors.As(err, &target)
}

// GameOverError is returned by any mutating call after the game has ended.
type GameOverError struct {
	Op string
}

func (e *GameOverError) Error() string {
	return fmt.Sprintf("game over: %s rejected", e.Op)
}

func IsGameOver(err error) bool {
	var target *GameOverError
	return errors.As(err, &target)
}

// ErrNoGame is returned when an operation needs a game and none was started.
var ErrNoGame = errors.New("no game in progress")
