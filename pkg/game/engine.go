package game

import (
	"github.com/cbodonnell/simon/pkg/game/constants"
	"github.com/cbodonnell/simon/pkg/game/types"
)

// GuessResult is the outcome of comparing a guess to the sequence.
type GuessResult int

const (
	GuessMatch GuessResult = iota
	GuessMismatch
)

func (r GuessResult) String() string {
	if r == GuessMatch {
		return "match"
	}
	return "mismatch"
}

// Engine holds the live game and its round state machine.
// It has no notion of time; the session drives it.
type Engine struct {
	colors     ColorSource
	game       *types.Game
	highScore  int
	generation uint64
}

type NewEngineOptions struct {
	ColorSource ColorSource
	// HighScore is the best score known before the first game
	HighScore int
}

func NewEngine(opts NewEngineOptions) *Engine {
	colors := opts.ColorSource
	if colors == nil {
		colors = NewTimeSeededColorSource()
	}
	return &Engine{
		colors:    colors,
		highScore: opts.HighScore,
	}
}

// NewGame replaces the live game with a fresh one on level 1.
func (e *Engine) NewGame(playerName string, difficulty types.Difficulty) *types.Game {
	initial := make([]types.Color, constants.InitialSequenceLength)
	for i := range initial {
		initial[i] = e.colors.Next()
	}

	e.generation++
	e.game = types.NewGame(types.NewPlayer(playerName), types.NewStage(initial...), difficulty, e.highScore)
	e.game.Generation = e.generation
	return e.game
}

// BeginListening moves the game from playback to listening.
func (e *Engine) BeginListening() error {
	if err := e.require("beginListening", types.RoundStatePlayback); err != nil {
		return err
	}
	e.game.State = types.RoundStateListening
	return nil
}

// CheckGuess compares color with the sequence element at cursor. It never mutates the game.
func (e *Engine) CheckGuess(cursor int, color types.Color) (GuessResult, error) {
	if err := e.require("checkGuess", types.RoundStateListening); err != nil {
		return GuessMismatch, err
	}
	stage := e.game.Stage
	if cursor < 0 || cursor >= stage.Len() {
		return GuessMismatch, &IndexOutOfRangeError{Cursor: cursor, Length: stage.Len()}
	}
	if stage.At(cursor) != color {
		return GuessMismatch, nil
	}
	return GuessMatch, nil
}

// RecordHit awards the points for one matched guess and follows the high score once beaten.
func (e *Engine) RecordHit() error {
	if err := e.require("recordHit", types.RoundStateListening); err != nil {
		return err
	}
	e.game.Player.AddPoints(constants.PointsPerHit)
	if score := e.game.Player.CurrentScore; score > e.game.HighScore {
		e.game.IsNewHighScore = true
		e.game.HighScore = score
		e.highScore = score
	}
	return nil
}

// CompleteLevel marks the listening phase as fully matched.
func (e *Engine) CompleteLevel() error {
	if err := e.require("completeLevel", types.RoundStateListening); err != nil {
		return err
	}
	e.game.State = types.RoundStateLevelComplete
	return nil
}

// LevelUp appends one color, moves to the next level and starts a new playback generation.
func (e *Engine) LevelUp() error {
	if err := e.require("levelUp", types.RoundStateLevelComplete); err != nil {
		return err
	}
	e.game.Stage.Extend(e.colors.Next())
	e.generation++
	e.game.Generation = e.generation
	e.game.State = types.RoundStatePlayback
	return nil
}

// EndGame moves the game to its terminal state.
func (e *Engine) EndGame() error {
	if err := e.require("endGame", types.RoundStateListening); err != nil {
		return err
	}
	e.game.State = types.RoundStateGameOver
	return nil
}

// SetDifficulty changes the difficulty of the live game. The delay of a
// playback already in flight is not affected.
func (e *Engine) SetDifficulty(difficulty types.Difficulty) {
	if e.game == nil || e.game.IsOver() {
		return
	}
	e.game.Difficulty = difficulty
}

// SetHighScore raises the carried high score, e.g. after it was loaded from storage.
func (e *Engine) SetHighScore(highScore int) {
	if highScore > e.highScore {
		e.highScore = highScore
	}
}

func (e *Engine) HighScore() int {
	return e.highScore
}

// Generation returns the token of the current playback generation.
func (e *Engine) Generation() uint64 {
	return e.generation
}

// Game returns the live game, or nil before the first game.
func (e *Engine) Game() *types.Game {
	return e.game
}

func (e *Engine) require(op string, state types.RoundState) error {
	if e.game == nil {
		return ErrNoGame
	}
	if e.game.IsOver() {
		return &GameOverError{Op: op}
	}
	if e.game.State != state {
		return &InvalidTransitionError{Op: op, State: e.game.State}
	}
	return nil
}
