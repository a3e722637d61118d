package types

import (
	"github.com/google/uuid"
)

// RoundState is the phase of the round the live game is in.
type RoundState int

const (
	RoundStatePlayback RoundState = iota
	RoundStateListening
	RoundStateLevelComplete
	RoundStateGameOver
)

func (s RoundState) String() string {
	switch s {
	case RoundStatePlayback:
		return "playback"
	case RoundStateListening:
		return "listening"
	case RoundStateLevelComplete:
		return "level_complete"
	case RoundStateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

func (s RoundState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// FlashState is either idle or the index of the sequence element being shown.
type FlashState int

// FlashIdle means no button is lit.
const FlashIdle FlashState = -1

// Flashing returns the state for a lit sequence element.
func Flashing(index int) FlashState {
	if index < 0 {
		return FlashIdle
	}
	return FlashState(index)
}

// Index returns the lit index and whether a button is lit at all.
func (f FlashState) Index() (int, bool) {
	if f < 0 {
		return 0, false
	}
	return int(f), true
}

// Game is a single play-through from the first level to game over.
type Game struct {
	// ID identifies the game in logs and the status API
	ID uuid.UUID `json:"id"`
	// Generation tags playback runs; it changes on every new game and level
	Generation uint64     `json:"-"`
	Player     *Player    `json:"player"`
	Stage      *Stage     `json:"stage"`
	Difficulty Difficulty `json:"difficulty"`
	// HighScore starts at the carried-in high score and follows the player's score once beaten
	HighScore int `json:"highScore"`
	// IsNewHighScore is set once the player's score passes the carried-in high score
	IsNewHighScore bool       `json:"isNewHighScore"`
	State          RoundState `json:"state"`
}

// NewGame creates a game on its first level with the carried-in high score.
func NewGame(player *Player, stage *Stage, difficulty Difficulty, highScore int) *Game {
	return &Game{
		ID:             uuid.New(),
		Player:         player,
		Stage:          stage,
		Difficulty:     difficulty,
		HighScore:      highScore,
		IsNewHighScore: false,
		State:          RoundStatePlayback,
	}
}

// IsOver reports whether the game reached its terminal state.
func (g *Game) IsOver() bool {
	return g.State == RoundStateGameOver
}

// Copy returns a deep copy that can be read from other goroutines.
func (g *Game) Copy() *Game {
	return &Game{
		ID:             g.ID,
		Generation:     g.Generation,
		Player:         g.Player.Copy(),
		Stage:          g.Stage.Copy(),
		Difficulty:     g.Difficulty,
		HighScore:      g.HighScore,
		IsNewHighScore: g.IsNewHighScore,
		State:          g.State,
	}
}
