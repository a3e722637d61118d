package game

import (
	"testing"

	"github.com/cbodonnell/simon/pkg/game/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(highScore int, colors ...types.Color) *Engine {
	return NewEngine(NewEngineOptions{
		ColorSource: NewCycleColorSource(colors...),
		HighScore:   highScore,
	})
}

// guess checks and applies one guess the way a session does.
func guess(t *testing.T, e *Engine, cursor int, color types.Color) GuessResult {
	t.Helper()
	result, err := e.CheckGuess(cursor, color)
	require.NoError(t, err)
	if result == GuessMatch {
		require.NoError(t, e.RecordHit())
	} else {
		require.NoError(t, e.EndGame())
	}
	return result
}

func TestEngine_NewGame(t *testing.T) {
	e := newTestEngine(5, types.ColorRed, types.ColorBlue)
	game := e.NewGame("ada", types.DifficultyHard)

	assert.Equal(t, "ada", game.Player.Name)
	assert.Equal(t, 0, game.Player.CurrentScore)
	assert.Equal(t, 1, game.Stage.LevelNumber)
	assert.Equal(t, []types.Color{types.ColorRed, types.ColorBlue}, game.Stage.Sequence())
	assert.Equal(t, types.DifficultyHard, game.Difficulty)
	assert.Equal(t, 5, game.HighScore)
	assert.False(t, game.IsNewHighScore)
	assert.Equal(t, types.RoundStatePlayback, game.State)
	assert.Equal(t, e.Generation(), game.Generation)
}

func TestEngine_NewGameReplacesGameAndGeneration(t *testing.T) {
	e := newTestEngine(0)
	first := e.NewGame("ada", types.DifficultyEasy)
	second := e.NewGame("bob", types.DifficultyEasy)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Greater(t, second.Generation, first.Generation)
	assert.Same(t, second, e.Game())
}

func TestEngine_Scenario(t *testing.T) {
	c0, c1 := types.ColorRed, types.ColorBlue
	e := newTestEngine(3, c0, c1)
	game := e.NewGame("ada", types.DifficultyMedium)
	require.Equal(t, []types.Color{c0, c1}, game.Stage.Sequence())
	require.Equal(t, 1, game.Stage.LevelNumber)

	require.NoError(t, e.BeginListening())
	assert.Equal(t, GuessMatch, guess(t, e, 0, c0))
	assert.Equal(t, GuessMatch, guess(t, e, 1, c1))
	require.NoError(t, e.CompleteLevel())
	require.NoError(t, e.LevelUp())

	assert.Equal(t, []types.Color{c0, c1, c0}, game.Stage.Sequence())
	assert.Equal(t, 2, game.Stage.LevelNumber)
	assert.Equal(t, 2, game.Player.CurrentScore)
	assert.Equal(t, types.RoundStatePlayback, game.State)

	require.NoError(t, e.BeginListening())
	assert.Equal(t, GuessMatch, guess(t, e, 0, c0))
	assert.Equal(t, GuessMatch, guess(t, e, 1, c1))
	assert.Equal(t, GuessMismatch, guess(t, e, 2, c1))

	assert.Equal(t, types.RoundStateGameOver, game.State)
	assert.Equal(t, 4, game.Player.CurrentScore)
	assert.True(t, game.IsNewHighScore)
	assert.Equal(t, 4, game.HighScore)
	assert.Equal(t, 4, e.HighScore())
}

func TestEngine_SequenceLengthFollowsLevel(t *testing.T) {
	e := newTestEngine(0)
	game := e.NewGame("ada", types.DifficultyEasy)

	for level := 1; level <= 20; level++ {
		require.Equal(t, level, game.Stage.LevelNumber)
		require.Equal(t, level+1, game.Stage.Len())

		prefix := game.Stage.Sequence()
		require.NoError(t, e.BeginListening())
		for i, c := range prefix {
			require.Equal(t, GuessMatch, guess(t, e, i, c))
		}
		require.NoError(t, e.CompleteLevel())
		require.NoError(t, e.LevelUp())

		sequence := game.Stage.Sequence()
		assert.Equal(t, prefix, sequence[:len(prefix)])
		assert.True(t, sequence[len(sequence)-1].Valid())
	}
}

func TestEngine_RandomColorsStayInPalette(t *testing.T) {
	e := NewEngine(NewEngineOptions{ColorSource: NewRandomColorSource(42)})
	game := e.NewGame("ada", types.DifficultyEasy)
	for _, c := range game.Stage.Sequence() {
		assert.True(t, c.Valid())
	}

	source := NewRandomColorSource(7)
	seen := map[types.Color]bool{}
	for i := 0; i < 200; i++ {
		c := source.Next()
		require.True(t, c.Valid())
		seen[c] = true
	}
	assert.Len(t, seen, len(types.Palette))
}

func TestEngine_HighScoreBoundary(t *testing.T) {
	tests := []struct {
		name          string
		priorHigh     int
		hits          int
		wantHigh      int
		wantNewRecord bool
	}{
		{name: "below prior", priorHigh: 5, hits: 3, wantHigh: 5, wantNewRecord: false},
		{name: "equal to prior", priorHigh: 3, hits: 3, wantHigh: 3, wantNewRecord: false},
		{name: "above prior", priorHigh: 3, hits: 4, wantHigh: 4, wantNewRecord: true},
		{name: "no prior", priorHigh: 0, hits: 1, wantHigh: 1, wantNewRecord: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine(tt.priorHigh, types.ColorGreen)
			game := e.NewGame("ada", types.DifficultyEasy)
			require.NoError(t, e.BeginListening())

			for i := 0; i < tt.hits; i++ {
				before := game.Player.CurrentScore
				require.NoError(t, e.RecordHit())
				require.Equal(t, before+1, game.Player.CurrentScore)
			}

			assert.Equal(t, tt.wantHigh, game.HighScore)
			assert.Equal(t, tt.wantNewRecord, game.IsNewHighScore)
			assert.Equal(t, tt.wantHigh, e.HighScore())
		})
	}
}

func TestEngine_HighScoreCarriesAcrossGames(t *testing.T) {
	e := newTestEngine(0, types.ColorRed)
	e.NewGame("ada", types.DifficultyEasy)
	require.NoError(t, e.BeginListening())
	require.NoError(t, e.RecordHit())
	require.NoError(t, e.RecordHit())
	require.NoError(t, e.EndGame())

	next := e.NewGame("ada", types.DifficultyEasy)
	assert.Equal(t, 2, next.HighScore)
	assert.False(t, next.IsNewHighScore)
	assert.Equal(t, 0, next.Player.CurrentScore)
}

func TestEngine_CheckGuessDoesNotMutate(t *testing.T) {
	e := newTestEngine(0, types.ColorRed, types.ColorBlue)
	game := e.NewGame("ada", types.DifficultyEasy)
	require.NoError(t, e.BeginListening())
	before := game.Copy()

	result, err := e.CheckGuess(1, types.ColorYellow)
	require.NoError(t, err)
	assert.Equal(t, GuessMismatch, result)
	assert.Equal(t, before, game.Copy())
}

func TestEngine_CheckGuessOutOfRange(t *testing.T) {
	e := newTestEngine(0)
	e.NewGame("ada", types.DifficultyEasy)
	require.NoError(t, e.BeginListening())

	for _, cursor := range []int{2, 3, -1} {
		_, err := e.CheckGuess(cursor, types.ColorRed)
		assert.True(t, IsIndexOutOfRange(err), "cursor %d: %v", cursor, err)
	}
}

func TestEngine_InvalidTransitions(t *testing.T) {
	e := newTestEngine(0)

	_, err := e.CheckGuess(0, types.ColorRed)
	assert.ErrorIs(t, err, ErrNoGame)

	e.NewGame("ada", types.DifficultyEasy)

	// still in playback
	_, err = e.CheckGuess(0, types.ColorRed)
	assert.True(t, IsInvalidTransition(err))
	assert.True(t, IsInvalidTransition(e.RecordHit()))
	assert.True(t, IsInvalidTransition(e.LevelUp()))

	require.NoError(t, e.BeginListening())
	assert.True(t, IsInvalidTransition(e.BeginListening()))
	// mid-listening level-up is a contract violation
	assert.True(t, IsInvalidTransition(e.LevelUp()))
}

func TestEngine_GameOverRejectsMutations(t *testing.T) {
	e := newTestEngine(0, types.ColorRed, types.ColorBlue)
	game := e.NewGame("ada", types.DifficultyEasy)
	require.NoError(t, e.BeginListening())
	require.Equal(t, GuessMismatch, guess(t, e, 0, types.ColorGreen))
	snapshot := game.Copy()
	generation := e.Generation()

	_, err := e.CheckGuess(0, types.ColorRed)
	assert.True(t, IsGameOver(err))
	assert.True(t, IsGameOver(e.RecordHit()))
	assert.True(t, IsGameOver(e.LevelUp()))
	assert.True(t, IsGameOver(e.CompleteLevel()))
	assert.True(t, IsGameOver(e.BeginListening()))
	assert.True(t, IsGameOver(e.EndGame()))
	e.SetDifficulty(types.DifficultyHard)

	assert.Equal(t, snapshot, game.Copy())
	assert.Equal(t, generation, e.Generation())
}

func TestEngine_SetHighScoreOnlyRaises(t *testing.T) {
	e := newTestEngine(4)
	e.SetHighScore(2)
	assert.Equal(t, 4, e.HighScore())
	e.SetHighScore(9)
	assert.Equal(t, 9, e.HighScore())
}

func TestCycleColorSource(t *testing.T) {
	source := NewCycleColorSource(types.ColorRed, types.ColorBlue)
	got := []types.Color{source.Next(), source.Next(), source.Next(), source.Next()}
	assert.Equal(t, []types.Color{types.ColorRed, types.ColorBlue, types.ColorRed, types.ColorBlue}, got)

	all := NewCycleColorSource()
	for _, c := range types.Palette {
		assert.Equal(t, c, all.Next())
	}
}
