package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		input     string
		want      Difficulty
		wantDelay time.Duration
		wantErr   bool
	}{
		{input: "easy", want: DifficultyEasy, wantDelay: 2000 * time.Millisecond},
		{input: "Medium", want: DifficultyMedium, wantDelay: 1500 * time.Millisecond},
		{input: "HARD", want: DifficultyHard, wantDelay: 1000 * time.Millisecond},
		{input: "nightmare", want: DifficultyMedium, wantDelay: 1500 * time.Millisecond, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDifficulty(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantDelay, got.StepDelay())
		})
	}
}

func TestDifficulty_Next(t *testing.T) {
	assert.Equal(t, DifficultyMedium, DifficultyEasy.Next())
	assert.Equal(t, DifficultyHard, DifficultyMedium.Next())
	assert.Equal(t, DifficultyEasy, DifficultyHard.Next())
}

func TestParseColor(t *testing.T) {
	for _, c := range Palette {
		got, err := ParseColor(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, got)
		assert.True(t, got.Valid())
	}

	_, err := ParseColor("purple")
	assert.Error(t, err)
	assert.False(t, Color(4).Valid())
	assert.False(t, Color(-1).Valid())
}

func TestStage_Extend(t *testing.T) {
	stage := NewStage(ColorRed, ColorBlue)
	require.Equal(t, 1, stage.LevelNumber)
	require.Equal(t, 2, stage.Len())

	before := stage.Sequence()
	stage.Extend(ColorGreen)

	assert.Equal(t, 2, stage.LevelNumber)
	assert.Equal(t, stage.LevelNumber+1, stage.Len())
	assert.Equal(t, before, stage.Sequence()[:len(before)])
	assert.Equal(t, ColorGreen, stage.At(2))
}

func TestStage_SequenceIsACopy(t *testing.T) {
	stage := NewStage(ColorRed, ColorBlue)
	sequence := stage.Sequence()
	sequence[0] = ColorYellow

	assert.Equal(t, ColorRed, stage.At(0))
}

func TestFlashState(t *testing.T) {
	_, lit := FlashIdle.Index()
	assert.False(t, lit)

	index, lit := Flashing(3).Index()
	assert.True(t, lit)
	assert.Equal(t, 3, index)

	assert.Equal(t, FlashIdle, Flashing(-2))
}

func TestGame_Copy(t *testing.T) {
	game := NewGame(NewPlayer("ada"), NewStage(ColorRed, ColorBlue), DifficultyHard, 3)
	copied := game.Copy()

	game.Player.AddPoints(1)
	game.Stage.Extend(ColorGreen)

	assert.Equal(t, game.ID, copied.ID)
	assert.Equal(t, 0, copied.Player.CurrentScore)
	assert.Equal(t, 2, copied.Stage.Len())
	assert.Equal(t, RoundStatePlayback, copied.State)
}
