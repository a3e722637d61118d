package game

import (
	"testing"
	"time"

	"github.com/cbodonnell/simon/pkg/clock"
	simon "github.com/cbodonnell/simon/pkg/game"
	gametypes "github.com/cbodonnell/simon/pkg/game/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type flashRecorder struct {
	simon.NopDisplay
	flashes []gametypes.Color
}

func (r *flashRecorder) OnFlash(index int, color gametypes.Color) {
	r.flashes = append(r.flashes, color)
}

func TestGame_LeaveGameStopsPlayback(t *testing.T) {
	mockClock := clock.NewMockTimeProvider(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	tones := &flashRecorder{}
	g := &Game{clock: mockClock, difficulty: gametypes.DifficultyHard}
	g.SetSession(simon.NewSession(simon.NewSessionOptions{
		Engine: simon.NewEngine(simon.NewEngineOptions{
			ColorSource: simon.NewCycleColorSource(gametypes.ColorRed, gametypes.ColorGreen),
		}),
		Display: simon.MultiDisplay{g, tones},
		Clock:   mockClock,
	}))

	g.session.NewGame("ada", gametypes.DifficultyHard)
	require.NoError(t, g.session.Update(mockClock.Advance(time.Second)))
	assert.Equal(t, []gametypes.Color{gametypes.ColorRed}, tones.flashes)

	g.leaveGame()
	for i := 0; i < 5; i++ {
		require.NoError(t, g.session.Update(mockClock.Advance(time.Second)))
	}
	assert.Equal(t, []gametypes.Color{gametypes.ColorRed}, tones.flashes)
	assert.Equal(t, gametypes.FlashIdle, g.session.Flash())
}

func TestGame_OnGameOverWaitsOneStep(t *testing.T) {
	mockClock := clock.NewMockTimeProvider(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	g := &Game{clock: mockClock, difficulty: gametypes.DifficultyEasy}

	g.OnGameOver(3, true)
	assert.True(t, g.gameOver)
	assert.Equal(t, 3, g.finalScore)
	assert.True(t, g.isNewHighScore)
	assert.Equal(t, mockClock.Now().Add(2*time.Second), g.gameOverAt)

	g.leaveGame()
	assert.False(t, g.gameOver)
}
