package score

import (
	"context"
	"errors"
	"testing"

	mocks "github.com/cbodonnell/simon/mocks/github.com/cbodonnell/simon/pkg/repositories"
	"github.com/cbodonnell/simon/pkg/game/types"
	"github.com/cbodonnell/simon/pkg/repositories"
	"github.com/cbodonnell/simon/pkg/repositories/models"
	"github.com/cbodonnell/simon/pkg/workers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestKeeper_LoadInitialHighScore(t *testing.T) {
	tests := []struct {
		name  string
		setup func(m *mocks.Repository)
		want  int
	}{
		{
			name: "stored",
			setup: func(m *mocks.Repository) {
				m.EXPECT().LoadHighScore(mock.Anything).Return(&models.HighScore{Score: 12}, nil).Once()
			},
			want: 12,
		},
		{
			name: "absent",
			setup: func(m *mocks.Repository) {
				m.EXPECT().LoadHighScore(mock.Anything).Return(nil, &repositories.ErrNotFound{}).Once()
			},
			want: 0,
		},
		{
			name: "read failure",
			setup: func(m *mocks.Repository) {
				m.EXPECT().LoadHighScore(mock.Anything).Return(nil, errors.New("disk on fire")).Once()
			},
			want: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repository := mocks.NewRepository(t)
			tt.setup(repository)

			keeper := NewKeeper(NewKeeperOptions{Repository: repository})
			assert.Equal(t, tt.want, keeper.LoadInitialHighScore(context.Background()))
			assert.Equal(t, tt.want, keeper.Persisted())
		})
	}
}

func TestKeeper_LoadInitialHighScore_EmptyStore(t *testing.T) {
	keeper := NewKeeper(NewKeeperOptions{Repository: repositories.NewInMemoryRepository()})
	assert.Equal(t, 0, keeper.LoadInitialHighScore(context.Background()))
}

func newGame(score, highScore int, isNew bool) *types.Game {
	game := types.NewGame(types.NewPlayer("ada"), types.NewStage(types.ColorRed, types.ColorBlue), types.DifficultyMedium, highScore)
	game.Player.CurrentScore = score
	game.IsNewHighScore = isNew
	return game
}

func TestKeeper_OnHit_SendsToWorker(t *testing.T) {
	saveHighScoreChan := make(chan workers.SaveHighScoreRequest, 4)
	keeper := NewKeeper(NewKeeperOptions{
		Repository:        mocks.NewRepository(t),
		SaveHighScoreChan: saveHighScoreChan,
	})

	// not beaten yet
	keeper.OnHit(newGame(2, 5, false))
	assert.Len(t, saveHighScoreChan, 0)

	game := newGame(6, 6, true)
	keeper.OnHit(game)
	require.Len(t, saveHighScoreChan, 1)
	saveRequest := <-saveHighScoreChan
	assert.Equal(t, 6, saveRequest.Score)
	assert.Equal(t, game.ID, saveRequest.GameID)

	// game over at the same score does not write twice
	keeper.OnGameOver(game)
	assert.Len(t, saveHighScoreChan, 0)
	assert.Equal(t, 6, keeper.Persisted())
}

func TestKeeper_OnHit_FullChannelDoesNotBlock(t *testing.T) {
	saveHighScoreChan := make(chan workers.SaveHighScoreRequest)
	keeper := NewKeeper(NewKeeperOptions{
		Repository:        mocks.NewRepository(t),
		SaveHighScoreChan: saveHighScoreChan,
	})

	keeper.OnHit(newGame(1, 1, true))
	assert.Equal(t, 0, keeper.Persisted())
}

func TestKeeper_OnHit_InlineWriteFailureIsSwallowed(t *testing.T) {
	repository := mocks.NewRepository(t)
	repository.EXPECT().SaveHighScore(mock.Anything, 3).Return(errors.New("read-only")).Once()
	repository.EXPECT().SaveHighScore(mock.Anything, 4).Return(nil).Once()

	keeper := NewKeeper(NewKeeperOptions{Repository: repository})
	keeper.OnHit(newGame(3, 3, true))
	assert.Equal(t, 0, keeper.Persisted())

	keeper.OnHit(newGame(4, 4, true))
	assert.Equal(t, 4, keeper.Persisted())
}

func TestPersistenceError(t *testing.T) {
	cause := errors.New("boom")
	err := error(&PersistenceError{Op: "save", Err: cause})
	assert.True(t, IsPersistenceError(err))
	assert.ErrorIs(t, err, cause)
	assert.False(t, IsPersistenceError(cause))
}
