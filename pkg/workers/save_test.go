package workers

import (
	"context"
	"errors"
	"testing"
	"time"

	mocks "github.com/cbodonnell/simon/mocks/github.com/cbodonnell/simon/pkg/repositories"
	"github.com/cbodonnell/simon/pkg/repositories"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSaveHighScoreWorker_SavesRequests(t *testing.T) {
	repository := repositories.NewInMemoryRepository()
	saveHighScoreChan := make(chan SaveHighScoreRequest, 4)
	worker := NewSaveHighScoreWorker(NewSaveHighScoreWorkerOptions{
		Repository:        repository,
		SaveHighScoreChan: saveHighScoreChan,
	})

	done := make(chan struct{})
	go func() {
		worker.Start(context.Background())
		close(done)
	}()

	saveHighScoreChan <- SaveHighScoreRequest{GameID: uuid.New(), Score: 3}
	saveHighScoreChan <- SaveHighScoreRequest{GameID: uuid.New(), Score: 5}
	close(saveHighScoreChan)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop after channel was closed")
	}

	highScore, err := repository.LoadHighScore(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, highScore.Score)
}

func TestSaveHighScoreWorker_FlushesBestPendingOnCancel(t *testing.T) {
	repository := mocks.NewRepository(t)
	repository.EXPECT().SaveHighScore(mock.Anything, 9).Return(nil).Once()

	saveHighScoreChan := make(chan SaveHighScoreRequest, 4)
	saveHighScoreChan <- SaveHighScoreRequest{Score: 7}
	saveHighScoreChan <- SaveHighScoreRequest{Score: 9}
	saveHighScoreChan <- SaveHighScoreRequest{Score: 8}

	worker := NewSaveHighScoreWorker(NewSaveHighScoreWorkerOptions{
		Repository:        repository,
		SaveHighScoreChan: saveHighScoreChan,
	})

	worker.flush()
	assert.Len(t, saveHighScoreChan, 0)
}

func TestSaveHighScoreWorker_FailureIsNotFatal(t *testing.T) {
	repository := mocks.NewRepository(t)
	repository.EXPECT().SaveHighScore(mock.Anything, 1).Return(errors.New("locked")).Once()
	repository.EXPECT().SaveHighScore(mock.Anything, 2).Return(nil).Once()

	worker := NewSaveHighScoreWorker(NewSaveHighScoreWorkerOptions{
		Repository: repository,
	})
	worker.saveHighScore(context.Background(), SaveHighScoreRequest{Score: 1})
	worker.saveHighScore(context.Background(), SaveHighScoreRequest{Score: 2})
}
