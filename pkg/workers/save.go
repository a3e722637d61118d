package workers

import (
	"context"
	"time"

	"github.com/cbodonnell/simon/pkg/log"
	"github.com/cbodonnell/simon/pkg/metrics"
	"github.com/cbodonnell/simon/pkg/repositories"
	"github.com/google/uuid"
)

// flushTimeout bounds the final write made after the worker's context is done.
const flushTimeout = 5 * time.Second

type SaveHighScoreWorker struct {
	repository        repositories.Repository
	saveHighScoreChan <-chan SaveHighScoreRequest
}

type NewSaveHighScoreWorkerOptions struct {
	Repository        repositories.Repository
	SaveHighScoreChan <-chan SaveHighScoreRequest
}

type SaveHighScoreRequest struct {
	Timestamp int64
	GameID    uuid.UUID
	Score     int
}

// NewSaveHighScoreWorker creates a new SaveHighScoreWorker.
// The worker writes high scores sent by the game loop to the repository
// so the loop never waits on storage.
func NewSaveHighScoreWorker(opts NewSaveHighScoreWorkerOptions) *SaveHighScoreWorker {
	return &SaveHighScoreWorker{
		repository:        opts.Repository,
		saveHighScoreChan: opts.SaveHighScoreChan,
	}
}

// Start processes save requests until ctx is done or the channel is closed.
// Requests still pending when ctx is done are collapsed into one final write.
func (w *SaveHighScoreWorker) Start(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			w.flush()
			return
		case saveRequest, ok := <-w.saveHighScoreChan:
			if !ok {
				return
			}
			w.saveHighScore(ctx, saveRequest)
		}
	}
}

func (w *SaveHighScoreWorker) flush() {
	var best *SaveHighScoreRequest
	for {
		select {
		case saveRequest, ok := <-w.saveHighScoreChan:
			if !ok {
				w.saveBest(best)
				return
			}
			if best == nil || saveRequest.Score > best.Score {
				r := saveRequest
				best = &r
			}
		default:
			w.saveBest(best)
			return
		}
	}
}

func (w *SaveHighScoreWorker) saveBest(best *SaveHighScoreRequest) {
	if best == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), flushTimeout)
	defer cancel()
	w.saveHighScore(ctx, *best)
}

func (w *SaveHighScoreWorker) saveHighScore(ctx context.Context, saveRequest SaveHighScoreRequest) {
	err := w.repository.SaveHighScore(ctx, saveRequest.Score)
	if err != nil {
		metrics.PersistenceFailures.Inc()
		log.Error("Failed to save high score %d of game %s: %v", saveRequest.Score, saveRequest.GameID, err)
		return
	}
	log.Debug("Saved high score %d of game %s", saveRequest.Score, saveRequest.GameID)
}
