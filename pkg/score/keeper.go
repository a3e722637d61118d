package score

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cbodonnell/simon/pkg/game/types"
	"github.com/cbodonnell/simon/pkg/log"
	"github.com/cbodonnell/simon/pkg/metrics"
	"github.com/cbodonnell/simon/pkg/repositories"
	"github.com/cbodonnell/simon/pkg/workers"
)

// inlineWriteTimeout bounds a write made without a save channel.
const inlineWriteTimeout = 2 * time.Second

// PersistenceError wraps a failed high score read or write. It is logged
// and counted, never returned to gameplay.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to %s high score: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

func IsPersistenceError(err error) bool {
	var target *PersistenceError
	return errors.As(err, &target)
}

// Keeper decides when a high score is written and reads the stored one at startup.
type Keeper struct {
	repository        repositories.Repository
	saveHighScoreChan chan<- workers.SaveHighScoreRequest
	// persisted is the highest score handed to storage so far
	persisted int
}

type NewKeeperOptions struct {
	Repository repositories.Repository
	// SaveHighScoreChan hands writes to a SaveHighScoreWorker. When nil the
	// keeper writes through Repository itself.
	SaveHighScoreChan chan<- workers.SaveHighScoreRequest
}

func NewKeeper(opts NewKeeperOptions) *Keeper {
	return &Keeper{
		repository:        opts.Repository,
		saveHighScoreChan: opts.SaveHighScoreChan,
	}
}

// LoadInitialHighScore reads the stored high score. A missing record or a
// failed read both yield 0.
func (k *Keeper) LoadInitialHighScore(ctx context.Context) int {
	highScore, err := k.repository.LoadHighScore(ctx)
	if err != nil {
		if repositories.IsNotFound(err) {
			log.Info("No high score recorded yet")
			return 0
		}
		metrics.PersistenceFailures.Inc()
		log.Error("%v", &PersistenceError{Op: "load", Err: err})
		return 0
	}

	k.persisted = highScore.Score
	metrics.HighScore.Set(float64(highScore.Score))
	log.Info("Loaded high score %d", highScore.Score)
	return highScore.Score
}

// OnHit persists the game's high score if the last hit just raised it.
func (k *Keeper) OnHit(game *types.Game) {
	k.persistIfBeaten(game)
}

// OnGameOver makes sure the final high score of the game was handed to storage.
func (k *Keeper) OnGameOver(game *types.Game) {
	k.persistIfBeaten(game)
}

func (k *Keeper) persistIfBeaten(game *types.Game) {
	if !game.IsNewHighScore || game.HighScore <= k.persisted {
		return
	}
	metrics.HighScore.Set(float64(game.HighScore))

	saveRequest := workers.SaveHighScoreRequest{
		Timestamp: time.Now().UnixMilli(),
		GameID:    game.ID,
		Score:     game.HighScore,
	}

	if k.saveHighScoreChan == nil {
		ctx, cancel := context.WithTimeout(context.Background(), inlineWriteTimeout)
		defer cancel()
		if err := k.repository.SaveHighScore(ctx, saveRequest.Score); err != nil {
			metrics.PersistenceFailures.Inc()
			log.Error("%v", &PersistenceError{Op: "save", Err: err})
			return
		}
		k.persisted = saveRequest.Score
		return
	}

	select {
	case k.saveHighScoreChan <- saveRequest:
		k.persisted = saveRequest.Score
	default:
		metrics.PersistenceFailures.Inc()
		log.Warn("Save channel full, dropped high score %d", saveRequest.Score)
	}
}

// Persisted returns the highest score handed to storage.
func (k *Keeper) Persisted() int {
	return k.persisted
}
