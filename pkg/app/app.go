package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/cbodonnell/simon/pkg/api"
	"github.com/cbodonnell/simon/pkg/audio"
	"github.com/cbodonnell/simon/pkg/clock"
	"github.com/cbodonnell/simon/pkg/config"
	"github.com/cbodonnell/simon/pkg/game"
	"github.com/cbodonnell/simon/pkg/game/constants"
	"github.com/cbodonnell/simon/pkg/log"
	"github.com/cbodonnell/simon/pkg/queue"
	"github.com/cbodonnell/simon/pkg/repositories"
	"github.com/cbodonnell/simon/pkg/score"
	"github.com/cbodonnell/simon/pkg/state"
	"github.com/cbodonnell/simon/pkg/workers"
)

const shutdownTimeout = 5 * time.Second

// App holds everything a front end needs around the game session:
// storage, the score keeper, the save worker, the status API and sound.
type App struct {
	config       *config.Config
	repository   repositories.Repository
	keeper       *score.Keeper
	stateManager *state.InMemoryStateManager
	apiServer    *api.APIServer
	tonePlayer   *audio.TonePlayer
	highScore    int

	cancelWorker context.CancelFunc
	workerDone   sync.WaitGroup
}

// New opens the repository, loads the stored high score and starts the
// background workers described by cfg.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	repository, err := repositories.NewRepositoryFromURL(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create repository: %v", err)
	}

	saveHighScoreChan := make(chan workers.SaveHighScoreRequest, constants.SaveHighScoreChannelSize)
	keeper := score.NewKeeper(score.NewKeeperOptions{
		Repository:        repository,
		SaveHighScoreChan: saveHighScoreChan,
	})

	a := &App{
		config:       cfg,
		repository:   repository,
		keeper:       keeper,
		stateManager: state.NewInMemoryStateManager(),
		highScore:    keeper.LoadInitialHighScore(ctx),
	}

	saveHighScoreWorker := workers.NewSaveHighScoreWorker(workers.NewSaveHighScoreWorkerOptions{
		Repository:        repository,
		SaveHighScoreChan: saveHighScoreChan,
	})
	workerCtx, cancel := context.WithCancel(context.Background())
	a.cancelWorker = cancel
	a.workerDone.Add(1)
	go func() {
		defer a.workerDone.Done()
		saveHighScoreWorker.Start(workerCtx)
	}()

	if cfg.APIPort != 0 {
		a.apiServer = api.NewAPIServer(api.NewAPIServerOptions{
			Port:         cfg.APIPort,
			Repository:   repository,
			StateManager: a.stateManager,
		})
		go a.apiServer.Start()
	}

	a.tonePlayer = audio.NewTonePlayer(audio.NewTonePlayerOptions{
		Duration: constants.FlashDuration,
		Muted:    !cfg.Sound,
	})
	// A muted player opens the speaker on its first unmute.
	if cfg.Sound {
		if err := a.tonePlayer.Init(); err != nil {
			log.Warn("Failed to open speaker, playing without sound: %v", err)
		}
	}

	return a, nil
}

// NewSession creates the game session rendered by display. Flashes are
// also sounded by the tone player. afterUpdate is optional and runs after
// every update of the session loop.
func (a *App) NewSession(display game.DisplayAdapter, afterUpdate func(now time.Time)) *game.Session {
	return game.NewSession(game.NewSessionOptions{
		Engine: game.NewEngine(game.NewEngineOptions{
			HighScore: a.highScore,
		}),
		ScoreKeeper:  a.keeper,
		Display:      game.MultiDisplay{display, audio.NewToneDisplay(a.tonePlayer)},
		Clock:        clock.NewRealTimeProvider(),
		CommandQueue: queue.NewInMemoryQueue(constants.CommandQueueSize),
		StateManager: a.stateManager,
		LoopInterval: a.config.TickInterval,
		AfterUpdate:  afterUpdate,
	})
}

func (a *App) HighScore() int {
	return a.highScore
}

func (a *App) TonePlayer() *audio.TonePlayer {
	return a.tonePlayer
}

func (a *App) StateManager() state.StateManager {
	return a.stateManager
}

// Close flushes pending high scores and releases every resource.
func (a *App) Close() {
	a.tonePlayer.Close()

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if a.apiServer != nil {
		if err := a.apiServer.Stop(ctx); err != nil {
			log.Error("Failed to stop API server: %v", err)
		}
	}

	a.cancelWorker()
	a.workerDone.Wait()

	if err := a.repository.Close(ctx); err != nil {
		log.Error("Failed to close repository: %v", err)
	}
}
