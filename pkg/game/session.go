package game

import (
	"context"
	"fmt"
	"time"

	"github.com/cbodonnell/simon/pkg/clock"
	"github.com/cbodonnell/simon/pkg/game/constants"
	"github.com/cbodonnell/simon/pkg/game/types"
	"github.com/cbodonnell/simon/pkg/log"
	"github.com/cbodonnell/simon/pkg/metrics"
	"github.com/cbodonnell/simon/pkg/queue"
	"github.com/cbodonnell/simon/pkg/state"
)

// ScoreKeeper is told about hits and game overs so it can persist new records.
type ScoreKeeper interface {
	OnHit(game *types.Game)
	OnGameOver(game *types.Game)
}

type nopScoreKeeper struct{}

func (nopScoreKeeper) OnHit(*types.Game)      {}
func (nopScoreKeeper) OnGameOver(*types.Game) {}

// Session owns the engine, the running playback and the guess cursor.
// Its methods must be called from a single control goroutine; other
// goroutines talk to it through Enqueue.
type Session struct {
	engine       *Engine
	scheduler    *SequenceScheduler
	scoreKeeper  ScoreKeeper
	display      DisplayAdapter
	clock        clock.TimeProvider
	commandQueue queue.Queue
	stateManager state.StateManager

	cursor        int
	flashDuration time.Duration
	loopInterval  time.Duration
	afterUpdate   func(now time.Time)
	done          chan struct{}
}

// NewSessionOptions contains options for creating a new Session.
type NewSessionOptions struct {
	Engine       *Engine
	ScoreKeeper  ScoreKeeper
	Display      DisplayAdapter
	Clock        clock.TimeProvider
	CommandQueue queue.Queue
	// StateManager receives a snapshot after every change. Optional.
	StateManager  state.StateManager
	FlashDuration time.Duration
	LoopInterval  time.Duration
	// AfterUpdate runs on the control goroutine after every update of the
	// Start loop. Front ends render and hand over input here.
	AfterUpdate func(now time.Time)
}

func NewSession(opts NewSessionOptions) *Session {
	s := &Session{
		engine:        opts.Engine,
		scoreKeeper:   opts.ScoreKeeper,
		display:       opts.Display,
		clock:         opts.Clock,
		commandQueue:  opts.CommandQueue,
		stateManager:  opts.StateManager,
		flashDuration: opts.FlashDuration,
		loopInterval:  opts.LoopInterval,
		afterUpdate:   opts.AfterUpdate,
		done:          make(chan struct{}),
	}
	if s.engine == nil {
		s.engine = NewEngine(NewEngineOptions{})
	}
	if s.scoreKeeper == nil {
		s.scoreKeeper = nopScoreKeeper{}
	}
	if s.display == nil {
		s.display = NopDisplay{}
	}
	if s.clock == nil {
		s.clock = clock.NewRealTimeProvider()
	}
	if s.commandQueue == nil {
		s.commandQueue = queue.NewInMemoryQueue(constants.CommandQueueSize)
	}
	if s.flashDuration <= 0 {
		s.flashDuration = constants.FlashDuration
	}
	if s.loopInterval <= 0 {
		s.loopInterval = constants.SessionLoopInterval
	}
	return s
}

// Start runs the session loop until ctx is cancelled or a ShutdownCommand is applied.
func (s *Session) Start(ctx context.Context) error {
	ticker := time.NewTicker(s.loopInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-s.done:
			return nil
		case <-ticker.C:
			now := s.clock.Now()
			if err := s.Update(now); err != nil {
				log.Error("Failed to update session: %v", err)
			}
			if s.afterUpdate != nil {
				s.afterUpdate(now)
			}
		}
	}
}

// Done is closed once a ShutdownCommand was applied.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// Update applies queued commands and then advances the running playback to now.
func (s *Session) Update(now time.Time) error {
	if err := s.processCommands(); err != nil {
		return err
	}
	if s.scheduler != nil {
		s.scheduler.Tick(now, s)
	}
	return nil
}

// Enqueue hands a command to the control goroutine. Safe for concurrent use.
func (s *Session) Enqueue(command interface{}) error {
	if err := s.commandQueue.Enqueue(command); err != nil {
		return fmt.Errorf("failed to enqueue %T: %w", command, err)
	}
	return nil
}

// NewGame replaces the live game and starts playback of its first sequence.
// A playback still running for the previous game is cancelled.
func (s *Session) NewGame(playerName string, difficulty types.Difficulty) *types.Game {
	s.cancelPlayback()

	game := s.engine.NewGame(playerName, difficulty)
	s.cursor = 0
	metrics.GamesStarted.WithLabelValues(difficulty.String()).Inc()
	log.Info("Started game %s for %s on %s", game.ID, playerName, difficulty)

	s.display.OnLevelChanged(game.Stage.LevelNumber)
	s.startPlayback()
	s.publish()
	return game
}

// SubmitGuess evaluates one guess. cursor must be the session's current cursor.
func (s *Session) SubmitGuess(cursor int, color types.Color) (GuessResult, error) {
	game := s.engine.Game()
	if game == nil {
		return GuessMismatch, ErrNoGame
	}
	if game.State == types.RoundStateListening && cursor != s.cursor {
		if cursor < 0 || cursor >= game.Stage.Len() {
			return GuessMismatch, &IndexOutOfRangeError{Cursor: cursor, Length: game.Stage.Len()}
		}
		return GuessMismatch, &InvalidTransitionError{
			Op:    fmt.Sprintf("submitGuess(cursor=%d, expected=%d)", cursor, s.cursor),
			State: game.State,
		}
	}

	result, err := s.engine.CheckGuess(cursor, color)
	if err != nil {
		return result, err
	}
	metrics.Guesses.WithLabelValues(result.String()).Inc()

	if result == GuessMismatch {
		if err := s.endGame(); err != nil {
			return result, err
		}
		return result, nil
	}

	if err := s.engine.RecordHit(); err != nil {
		return result, err
	}
	s.scoreKeeper.OnHit(game)
	s.cursor++

	if s.cursor == game.Stage.Len() {
		if err := s.levelUp(); err != nil {
			return result, err
		}
	}
	s.publish()
	return result, nil
}

// SetDifficulty changes the difficulty of the live game from the next playback on.
func (s *Session) SetDifficulty(difficulty types.Difficulty) {
	s.engine.SetDifficulty(difficulty)
	s.publish()
}

// StopPlayback cancels the running playback without starting another one.
// The live game stays where it is until the next NewGame.
func (s *Session) StopPlayback() {
	if s.scheduler != nil {
		log.Debug("Stopped playback of generation %d", s.scheduler.Generation())
	}
	s.cancelPlayback()
}

// Highlight forwards a flash to the display unless the generation is stale.
func (s *Session) Highlight(generation uint64, index int, color types.Color) {
	if s.isStale(generation, "highlight") {
		return
	}
	s.display.OnFlash(index, color)
}

// PlaybackComplete opens the listening phase unless the generation is stale.
func (s *Session) PlaybackComplete(generation uint64) {
	if s.isStale(generation, "playbackComplete") {
		return
	}
	if err := s.engine.BeginListening(); err != nil {
		log.Error("Failed to begin listening: %v", err)
		return
	}
	s.cursor = 0
	s.display.OnInputEnabled()
	s.publish()
}

// Cursor returns the index the next guess is checked against.
func (s *Session) Cursor() int {
	return s.cursor
}

// Generation returns the token of the current playback generation.
func (s *Session) Generation() uint64 {
	return s.engine.Generation()
}

// Flash returns which sequence element is lit right now.
func (s *Session) Flash() types.FlashState {
	if s.scheduler == nil {
		return types.FlashIdle
	}
	return s.scheduler.Flash()
}

// Game returns a copy of the live game, or nil before the first game.
func (s *Session) Game() *types.Game {
	game := s.engine.Game()
	if game == nil {
		return nil
	}
	return game.Copy()
}

// HighScore returns the best score known to the session.
func (s *Session) HighScore() int {
	return s.engine.HighScore()
}

func (s *Session) levelUp() error {
	if err := s.engine.CompleteLevel(); err != nil {
		return err
	}
	metrics.LevelsCompleted.Inc()
	s.cursor = 0
	if err := s.engine.LevelUp(); err != nil {
		return err
	}

	game := s.engine.Game()
	log.Debug("Game %s reached level %d", game.ID, game.Stage.LevelNumber)
	s.display.OnLevelChanged(game.Stage.LevelNumber)
	s.startPlayback()
	return nil
}

func (s *Session) endGame() error {
	if err := s.engine.EndGame(); err != nil {
		return err
	}
	s.cancelPlayback()

	game := s.engine.Game()
	s.scoreKeeper.OnGameOver(game)
	log.Info("Game %s over at level %d with %d points (new high score: %t)",
		game.ID, game.Stage.LevelNumber, game.Player.CurrentScore, game.IsNewHighScore)
	s.display.OnGameOver(game.Player.CurrentScore, game.IsNewHighScore)
	s.publish()
	return nil
}

func (s *Session) startPlayback() {
	game := s.engine.Game()
	s.scheduler = NewSequenceScheduler(NewSequenceSchedulerOptions{
		Generation:    game.Generation,
		Sequence:      game.Stage.Sequence(),
		Delay:         game.Difficulty.StepDelay(),
		FlashDuration: s.flashDuration,
		Start:         s.clock.Now(),
	})
}

func (s *Session) cancelPlayback() {
	if s.scheduler != nil {
		s.scheduler.Cancel()
		s.scheduler = nil
	}
}

func (s *Session) isStale(generation uint64, event string) bool {
	if generation == s.engine.Generation() {
		return false
	}
	metrics.StaleEventsDropped.Inc()
	log.Trace("Dropped stale %s event of generation %d (live generation %d)", event, generation, s.engine.Generation())
	return true
}

// processCommands applies all pending commands in the queue in arrival order.
func (s *Session) processCommands() error {
	pending, err := s.commandQueue.ReadAllMessages()
	if err != nil {
		return fmt.Errorf("failed to read commands: %v", err)
	}
	for _, item := range pending {
		switch command := item.(type) {
		case *NewGameCommand:
			s.NewGame(command.PlayerName, command.Difficulty)
		case *GuessCommand:
			game := s.engine.Game()
			if game == nil || game.State != types.RoundStateListening {
				log.Debug("Ignoring %s guess outside the listening phase", command.Color)
				continue
			}
			if _, err := s.SubmitGuess(s.cursor, command.Color); err != nil {
				log.Error("Failed to submit guess: %v", err)
			}
		case *SetDifficultyCommand:
			s.SetDifficulty(command.Difficulty)
		case *ShutdownCommand:
			select {
			case <-s.done:
			default:
				close(s.done)
			}
			return nil
		default:
			log.Error("Unhandled command type: %T", command)
		}
	}
	return nil
}

func (s *Session) publish() {
	if s.stateManager == nil {
		return
	}
	game := s.engine.Game()
	if game == nil {
		return
	}
	if err := s.stateManager.Set(context.Background(), game); err != nil {
		log.Error("Failed to publish game snapshot: %v", err)
	}
}
