package game

import (
	"fmt"
	"time"

	"github.com/cbodonnell/simon/client/input"
	"github.com/cbodonnell/simon/client/scenes"
	"github.com/cbodonnell/simon/pkg/clock"
	simon "github.com/cbodonnell/simon/pkg/game"
	gametypes "github.com/cbodonnell/simon/pkg/game/types"
	"github.com/cbodonnell/simon/pkg/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Sound is the part of the tone player the window controls.
type Sound interface {
	Play(c gametypes.Color)
	Muted() bool
	ToggleMuted() bool
}

// Game implements ebiten.Game interface, which has Update, Draw and Layout methods.
// It is also the display adapter of the session it drives.
type Game struct {
	// debug is a boolean value indicating whether debug mode is enabled.
	debug bool
	// session is the game session, updated on every tick.
	session *simon.Session
	clock   clock.TimeProvider
	sound   Sound
	// mode is the current game mode.
	mode GameMode
	// scene is the current scene.
	scene scenes.Scene

	playerName string
	difficulty gametypes.Difficulty

	gameOver       bool
	gameOverAt     time.Time
	finalScore     int
	isNewHighScore bool
	exit           bool
}

type GameMode int

const (
	GameModeMenu GameMode = iota
	GameModePlay
	GameModeOver
)

func (m GameMode) String() string {
	switch m {
	case GameModeMenu:
		return "Menu"
	case GameModePlay:
		return "Play"
	case GameModeOver:
		return "Over"
	}
	return "Unknown"
}

type NewGameOptions struct {
	Debug      bool
	Clock      clock.TimeProvider
	Sound      Sound
	PlayerName string
	Difficulty gametypes.Difficulty
}

var _ ebiten.Game = &Game{}
var _ simon.DisplayAdapter = &Game{}

// NewGame creates the window game. The session must be attached with
// SetSession before the first Update.
func NewGame(opts NewGameOptions) (*Game, error) {
	g := &Game{
		debug:      opts.Debug,
		clock:      opts.Clock,
		sound:      opts.Sound,
		playerName: opts.PlayerName,
		difficulty: opts.Difficulty,
	}
	if g.clock == nil {
		g.clock = clock.NewRealTimeProvider()
	}

	if err := g.loadMenu(); err != nil {
		return nil, fmt.Errorf("failed to load menu scene: %v", err)
	}

	return g, nil
}

// SetSession attaches the session driven by this window.
func (g *Game) SetSession(session *simon.Session) {
	g.session = session
}

func (g *Game) SetScene(scene scenes.Scene) error {
	if g.scene != nil {
		if err := g.scene.Destroy(); err != nil {
			return fmt.Errorf("failed to destroy previous scene: %v", err)
		}
	}

	g.scene = scene
	if err := g.scene.Init(); err != nil {
		return fmt.Errorf("failed to initialize scene: %v", err)
	}

	return nil
}

func (g *Game) loadMenu() error {
	opts := scenes.MenuSceneOptions{
		PlayerName: g.playerName,
		Difficulty: g.difficulty,
		OnStart: func(playerName string, difficulty gametypes.Difficulty) error {
			g.playerName = playerName
			g.difficulty = difficulty
			return g.startGame()
		},
	}
	if g.sound != nil {
		opts.Muted = g.sound.Muted()
		opts.OnToggleSound = g.sound.ToggleMuted
	}
	menu, err := scenes.NewMenuScene(opts)
	if err != nil {
		return fmt.Errorf("failed to create menu scene: %v", err)
	}
	if err := g.SetScene(menu); err != nil {
		return fmt.Errorf("failed to set menu scene: %v", err)
	}
	g.mode = GameModeMenu
	return nil
}

// startGame starts a session game and switches to the board.
func (g *Game) startGame() error {
	if g.session == nil {
		return fmt.Errorf("no session attached")
	}
	opts := scenes.BoardSceneOptions{
		Session:      g.session,
		Clock:        g.clock,
		ScreenWidth:  DefaultScreenWidth,
		ScreenHeight: DefaultScreenHeight,
	}
	if g.sound != nil {
		opts.Tones = g.sound
	}
	board, err := scenes.NewBoardScene(opts)
	if err != nil {
		return fmt.Errorf("failed to create board scene: %v", err)
	}
	if err := g.SetScene(board); err != nil {
		return fmt.Errorf("failed to set board scene: %v", err)
	}
	g.gameOver = false
	g.session.NewGame(g.playerName, g.difficulty)
	g.mode = GameModePlay
	return nil
}

func (g *Game) loadGameOver() error {
	gameOver, err := scenes.NewGameOverScene(scenes.GameOverSceneOptions{
		FinalScore:     g.finalScore,
		IsNewHighScore: g.isNewHighScore,
		OnNewGame: func() {
			if err := g.startGame(); err != nil {
				log.Error("Failed to start game: %v", err)
			}
		},
		OnExit: func() {
			g.exit = true
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create game over scene: %v", err)
	}
	if err := g.SetScene(gameOver); err != nil {
		return fmt.Errorf("failed to set game over scene: %v", err)
	}
	g.gameOver = false
	g.mode = GameModeOver
	return nil
}

func (g *Game) Update() error {
	if g.exit {
		return ebiten.Termination
	}

	if g.session != nil {
		if err := g.session.Update(g.clock.Now()); err != nil {
			return fmt.Errorf("failed to update session: %v", err)
		}
	}

	// Handle input
	if err := g.handleInput(); err != nil {
		return fmt.Errorf("failed to handle input: %v", err)
	}

	// Update the current scene
	if err := g.scene.Update(); err != nil {
		return fmt.Errorf("failed to update scene: %v", err)
	}

	return nil
}

func (g *Game) handleInput() error {
	if input.IsMuteJustPressed() && g.sound != nil && g.mode != GameModeMenu {
		muted := g.sound.ToggleMuted()
		log.Debug("Sound muted: %t", muted)
	}

	switch g.mode {
	case GameModePlay:
		if input.IsNegativeJustPressed() {
			g.leaveGame()
			if err := g.loadMenu(); err != nil {
				return fmt.Errorf("failed to load menu scene: %v", err)
			}
			break
		}
		if input.IsDifficultyJustPressed() {
			g.difficulty = g.difficulty.Next()
			if err := g.session.Enqueue(&simon.SetDifficultyCommand{Difficulty: g.difficulty}); err != nil {
				log.Error("Failed to enqueue difficulty change: %v", err)
			}
		}
		// the final board stays on screen for one step before the summary
		if g.gameOver && !g.clock.Now().Before(g.gameOverAt) {
			if err := g.loadGameOver(); err != nil {
				return fmt.Errorf("failed to load game over scene: %v", err)
			}
		}
	case GameModeOver:
		if input.IsPositiveJustPressed() {
			if err := g.startGame(); err != nil {
				return fmt.Errorf("failed to start game: %v", err)
			}
		} else if input.IsNegativeJustPressed() {
			if err := g.loadMenu(); err != nil {
				return fmt.Errorf("failed to load menu scene: %v", err)
			}
		}
	}

	return nil
}

// leaveGame stops the playback of an abandoned game so no flash or tone
// of it reaches the menu.
func (g *Game) leaveGame() {
	g.gameOver = false
	if g.session != nil {
		g.session.StopPlayback()
	}
}

func (g *Game) OnFlash(index int, color gametypes.Color) {
	log.Trace("Flash %d: %s", index, color)
}

func (g *Game) OnInputEnabled() {
	log.Trace("Input enabled")
}

func (g *Game) OnLevelChanged(levelNumber int) {
	log.Trace("Level %d", levelNumber)
}

func (g *Game) OnGameOver(finalScore int, isNewHighScore bool) {
	g.gameOver = true
	g.gameOverAt = g.clock.Now().Add(g.difficulty.StepDelay())
	g.finalScore = finalScore
	g.isNewHighScore = isNewHighScore
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
	if g.debug {
		g.drawDebugOverlay(screen)
	}
}

func (g *Game) drawDebugOverlay(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %0.1f", ebiten.ActualFPS()), 8, DefaultScreenHeight-48)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS: %0.1f", ebiten.ActualTPS()), 8, DefaultScreenHeight-32)
	if g.session != nil {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Mode: %s  Generation: %d", g.mode, g.session.Generation()), 8, DefaultScreenHeight-16)
	}
}

const (
	DefaultScreenWidth  = 640
	DefaultScreenHeight = 480
)

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return DefaultScreenWidth, DefaultScreenHeight
}
