package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/cbodonnell/simon/pkg/clock"
	"github.com/cbodonnell/simon/pkg/game"
	"github.com/cbodonnell/simon/pkg/game/constants"
	"github.com/cbodonnell/simon/pkg/game/types"
	"github.com/cbodonnell/simon/pkg/log"
	"github.com/gdamore/tcell/v2"
)

const (
	buttonWidth  = 14
	buttonHeight = 5
	boardLeft    = 2
	boardTop     = 7
)

var (
	dimColors = map[types.Color]tcell.Color{
		types.ColorRed:    tcell.ColorMaroon,
		types.ColorBlue:   tcell.ColorNavy,
		types.ColorYellow: tcell.ColorOlive,
		types.ColorGreen:  tcell.ColorGreen,
	}
	litColors = map[types.Color]tcell.Color{
		types.ColorRed:    tcell.ColorRed,
		types.ColorBlue:   tcell.ColorBlue,
		types.ColorYellow: tcell.ColorYellow,
		types.ColorGreen:  tcell.ColorLime,
	}
)

// Sound is the part of the tone player the terminal controls.
type Sound interface {
	Play(c types.Color)
	ToggleMuted() bool
}

// App plays the game in a terminal. It is the display adapter of its
// session and renders from the session's loop.
type App struct {
	screen  tcell.Screen
	session *game.Session
	clock   clock.TimeProvider
	sound   Sound

	playerName string
	difficulty types.Difficulty

	// commands carries key commands from the event goroutine to the control goroutine
	commands chan interface{}
	lit      types.Color
	litUntil time.Time
	message  string
}

type NewAppOptions struct {
	Screen     tcell.Screen
	Clock      clock.TimeProvider
	Sound      Sound
	PlayerName string
	Difficulty types.Difficulty
}

var _ game.DisplayAdapter = &App{}

// NewApp creates the terminal app. The session must be attached with
// SetSession before Run, and must call Tick after every update.
func NewApp(opts NewAppOptions) *App {
	a := &App{
		screen:     opts.Screen,
		clock:      opts.Clock,
		sound:      opts.Sound,
		playerName: opts.PlayerName,
		difficulty: opts.Difficulty,
		message:    "Press N to start",
		commands:   make(chan interface{}, constants.CommandQueueSize),
	}
	if a.clock == nil {
		a.clock = clock.NewRealTimeProvider()
	}
	if a.playerName == "" {
		a.playerName = "player"
	}
	return a
}

func (a *App) SetSession(session *game.Session) {
	a.session = session
}

// Run runs the session loop on the terminal until ctx is done or the player quits.
func (a *App) Run(ctx context.Context) error {
	if a.session == nil {
		return fmt.Errorf("no session attached")
	}
	if err := a.screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %v", err)
	}
	defer a.screen.Fini()
	a.screen.SetStyle(tcell.StyleDefault)

	go a.pollEvents()

	return a.session.Start(ctx)
}

// Tick hands pending key commands to the session and redraws. It is the
// session's AfterUpdate hook and runs on the control goroutine.
func (a *App) Tick(now time.Time) {
	for {
		select {
		case command := <-a.commands:
			a.handle(command)
		default:
			a.render()
			return
		}
	}
}

// handle queues one command. A guess lights and sounds its button first,
// while the state it was made in is still live.
func (a *App) handle(command interface{}) {
	if guess, ok := command.(*game.GuessCommand); ok {
		a.press(guess.Color)
	}
	if err := a.session.Enqueue(command); err != nil {
		log.Error("Failed to enqueue command: %v", err)
	}
}

// pollEvents turns terminal events into commands. It returns once the
// screen is finalized.
func (a *App) pollEvents() {
	difficulty := a.difficulty
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			a.screen.Sync()
		case *tcell.EventKey:
			var command interface{}
			command, difficulty = commandForKey(ev, a.playerName, difficulty)
			if command == nil {
				if ev.Key() == tcell.KeyRune && (ev.Rune() == 'm' || ev.Rune() == 'M') && a.sound != nil {
					log.Debug("Sound muted: %t", a.sound.ToggleMuted())
				}
				continue
			}
			select {
			case a.commands <- command:
			default:
				log.Warn("Dropped %T, input is not being read", command)
			}
		}
	}
}

// commandForKey maps a key press to a session command. It returns the
// difficulty for the next new game, which D cycles.
func commandForKey(ev *tcell.EventKey, playerName string, difficulty types.Difficulty) (interface{}, types.Difficulty) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return &game.ShutdownCommand{}, difficulty
	case tcell.KeyRune:
	default:
		return nil, difficulty
	}

	switch r := ev.Rune(); r {
	case 'q', 'Q':
		return &game.ShutdownCommand{}, difficulty
	case 'n', 'N':
		return &game.NewGameCommand{PlayerName: playerName, Difficulty: difficulty}, difficulty
	case 'd', 'D':
		next := difficulty.Next()
		return &game.SetDifficultyCommand{Difficulty: next}, next
	case '1', '2', '3', '4':
		return &game.GuessCommand{Color: types.Palette[r-'1']}, difficulty
	default:
		c, err := types.ParseColor(string(r))
		if err != nil {
			return nil, difficulty
		}
		return &game.GuessCommand{Color: c}, difficulty
	}
}

func (a *App) OnFlash(index int, color types.Color) {
	a.light(color)
}

func (a *App) OnInputEnabled() {
	a.message = "Your turn"
}

func (a *App) OnLevelChanged(levelNumber int) {
	a.message = fmt.Sprintf("Level %d: watch", levelNumber)
}

func (a *App) OnGameOver(finalScore int, isNewHighScore bool) {
	a.message = fmt.Sprintf("Game over! Total points: %d", finalScore)
	if isNewHighScore {
		a.message += " (new high score)"
	}
	a.message += ". Press N to play again"
}

// press lights and sounds a guessed button while the session is listening.
func (a *App) press(c types.Color) {
	snapshot := a.session.Game()
	if snapshot == nil || snapshot.State != types.RoundStateListening {
		return
	}
	a.light(c)
	if a.sound != nil {
		a.sound.Play(c)
	}
}

func (a *App) light(c types.Color) {
	a.lit = c
	a.litUntil = a.clock.Now().Add(constants.FlashDuration)
}

func (a *App) render() {
	a.screen.Clear()

	snapshot := a.session.Game()
	if snapshot != nil {
		a.drawText(0, 0, tcell.StyleDefault.Bold(true), fmt.Sprintf("Player: %s", snapshot.Player.Name))
		a.drawText(0, 1, tcell.StyleDefault, fmt.Sprintf("Level: %d (%s)", snapshot.Stage.LevelNumber, snapshot.Difficulty))
		a.drawText(0, 2, tcell.StyleDefault, fmt.Sprintf("Points: %d", snapshot.Player.CurrentScore))
		a.drawText(0, 3, tcell.StyleDefault, fmt.Sprintf("High score: %d", snapshot.HighScore))
	} else {
		a.drawText(0, 0, tcell.StyleDefault.Bold(true), "SIMON")
		a.drawText(0, 3, tcell.StyleDefault, fmt.Sprintf("High score: %d", a.session.HighScore()))
	}
	a.drawText(0, 5, tcell.StyleDefault, a.message)

	now := a.clock.Now()
	for i, c := range types.Palette {
		lit := c == a.lit && now.Before(a.litUntil)
		a.drawButton(boardLeft+(i%2)*(buttonWidth+2), boardTop+(i/2)*(buttonHeight+1), i+1, c, lit)
	}
	a.drawText(0, boardTop+2*(buttonHeight+1), tcell.StyleDefault.Dim(true), "1-4 or r/b/y/g guess, N new game, D difficulty, M mute, Q quit")

	a.screen.Show()
}

func (a *App) drawButton(x, y, key int, c types.Color, lit bool) {
	bg := dimColors[c]
	if lit {
		bg = litColors[c]
	}
	style := tcell.StyleDefault.Background(bg).Foreground(tcell.ColorWhite)
	for row := 0; row < buttonHeight; row++ {
		for col := 0; col < buttonWidth; col++ {
			a.screen.SetContent(x+col, y+row, ' ', nil, style)
		}
	}
	a.drawText(x+1, y+buttonHeight/2, style, fmt.Sprintf("%d %s", key, c))
}

func (a *App) drawText(x, y int, style tcell.Style, text string) {
	for i, r := range text {
		a.screen.SetContent(x+i, y, r, nil, style)
	}
}
