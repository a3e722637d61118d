package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	clientgame "github.com/cbodonnell/simon/client/game"
	"github.com/cbodonnell/simon/pkg/app"
	"github.com/cbodonnell/simon/pkg/config"
	"github.com/cbodonnell/simon/pkg/log"
	"github.com/cbodonnell/simon/pkg/version"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, err := config.Load("simon", os.Args[1:])
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	logger := log.New(os.Stdout, "", log.DefaultLoggerFlag, cfg.LogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", cfg.LogLevel)

	log.Info("Starting simon version %s", version.Get())
	ctx := context.Background()

	a, err := app.New(ctx, cfg)
	if err != nil {
		panic(fmt.Sprintf("Failed to start: %v", err))
	}
	defer a.Close()

	g, err := clientgame.NewGame(clientgame.NewGameOptions{
		Debug:      cfg.LogLevel >= log.LogLevelDebug,
		Sound:      a.TonePlayer(),
		PlayerName: cfg.PlayerName,
		Difficulty: cfg.Difficulty,
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to create game: %v", err))
	}
	g.SetSession(a.NewSession(g, nil))

	ebiten.SetWindowSize(clientgame.DefaultScreenWidth, clientgame.DefaultScreenHeight)
	ebiten.SetWindowTitle("Simon")
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Error("Failed to run game: %v", err)
	}
}
