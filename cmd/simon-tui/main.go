package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/cbodonnell/simon/client/tui"
	"github.com/cbodonnell/simon/pkg/app"
	"github.com/cbodonnell/simon/pkg/config"
	"github.com/cbodonnell/simon/pkg/log"
	"github.com/cbodonnell/simon/pkg/version"
	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg, err := config.Load("simon-tui", os.Args[1:])
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// the terminal belongs to the board, so logs go to stderr
	logger := log.New(os.Stderr, "", log.DefaultLoggerFlag, cfg.LogLevel)
	log.SetDefaultLogger(logger)

	log.Info("Starting simon-tui version %s", version.Get())
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg)
	if err != nil {
		panic(fmt.Sprintf("Failed to start: %v", err))
	}
	defer a.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		panic(fmt.Sprintf("Failed to create screen: %v", err))
	}

	t := tui.NewApp(tui.NewAppOptions{
		Screen:     screen,
		Sound:      a.TonePlayer(),
		PlayerName: cfg.PlayerName,
		Difficulty: cfg.Difficulty,
	})
	t.SetSession(a.NewSession(t, t.Tick))

	if err := t.Run(ctx); err != nil {
		log.Error("Failed to run: %v", err)
	}
}
