package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/ratel-online/uno/config"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/event"
	"github.com/ratel-online/uno/uno/game"
	"github.com/ratel-online/uno/uno/player"
	"github.com/ratel-online/uno/uno/ui"
	"github.com/sirupsen/logrus"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) (code int) {
	cfg, err := config.Load()
	if err == nil {
		err = cfg.ApplyArgs(args)
	}
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "uno:", err)
		return 1
	}

	logger, closeLog, err := cfg.NewLogger()
	if err != nil {
		fmt.Fprintln(os.Stderr, "uno:", err)
		return 1
	}
	defer closeLog()

	defer func() {
		if r := recover(); r != nil {
			if err, ok := r.(error); ok && errors.Is(err, consts.ErrorsInputClosed) {
				logger.Warn("input closed before the game ended")
			} else {
				logger.WithField("panic", r).Error("game aborted")
			}
			fmt.Fprintln(os.Stderr, "uno:", r)
			code = 1
		}
	}()

	ui.SetColorEnabled(!cfg.NoColor)
	console := ui.NewConsole(os.Stdin, os.Stdout, ui.WithDelay(cfg.MessageDelay))
	if banner, err := ui.Banner(); err != nil {
		logger.WithError(err).Warn("render banner")
	} else {
		console.Print(banner)
	}

	random := cfg.Rand()
	human := player.NewHuman(console)
	table := player.CreateTable(cfg.Players, cfg.Bots, human, random)

	bus := event.NewBus()
	bus.Subscribe(event.NewLogListener(logger))
	bus.Subscribe(human)

	g, err := game.New(cfg.Players, table,
		game.WithRand(random),
		game.WithLogger(logger),
		game.WithEvents(bus),
	)
	if err != nil {
		logger.WithError(err).Error("create game")
		fmt.Fprintln(os.Stderr, "uno:", err)
		return 1
	}
	logger.WithFields(logrus.Fields{
		"game":    g.ID().String(),
		"players": cfg.Players,
		"bots":    cfg.Bots,
	}).Info("game created")

	g.Run()
	return 0
}
