package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"go-galaxy-raid/internal/app"
	"go-galaxy-raid/internal/config"
	"go-galaxy-raid/internal/terminal"
)

func main() {
	configPath := flag.String("config", "", "path to a tuning JSON file")
	seed := flag.Int64("seed", 0, "random seed, 0 picks one from the clock")
	sway := flag.Bool("sway", false, "enable the formation sway")
	logPath := flag.String("log", "", "write the event log to this file")
	flag.Parse()

	var logOut io.Writer = io.Discard
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("failed to open log file: %v", err)
		}
		defer f.Close()
		logOut = f
	}

	tuning := config.Default()
	if *configPath != "" {
		t, err := config.Load(*configPath)
		if err != nil {
			log.Fatal(err)
		}
		tuning = t
	}
	if *sway {
		tuning.SwayEnabled = true
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("failed to init screen: %v", err)
	}
	// терминал занят экраном, дальше лог идёт в файл или никуда
	log.SetOutput(logOut)

	game := app.NewGame(tuning, *seed)
	game.EventDispatcher.SubscribeAll(app.NewLogListener(), app.LoggedEvents...)
	log.Printf("seed %d", game.Rng.Seed())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	runErr := terminal.NewFrontend(game, screen).Run(ctx)
	stop()
	screen.Fini()
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		log.Printf("terminal loop: %v", runErr)
	}
}
