package main

import (
	"flag"
	"io"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font/basicfont"

	"go-galaxy-raid/internal/app"
	"go-galaxy-raid/internal/config"
	"go-galaxy-raid/internal/state"
)

type AppGame struct {
	stateMachine *state.StateMachine
}

func (a *AppGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	a.stateMachine.Update(time.Now())
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	configPath := flag.String("config", "", "path to a tuning JSON file")
	seed := flag.Int64("seed", 0, "random seed, 0 picks one from the clock")
	sway := flag.Bool("sway", false, "enable the formation sway")
	quiet := flag.Bool("quiet", false, "disable event logging")
	flag.Parse()

	if *quiet {
		log.SetOutput(io.Discard)
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

	game := app.NewGame(tuning, *seed)
	game.EventDispatcher.SubscribeAll(app.NewLogListener(), app.LoggedEvents...)
	log.Printf("seed %d", game.Rng.Seed())

	sm := state.NewStateMachine()
	sm.SetState(state.NewMenuState(sm, game, state.NewView(basicfont.Face7x13)))

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetTPS(config.TicksPerSec)
	if err := ebiten.RunGame(&AppGame{stateMachine: sm}); err != nil {
		log.Fatal(err)
	}
}
