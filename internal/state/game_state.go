package state

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-galaxy-raid/internal/app"
)

// GameState - идущий забег. Пауза и конец игры живут внутри app.Game,
// здесь только ввод и переходы.
type GameState struct {
	sm   *StateMachine
	game *app.Game
	view *View
}

func NewGameState(sm *StateMachine, game *app.Game, view *View) *GameState {
	return &GameState{sm: sm, game: game, view: view}
}

func (g *GameState) Enter() {}

func (g *GameState) Update(now time.Time) {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.game.Reset()
		g.sm.SetState(NewMenuState(g.sm, g.game, g.view))
		return
	}
	if g.game.IsGameOver() && inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.game.Start()
	}
	g.game.Frame(now, readIntent())
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.view.Draw(screen, g.game)
}

func (g *GameState) Exit() {}
