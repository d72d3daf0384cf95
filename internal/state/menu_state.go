package state

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-galaxy-raid/internal/app"
)

// MenuState - заставка до старта забега. Enter начинает игру.
type MenuState struct {
	sm   *StateMachine
	game *app.Game
	view *View
}

func NewMenuState(sm *StateMachine, game *app.Game, view *View) *MenuState {
	return &MenuState{sm: sm, game: game, view: view}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(now time.Time) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		m.game.Start()
		m.sm.SetState(NewGameState(m.sm, m.game, m.view))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	m.view.Draw(screen, m.game)
}

func (m *MenuState) Exit() {}
