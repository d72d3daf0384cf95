package state

import (
	"github.com/hajimehoshi/ebiten/v2"

	"go-galaxy-raid/internal/component"
)

// readIntent опрашивает клавиатуру ebiten. Пауза передаётся как удержание,
// фронт нажатия выделяет сама игра.
func readIntent() component.Intent {
	return component.Intent{
		Left:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right: ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Up:    ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:  ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Fire:  ebiten.IsKeyPressed(ebiten.KeySpace),
		Pause: ebiten.IsKeyPressed(ebiten.KeyP),
	}
}
