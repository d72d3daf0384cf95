package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"go-galaxy-raid/internal/config"
	"go-galaxy-raid/internal/scene"
)

// HUD рисует счёт, жизни и номер волны в верхнем левом углу.
type HUD struct {
	X, Y       int
	LineHeight int
	Color      color.Color
	face       font.Face
}

func NewHUD(face font.Face) *HUD {
	return &HUD{
		X:          config.HUDMarginX,
		Y:          config.HUDMarginY,
		LineHeight: config.HUDLineHeight,
		Color:      config.TextLightColor,
		face:       face,
	}
}

func (h *HUD) Draw(screen *ebiten.Image, s scene.Scene) {
	for i, line := range s.HUDLines() {
		text.Draw(screen, line, h.face, h.X, h.Y+i*h.LineHeight, h.Color)
	}
}
