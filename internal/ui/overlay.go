package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-galaxy-raid/internal/config"
	"go-galaxy-raid/internal/scene"
)

// Overlay затемняет экран и пишет сообщение для паузы, конца игры и заставки.
type Overlay struct {
	Width, Height int
	LineSpacing   int
	TextColor     color.Color
	face          font.Face
}

func NewOverlay(width, height int, face font.Face) *Overlay {
	return &Overlay{
		Width:       width,
		Height:      height,
		LineSpacing: 30,
		TextColor:   config.OverlayTextColor,
		face:        face,
	}
}

// shadeFor возвращает цвет затемнения. Заставка рисуется без него.
func shadeFor(o scene.Overlay) color.RGBA {
	switch o {
	case scene.OverlayPaused:
		return config.PauseShadeColor
	case scene.OverlayGameOver:
		return config.GameOverShade
	}
	return color.RGBA{}
}

// lineYs возвращает базовые линии строк, центрированных по вертикали.
func (o *Overlay) lineYs(n int) []int {
	ys := make([]int, n)
	top := o.Height/2 - (n-1)*o.LineSpacing/2
	for i := range ys {
		ys[i] = top + i*o.LineSpacing
	}
	return ys
}

func (o *Overlay) Draw(screen *ebiten.Image, s scene.Scene) {
	lines := s.OverlayLines()
	if len(lines) == 0 {
		return
	}
	if shade := shadeFor(s.Overlay); shade.A > 0 {
		vector.DrawFilledRect(screen, 0, 0, float32(o.Width), float32(o.Height), shade, false)
	}
	ys := o.lineYs(len(lines))
	for i, l := range lines {
		text.Draw(screen, l, o.face, centeredX(l, o.face, o.Width/2), ys[i], o.TextColor)
	}
}
