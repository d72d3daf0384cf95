package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"

	"go-galaxy-raid/internal/app"
	"go-galaxy-raid/internal/config"
	"go-galaxy-raid/internal/scene"
	"go-galaxy-raid/internal/ui"
	"go-galaxy-raid/pkg/render"
)

// View рисует игру: поле, HUD, индикатор волны и оверлей.
// Общий для меню и игрового состояния.
type View struct {
	builder  *scene.Builder
	renderer *render.Renderer
	hud      *ui.HUD
	wave     *ui.WaveIndicator
	overlay  *ui.Overlay
}

func NewView(face font.Face) *View {
	return &View{
		builder:  scene.NewBuilder(scene.DefaultPalette()),
		renderer: render.NewRenderer(config.ScreenWidth, config.ScreenHeight),
		hud:      ui.NewHUD(face),
		wave:     ui.NewWaveIndicator(config.ScreenWidth/2, config.HUDMarginY, face),
		overlay:  ui.NewOverlay(config.ScreenWidth, config.ScreenHeight, face),
	}
}

func (v *View) Draw(screen *ebiten.Image, g *app.Game) {
	s := v.builder.Build(g.World)
	v.renderer.Draw(screen, s)
	v.hud.Draw(screen, s)
	if s.Overlay != scene.OverlayAttract {
		v.wave.Draw(screen, s.Wave)
	}
	v.overlay.Draw(screen, s)
}
