package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-galaxy-raid/internal/scene"
)

// Renderer draws a scene onto an ebiten image, scaling world coordinates
// to the image size.
type Renderer struct {
	screenWidth  int
	screenHeight int
}

func NewRenderer(screenWidth, screenHeight int) *Renderer {
	return &Renderer{screenWidth: screenWidth, screenHeight: screenHeight}
}

// Draw fills the background and draws every shape of the scene in order.
func (r *Renderer) Draw(screen *ebiten.Image, s scene.Scene) {
	screen.Fill(s.Background)
	sx := float32(float64(r.screenWidth) / s.Width)
	sy := float32(float64(r.screenHeight) / s.Height)
	for _, sh := range s.Shapes {
		vector.DrawFilledRect(screen,
			float32(sh.Rect.X)*sx, float32(sh.Rect.Y)*sy,
			float32(sh.Rect.W)*sx, float32(sh.Rect.H)*sy,
			sh.Color, false)
	}
}
