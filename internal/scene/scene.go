// internal/scene/scene.go
package scene

import (
	"fmt"
	"image/color"
	"math"

	"go-galaxy-raid/internal/component"
	"go-galaxy-raid/internal/config"
	"go-galaxy-raid/internal/entity"
	"go-galaxy-raid/pkg/geom"
)

// Kind tells a backend what a shape depicts, for backends that draw glyphs
// instead of rectangles.
type Kind int

const (
	KindStar Kind = iota
	KindBoss
	KindBossDetail
	KindGrunt
	KindGruntDetail
	KindPlayer
	KindPlayerDetail
	KindPlayerBullet
	KindEnemyBullet
)

// Overlay is the full-screen message drawn on top of the playfield.
type Overlay int

const (
	OverlayNone Overlay = iota
	OverlayAttract
	OverlayPaused
	OverlayGameOver
)

// Shape is one filled rectangle in world coordinates.
type Shape struct {
	Rect  geom.Rect
	Color color.RGBA
	Kind  Kind
}

// Scene is everything a backend needs to draw a frame.
type Scene struct {
	Width, Height float64
	Background    color.RGBA
	Shapes        []Shape
	Score         int
	Lives         int
	Wave          int
	Overlay       Overlay
}

// Builder turns world state into a Scene. It reuses its shape buffer,
// so a returned Scene is valid until the next Build.
type Builder struct {
	Palette Palette
	shapes  []Shape
}

func NewBuilder(p Palette) *Builder {
	return &Builder{Palette: p, shapes: make([]Shape, 0, 512)}
}

// Build draws background, enemies, player and bullets in that order.
func (b *Builder) Build(w *entity.World) Scene {
	b.shapes = b.shapes[:0]
	t := w.Tuning

	b.stars(t.Width, t.Height, w.GameTime)
	for _, e := range w.Enemies {
		if e.Alive() {
			b.enemy(e, w.Formation)
		}
	}
	if p := w.Player; p.Alive {
		b.player(p)
	}
	for _, bl := range w.Bullets {
		b.add(bl.X-bl.W/2, bl.Y-bl.H/2, bl.W, bl.H, b.Palette.PlayerBullet, KindPlayerBullet)
	}
	for _, bl := range w.EnemyBullets {
		b.add(bl.X-bl.W/2, bl.Y-bl.H/2, bl.W, bl.H, b.Palette.EnemyBullet, KindEnemyBullet)
	}

	return Scene{
		Width:      t.Width,
		Height:     t.Height,
		Background: b.Palette.Background,
		Shapes:     b.shapes,
		Score:      w.Run.Score,
		Lives:      w.Run.Lives,
		Wave:       w.Run.Wave,
		Overlay:    OverlayFor(w.Run),
	}
}

// OverlayFor picks the overlay for the run state.
func OverlayFor(run component.RunState) Overlay {
	switch {
	case run.GameOver && !run.Running:
		return OverlayGameOver
	case run.Paused:
		return OverlayPaused
	case !run.Running:
		return OverlayAttract
	default:
		return OverlayNone
	}
}

// HUDLines returns the score, lives and wave readouts.
func (s Scene) HUDLines() []string {
	return []string{
		fmt.Sprintf("Score: %d", s.Score),
		fmt.Sprintf("Lives: %d", s.Lives),
		fmt.Sprintf("Wave: %d", s.Wave),
	}
}

// OverlayLines returns the centered message for the current overlay,
// top to bottom. OverlayNone has none.
func (s Scene) OverlayLines() []string {
	switch s.Overlay {
	case OverlayPaused:
		return []string{"PAUSED"}
	case OverlayGameOver:
		return []string{"GAME OVER", fmt.Sprintf("Score: %d", s.Score), "Press ENTER to play again"}
	case OverlayAttract:
		return []string{"Press ENTER to start"}
	}
	return nil
}

// EnemyDrawPosition applies the formation sway to enemies sitting in the
// formation. Entering and diving enemies are drawn where they are.
func EnemyDrawPosition(e *component.Enemy, f component.Formation) (float64, float64) {
	if e.Phase != component.InFormation {
		return e.X, e.Y
	}
	return e.X + f.OffsetX, e.Y + f.OffsetY
}

func (b *Builder) stars(width, height, clock float64) {
	shift := math.Floor(clock*config.StarDriftSpeed) * 7
	for i := 0; i < config.StarCount; i++ {
		x := math.Mod(float64(i*53)+shift, width)
		y := math.Mod(float64(i*97), height)
		b.add(x, y, 1, 1, b.Palette.Star, KindStar)
	}
}

func (b *Builder) enemy(e *component.Enemy, f component.Formation) {
	x, y := EnemyDrawPosition(e, f)
	body, core := b.Palette.Grunt, b.Palette.GruntCore
	kind, detail := KindGrunt, KindGruntDetail
	coreW, coreH := 8.0, 6.0
	if e.Type == component.Boss {
		body, core = b.Palette.Boss, b.Palette.BossCore
		kind, detail = KindBoss, KindBossDetail
		coreW, coreH = 12, 8
		if e.HP == 1 {
			// подбитый босс темнеет
			body = DarkenColor(body)
		}
	}
	b.add(x-e.W/2, y-e.H/2, e.W, e.H, body, kind)
	b.add(x-coreW/2, y-coreH/2, coreW, coreH, core, detail)
}

func (b *Builder) player(p *component.Player) {
	b.add(p.X-p.W/2, p.Y-1, p.W, 10, b.Palette.PlayerHull, KindPlayer)
	b.add(p.X-6, p.Y-6, 12, 6, b.Palette.PlayerCanopy, KindPlayerDetail)
	b.add(p.X-2, p.Y-p.H/2, 4, 8, b.Palette.PlayerNose, KindPlayerDetail)
}

func (b *Builder) add(x, y, w, h float64, c color.RGBA, k Kind) {
	b.shapes = append(b.shapes, Shape{Rect: geom.Rect{X: x, Y: y, W: w, H: h}, Color: c, Kind: k})
}
