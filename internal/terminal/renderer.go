package terminal

import (
	"image/color"

	"github.com/gdamore/tcell/v2"

	"go-galaxy-raid/internal/config"
	"go-galaxy-raid/internal/scene"
)

// glyphs для каждого вида фигуры. Детали кораблей в терминале не рисуются.
var glyphs = map[scene.Kind]rune{
	scene.KindStar:         '.',
	scene.KindBoss:         'W',
	scene.KindGrunt:        'M',
	scene.KindPlayer:       'A',
	scene.KindPlayerBullet: '|',
	scene.KindEnemyBullet:  '!',
}

// Renderer рисует сцену в сетке символов. Верхняя строка занята HUD,
// остальные строки - игровое поле, масштабированное под размер терминала.
type Renderer struct {
	screen tcell.Screen
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// CellFor переводит мировые координаты в ячейку поля размером cols x rows
// (включая строку HUD). Точки вне поля прижимаются к краю.
func CellFor(x, y, width, height float64, cols, rows int) (int, int) {
	fieldRows := rows - 1
	cx := int(x / width * float64(cols))
	cy := int(y / height * float64(fieldRows))
	cx = max(0, min(cols-1, cx))
	cy = max(0, min(fieldRows-1, cy))
	return cx, cy + 1
}

func (r *Renderer) Draw(s scene.Scene) {
	cols, rows := r.screen.Size()
	bg := tcell.StyleDefault.Background(rgb(s.Background))
	r.screen.SetStyle(bg)
	r.screen.Clear()
	if cols < 1 || rows < 2 {
		r.screen.Show()
		return
	}

	for _, sh := range s.Shapes {
		g, ok := glyphs[sh.Kind]
		if !ok {
			continue
		}
		cx, cy := CellFor(sh.Rect.X+sh.Rect.W/2, sh.Rect.Y+sh.Rect.H/2, s.Width, s.Height, cols, rows)
		r.screen.SetContent(cx, cy, g, nil, bg.Foreground(rgb(sh.Color)))
	}

	hud := bg.Foreground(rgb(config.TextLightColor))
	x := 0
	for _, line := range s.HUDLines() {
		x = r.text(x, 0, line, hud) + 2
	}

	lines := s.OverlayLines()
	overlay := bg.Foreground(rgb(config.OverlayTextColor)).Bold(true)
	top := 1 + (rows-1)/2 - len(lines)/2
	for i, line := range lines {
		r.text((cols-len(line))/2, top+i, line, overlay)
	}

	r.screen.Show()
}

// text пишет строку с позиции x и возвращает x после неё.
func (r *Renderer) text(x, y int, s string, style tcell.Style) int {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}
