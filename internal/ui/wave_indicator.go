package ui

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"go-galaxy-raid/internal/config"
)

// WaveIndicator отображает номер текущей волны римскими цифрами.
type WaveIndicator struct {
	X, Y             int
	Color            color.RGBA
	OutlineColor     color.RGBA
	OutlineThickness int
	face             font.Face
}

// NewWaveIndicator создает новый индикатор волны, центрированный по x.
func NewWaveIndicator(x, y int, face font.Face) *WaveIndicator {
	return &WaveIndicator{
		X:                x,
		Y:                y,
		Color:            config.WaveIndicatorBlue,
		OutlineColor:     color.RGBA{255, 255, 255, 255},
		OutlineThickness: 1,
		face:             face,
	}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// colorFor возвращает цвет индикатора: каждая десятая волна красная.
func (i *WaveIndicator) colorFor(wave int) color.RGBA {
	if wave > 0 && wave%10 == 0 {
		return config.BossWaveColor
	}
	return i.Color
}

// Draw отрисовывает индикатор на экране.
func (i *WaveIndicator) Draw(screen *ebiten.Image, wave int) {
	if wave <= 0 {
		return
	}
	label := toRoman(wave)
	x := centeredX(label, i.face, i.X)

	for dy := -i.OutlineThickness; dy <= i.OutlineThickness; dy++ {
		for dx := -i.OutlineThickness; dx <= i.OutlineThickness; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			text.Draw(screen, label, i.face, x+dx, i.Y+dy, i.OutlineColor)
		}
	}
	text.Draw(screen, label, i.face, x, i.Y, i.colorFor(wave))
}

// centeredX возвращает левую границу строки, центрированной по cx.
func centeredX(s string, face font.Face, cx int) int {
	return cx - font.MeasureString(face, s).Ceil()/2
}
