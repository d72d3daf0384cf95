package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/font/basicfont"

	"go-galaxy-raid/internal/config"
	"go-galaxy-raid/internal/scene"
)

func TestToRoman(t *testing.T) {
	cases := map[int]string{
		0:    "",
		-3:   "",
		1:    "I",
		4:    "IV",
		9:    "IX",
		14:   "XIV",
		40:   "XL",
		1994: "MCMXCIV",
	}
	for in, want := range cases {
		assert.Equal(t, want, toRoman(in), "toRoman(%d)", in)
	}
}

func TestWaveIndicatorBossWaveIsRed(t *testing.T) {
	w := NewWaveIndicator(100, 20, basicfont.Face7x13)
	assert.Equal(t, config.WaveIndicatorBlue, w.colorFor(3))
	assert.Equal(t, config.BossWaveColor, w.colorFor(10))
	assert.Equal(t, config.BossWaveColor, w.colorFor(20))
}

func TestCenteredX(t *testing.T) {
	// basicfont.Face7x13 advances 7px per glyph
	assert.Equal(t, 100-21, centeredX("PAUSED", basicfont.Face7x13, 100))
	assert.Equal(t, 100, centeredX("", basicfont.Face7x13, 100))
}

func TestOverlayShade(t *testing.T) {
	assert.Zero(t, shadeFor(scene.OverlayNone).A)
	assert.Zero(t, shadeFor(scene.OverlayAttract).A)
	assert.Equal(t, config.PauseShadeColor, shadeFor(scene.OverlayPaused))
	assert.Equal(t, config.GameOverShade, shadeFor(scene.OverlayGameOver))
}

func TestOverlayLinesAreCentered(t *testing.T) {
	o := NewOverlay(config.ScreenWidth, config.ScreenHeight, basicfont.Face7x13)
	assert.Equal(t, []int{config.ScreenHeight / 2}, o.lineYs(1))

	ys := o.lineYs(3)
	assert.Equal(t, config.ScreenHeight/2-o.LineSpacing, ys[0])
	assert.Equal(t, config.ScreenHeight/2, ys[1])
	assert.Equal(t, config.ScreenHeight/2+o.LineSpacing, ys[2])
}
