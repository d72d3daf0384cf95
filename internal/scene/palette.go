// internal/scene/palette.go
package scene

import (
	"image/color"

	"go-galaxy-raid/internal/config"
)

// Palette holds all the colors needed to draw a frame.
type Palette struct {
	Background   color.RGBA
	Star         color.RGBA
	PlayerHull   color.RGBA
	PlayerNose   color.RGBA
	PlayerCanopy color.RGBA
	Boss         color.RGBA
	BossCore     color.RGBA
	Grunt        color.RGBA
	GruntCore    color.RGBA
	PlayerBullet color.RGBA
	EnemyBullet  color.RGBA
}

// DefaultPalette returns the palette from config.
func DefaultPalette() Palette {
	return Palette{
		Background:   config.BackgroundColor,
		Star:         config.StarColor,
		PlayerHull:   config.PlayerHullColor,
		PlayerNose:   config.PlayerNoseColor,
		PlayerCanopy: config.PlayerCockpit,
		Boss:         config.BossColor,
		BossCore:     config.BossCoreColor,
		Grunt:        config.GruntColor,
		GruntCore:    config.GruntCoreColor,
		PlayerBullet: config.PlayerBulletColor,
		EnemyBullet:  config.EnemyBulletColor,
	}
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}
