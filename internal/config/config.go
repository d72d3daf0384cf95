// internal/config/config.go
package config

import (
	"image/color"
	"time"
)

const (
	ScreenWidth  = 720
	ScreenHeight = 800
	WindowTitle  = "Galaxy Raid"

	MaxDeltaTime = 0.033 // верхняя граница dt одного кадра, секунды
	TicksPerSec  = 60

	StarCount      = 150
	StarDriftSpeed = 30.0

	HUDMarginX    = 12
	HUDMarginY    = 20
	HUDLineHeight = 16
)

var (
	BackgroundColor   = color.RGBA{0, 0, 0, 255}
	StarColor         = color.RGBA{0, 68, 85, 255}
	PlayerHullColor   = color.RGBA{0, 255, 136, 255}
	PlayerNoseColor   = color.RGBA{0, 255, 255, 255}
	PlayerCockpit     = color.RGBA{0, 136, 255, 255}
	BossColor         = color.RGBA{255, 51, 51, 255}
	BossCoreColor     = color.RGBA{255, 255, 102, 255}
	GruntColor        = color.RGBA{255, 102, 255, 255}
	GruntCoreColor    = color.RGBA{255, 255, 255, 255}
	PlayerBulletColor = color.RGBA{0, 255, 255, 255}
	EnemyBulletColor  = color.RGBA{255, 51, 51, 255}
	TextLightColor    = color.RGBA{240, 240, 240, 255}
	OverlayTextColor  = color.RGBA{0, 255, 255, 255}
	PauseShadeColor   = color.RGBA{0, 0, 0, 102}
	GameOverShade     = color.RGBA{0, 0, 0, 166}
	BossWaveColor     = color.RGBA{255, 51, 51, 255}
	WaveIndicatorBlue = color.RGBA{70, 130, 180, 255}
)

// RespawnDelay - задержка возрождения игрока после попадания (реальное время).
const RespawnDelay = 1200 * time.Millisecond
