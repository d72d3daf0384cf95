// internal/component/player.go
package component

import "go-galaxy-raid/pkg/geom"

// Player - корабль игрока. Существует в единственном экземпляре.
type Player struct {
	Position
	Size
	Speed        float64
	FireRate     float64 // минимальный интервал между выстрелами, секунды
	FireCooldown float64 // сколько осталось до следующего выстрела
	Alive        bool
}

// Bounds возвращает хитбокс игрока.
func (p *Player) Bounds() geom.Rect {
	return Bounds(p.Position, p.Size)
}

// Nose - точка, из которой вылетают пули игрока.
func (p *Player) Nose() (float64, float64) {
	return p.X, p.Y - p.H/2
}
