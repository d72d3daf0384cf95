// internal/component/projectile.go
package component

import "go-galaxy-raid/pkg/geom"

// Bullet - пуля игрока, летит строго вверх.
type Bullet struct {
	Position
	Size
	VY float64
}

func (b *Bullet) Bounds() geom.Rect {
	return Bounds(b.Position, b.Size)
}

// EnemyBullet - вражеская пуля. Направление фиксируется в момент выстрела.
type EnemyBullet struct {
	Position
	Size
	Velocity
}

func (b *EnemyBullet) Bounds() geom.Rect {
	return Bounds(b.Position, b.Size)
}
