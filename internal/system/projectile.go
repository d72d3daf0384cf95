// internal/system/projectile.go
package system

import (
	"go-galaxy-raid/internal/component"
	"go-galaxy-raid/internal/entity"
	"go-galaxy-raid/pkg/geom"
)

// ProjectileSystem двигает пули и убирает вылетевшие за экран.
type ProjectileSystem struct {
	world *entity.World
}

func NewProjectileSystem(world *entity.World) *ProjectileSystem {
	return &ProjectileSystem{world: world}
}

func (s *ProjectileSystem) Update(deltaTime float64) {
	for _, b := range s.world.Bullets {
		b.Y += b.VY * deltaTime
	}
	for _, b := range s.world.EnemyBullets {
		b.X += b.VX * deltaTime
		b.Y += b.VY * deltaTime
	}
	s.prune()
}

func (s *ProjectileSystem) prune() {
	t := s.world.Tuning
	m := t.PruneMargin
	// Вражеские пули летят в любую сторону: ныряльщик ниже игрока стреляет
	// вверх, поэтому проверяются все четыре края.
	field := geom.Rect{X: -m, Y: -m, W: t.Width + 2*m, H: t.Height + 2*m}
	s.world.Bullets = filterInPlace(s.world.Bullets, func(b *component.Bullet) bool {
		return b.Y >= field.Y
	})
	s.world.EnemyBullets = filterInPlace(s.world.EnemyBullets, func(b *component.EnemyBullet) bool {
		return field.Contains(b.X, b.Y)
	})
}

// filterInPlace оставляет элементы, для которых keep вернул true. Порядок
// сохраняется, фильтрация идёт на месте через индекс записи, поэтому
// несколько удалений за один проход ничего не пропускают.
func filterInPlace[T any](items []T, keep func(T) bool) []T {
	n := 0
	for _, it := range items {
		if keep(it) {
			items[n] = it
			n++
		}
	}
	clear(items[n:])
	return items[:n]
}
