// internal/system/collision.go
package system

import (
	"go-galaxy-raid/internal/component"
	"go-galaxy-raid/internal/entity"
	"go-galaxy-raid/internal/event"
	"go-galaxy-raid/pkg/geom"
)

// CollisionSystem разрешает попадания: пули игрока по врагам
// и вражеские пули по игроку. Пуля против пули не сталкивается.
type CollisionSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
}

func NewCollisionSystem(world *entity.World, eventDispatcher *event.Dispatcher) *CollisionSystem {
	return &CollisionSystem{world: world, eventDispatcher: eventDispatcher}
}

func (s *CollisionSystem) Update() {
	s.resolvePlayerBullets()
	s.resolveEnemyBullets()
}

// resolvePlayerBullets: каждая пуля поражает не больше одного врага,
// первого по порядку в коллекции.
func (s *CollisionSystem) resolvePlayerBullets() {
	s.world.Bullets = filterInPlace(s.world.Bullets, func(b *component.Bullet) bool {
		target := s.firstEnemyHit(b.Bounds())
		if target == nil {
			return true
		}
		target.HP--
		s.world.Run.Score += s.world.Tuning.HitScore
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.EnemyHit,
			Data: event.EnemyData{ID: target.ID, Type: target.Type, HP: target.HP},
		})
		return false
	})
}

func (s *CollisionSystem) firstEnemyHit(r geom.Rect) *component.Enemy {
	for _, e := range s.world.Enemies {
		if e.Alive() && geom.Overlaps(r, e.Bounds()) {
			return e
		}
	}
	return nil
}

// resolveEnemyBullets: за кадр игрок может быть поражён только один раз.
func (s *CollisionSystem) resolveEnemyBullets() {
	p := s.world.Player
	if !p.Alive {
		return
	}
	hitbox := p.Bounds()
	for i, b := range s.world.EnemyBullets {
		if !geom.Overlaps(b.Bounds(), hitbox) {
			continue
		}
		s.world.EnemyBullets = append(s.world.EnemyBullets[:i], s.world.EnemyBullets[i+1:]...)
		s.world.Run.Lives--
		p.Alive = false
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.PlayerHit,
			Data: event.PlayerHitData{LivesLeft: s.world.Run.Lives, Generation: s.world.Run.Generation},
		})
		return
	}
}
