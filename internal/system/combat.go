// internal/system/combat.go
package system

import (
	"go-galaxy-raid/internal/component"
	"go-galaxy-raid/internal/entity"
	"go-galaxy-raid/internal/utils"
)

// CombatSystem управляет стрельбой врагов. Выстрелы случайны:
// каждый враг стреляет с частотой FireRate (раз в секунду), вероятность
// на кадр считается через dt, поэтому не зависит от частоты обновления.
type CombatSystem struct {
	world *entity.World
	rng   *utils.PRNGService
}

func NewCombatSystem(world *entity.World, rng *utils.PRNGService) *CombatSystem {
	return &CombatSystem{world: world, rng: rng}
}

func (s *CombatSystem) Update(deltaTime float64) {
	for _, e := range s.world.Enemies {
		if !e.Alive() {
			continue
		}
		if s.rng.Chance(s.FireRate(e), deltaTime) {
			s.fire(e)
		}
	}
}

// FireRate возвращает частоту выстрелов врага в секунду.
func (s *CombatSystem) FireRate(e *component.Enemy) float64 {
	t := s.world.Tuning
	var rate float64
	switch e.Phase {
	case component.InFormation:
		rate = t.FormationFireRate
	case component.Diving:
		rate = t.DivingFireRate
	default:
		return 0 // на входе не стреляют
	}
	if e.Type == component.Boss {
		rate *= t.BossFireMultiplier
	}
	return rate
}

// fire выпускает пулю из нижнего края врага точно в текущую позицию игрока.
func (s *CombatSystem) fire(e *component.Enemy) {
	t := s.world.Tuning
	p := s.world.Player
	sx, sy := e.X, e.Y+e.H/2
	dx, dy := utils.Normalize(p.X-sx, p.Y-sy)
	s.world.EnemyBullets = append(s.world.EnemyBullets, &component.EnemyBullet{
		Position: component.Position{X: sx, Y: sy},
		Size:     component.Size{W: t.BulletWidth, H: t.BulletHeight},
		Velocity: component.Velocity{VX: dx * t.EnemyBulletSpeed, VY: dy * t.EnemyBulletSpeed},
	})
}
