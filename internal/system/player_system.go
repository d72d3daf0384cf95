// internal/system/player_system.go
package system

import (
	"go-galaxy-raid/internal/component"
	"go-galaxy-raid/internal/entity"
	"go-galaxy-raid/pkg/geom"
)

// PlayerSystem отвечает за движение корабля игрока и его стрельбу.
type PlayerSystem struct {
	world *entity.World
}

func NewPlayerSystem(world *entity.World) *PlayerSystem {
	return &PlayerSystem{world: world}
}

func (s *PlayerSystem) Update(deltaTime float64, in component.Intent) {
	p := s.world.Player
	if !p.Alive {
		return
	}
	t := s.world.Tuning

	var vx, vy float64
	if in.Left {
		vx--
	}
	if in.Right {
		vx++
	}
	if in.Up {
		vy--
	}
	if in.Down {
		vy++
	}

	p.X += vx * p.Speed * deltaTime
	p.Y += vy * p.Speed * deltaTime
	p.X, p.Y = s.clamp(p.X, p.Y)

	p.FireCooldown -= deltaTime
	if in.Fire && p.FireCooldown <= 0 {
		x, y := p.Nose()
		s.world.Bullets = append(s.world.Bullets, &component.Bullet{
			Position: component.Position{X: x, Y: y},
			Size:     component.Size{W: t.BulletWidth, H: t.BulletHeight},
			VY:       -t.BulletSpeed,
		})
		p.FireCooldown = p.FireRate
	}
}

// clamp удерживает корабль в полосе у нижнего края экрана.
func (s *PlayerSystem) clamp(x, y float64) (float64, float64) {
	t := s.world.Tuning
	x = geom.Clamp(x, t.PlayerMarginX, t.Width-t.PlayerMarginX)
	y = geom.Clamp(y, t.Height-t.PlayerBandTop, t.Height-t.PlayerBandBottom)
	return x, y
}
