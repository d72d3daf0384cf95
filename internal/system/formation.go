// internal/system/formation.go
package system

import (
	"math"

	"go-galaxy-raid/internal/entity"
)

// FormationSystem раскачивает строй влево-вправо. Смещение живёт отдельно
// от позиций врагов и применяется только при отрисовке врагов в строю.
type FormationSystem struct {
	world *entity.World
}

func NewFormationSystem(world *entity.World) *FormationSystem {
	return &FormationSystem{world: world}
}

func (s *FormationSystem) Update(deltaTime float64) {
	t := s.world.Tuning
	f := &s.world.Formation
	if !t.SwayEnabled {
		f.OffsetX, f.OffsetY = 0, 0
		return
	}
	f.Clock += deltaTime
	f.OffsetX += f.Dir * t.SwaySpeed * deltaTime
	if f.OffsetX < -t.SwayRange {
		f.OffsetX = -t.SwayRange
		f.Dir = 1
	}
	if f.OffsetX > t.SwayRange {
		f.OffsetX = t.SwayRange
		f.Dir = -1
	}
	f.OffsetY = math.Sin(f.Clock*t.BobFrequency) * t.BobAmplitude
}
