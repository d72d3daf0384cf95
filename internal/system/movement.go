// internal/system/movement.go
package system

import (
	"math"

	"go-galaxy-raid/internal/component"
	"go-galaxy-raid/internal/entity"
	"go-galaxy-raid/internal/utils"
)

// MovementSystem ведёт врагов по циклу вход -> строй -> пике -> строй.
type MovementSystem struct {
	world *entity.World
	rng   *utils.PRNGService
}

func NewMovementSystem(world *entity.World, rng *utils.PRNGService) *MovementSystem {
	return &MovementSystem{world: world, rng: rng}
}

func (s *MovementSystem) Update(deltaTime float64) {
	for _, e := range s.world.Enemies {
		if !e.Alive() {
			continue
		}
		switch e.Phase {
		case component.Entering:
			s.updateEntering(e, deltaTime)
		case component.InFormation:
			s.updateFormation(e, deltaTime)
		case component.Diving:
			s.updateDiving(e, deltaTime)
		}
	}
}

func (s *MovementSystem) updateEntering(e *component.Enemy, deltaTime float64) {
	t := s.world.Tuning
	e.EntryT += deltaTime * t.EntrySpeed
	if e.EntryT >= 1 {
		// Ровно в слот, иначе копится остаточное смещение.
		e.EntryT = 1
		e.SnapToSlot()
		return
	}
	cx, cy := EntryControlPoint(e.Spawn, e.Target, t.EntryRise)
	e.X = utils.QuadBezier(e.Spawn.X, cx, e.Target.X, e.EntryT)
	e.Y = utils.QuadBezier(e.Spawn.Y, cy, e.Target.Y, e.EntryT)
}

func (s *MovementSystem) updateFormation(e *component.Enemy, deltaTime float64) {
	e.DiveTimer -= deltaTime
	if e.DiveTimer > 0 {
		return
	}
	t := s.world.Tuning
	e.Phase = component.Diving
	e.DivePhase = 0
	e.DiveOriginX = e.X
	// Следующий отдых в строю после возвращения из пике.
	e.DiveTimer = s.rng.Range(t.DiveCooldownMin, t.DiveCooldownMax)
}

func (s *MovementSystem) updateDiving(e *component.Enemy, deltaTime float64) {
	t := s.world.Tuning
	e.DivePhase += deltaTime * t.DivePhaseRate
	e.X = e.DiveOriginX + t.DiveAmplitude*math.Sin(e.DivePhase*t.DiveFrequency)
	e.Y += t.DiveSpeed * deltaTime
	if e.Y > t.Height {
		e.SnapToSlot()
	}
}

// EntryControlPoint - опорная точка кривой входа: над серединой отрезка,
// на rise выше точки появления.
func EntryControlPoint(spawn, target component.Position, rise float64) (float64, float64) {
	return (spawn.X + target.X) / 2, spawn.Y - rise
}
