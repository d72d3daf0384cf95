// internal/system/wave.go
package system

import (
	"go-galaxy-raid/internal/component"
	"go-galaxy-raid/internal/entity"
	"go-galaxy-raid/internal/event"
	"go-galaxy-raid/internal/utils"
)

// WaveSystem убирает сбитых врагов и, когда строй пуст, запускает новую волну.
type WaveSystem struct {
	world           *entity.World
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
}

func NewWaveSystem(world *entity.World, rng *utils.PRNGService, eventDispatcher *event.Dispatcher) *WaveSystem {
	return &WaveSystem{world: world, rng: rng, eventDispatcher: eventDispatcher}
}

func (s *WaveSystem) Update() {
	s.Purge()
	if len(s.world.Enemies) > 0 {
		return
	}
	s.world.Run.Wave++
	cols, rows := s.SpawnWave(s.world.Run.Wave)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.WaveCleared,
		Data: event.WaveData{Wave: s.world.Run.Wave, Cols: cols, Rows: rows},
	})
}

// Purge удаляет врагов с HP <= 0. Враг, ушедший в пике за нижний край,
// возвращается в строй и зачищенным не считается.
func (s *WaveSystem) Purge() {
	s.world.Enemies = filterInPlace(s.world.Enemies, func(e *component.Enemy) bool {
		if e.Alive() {
			return true
		}
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.EnemyDestroyed,
			Data: event.EnemyData{ID: e.ID, Type: e.Type, HP: e.HP},
		})
		return false
	})
}

// SpawnWave заменяет строй новой сеткой для указанной волны и возвращает её размер.
func (s *WaveSystem) SpawnWave(wave int) (cols, rows int) {
	t := s.world.Tuning
	cols, rows = t.GridFor(wave)
	s.world.Enemies = s.world.Enemies[:0]
	s.world.Formation.Reset()

	startX := (t.Width-float64(cols-1)*t.SpacingX)/2 + t.GridShiftX
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			slot := component.Position{
				X: startX + float64(c)*t.SpacingX,
				Y: t.GridTop + float64(r)*t.SpacingY,
			}
			s.world.Enemies = append(s.world.Enemies, s.newEnemy(slot, r, c))
		}
	}
	return cols, rows
}

func (s *WaveSystem) newEnemy(slot component.Position, row, col int) *component.Enemy {
	t := s.world.Tuning

	spawn := component.Position{X: -t.SpawnMargin, Y: s.rng.Range(t.SpawnMinY, t.SpawnMaxY)}
	if s.rng.Intn(2) == 1 {
		spawn.X = t.Width + t.SpawnMargin
	}

	e := &component.Enemy{
		ID:        s.world.NewEntity(),
		Position:  spawn,
		Size:      component.Size{W: t.EnemyWidth, H: t.EnemyHeight},
		HP:        t.GruntHP,
		Type:      component.Grunt,
		Phase:     component.Entering,
		Target:    slot,
		Spawn:     spawn,
		Row:       row,
		Col:       col,
		DiveTimer: s.rng.Range(t.DiveDelayMin, t.DiveDelayMax),
	}
	if row < t.BossRows {
		e.Type = component.Boss
		e.HP = t.BossHP
	}
	return e
}
