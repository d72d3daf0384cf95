// internal/system/state.go
package system

import (
	"go-galaxy-raid/internal/entity"
	"go-galaxy-raid/internal/event"
)

// WaveSpawner - то, что StateSystem требует от системы волн.
// Интерфейс помогает избежать прямой зависимости на WaveSystem в тестах.
type WaveSpawner interface {
	SpawnWave(wave int) (cols, rows int)
}

// StateSystem переключает состояние забега: старт, пауза, сброс,
// возрождение игрока и конец игры.
type StateSystem struct {
	world           *entity.World
	waves           WaveSpawner
	eventDispatcher *event.Dispatcher
}

func NewStateSystem(world *entity.World, waves WaveSpawner, eventDispatcher *event.Dispatcher) *StateSystem {
	return &StateSystem{world: world, waves: waves, eventDispatcher: eventDispatcher}
}

// Start начинает новый забег. Если забег уже идёт, ничего не делает.
func (s *StateSystem) Start() bool {
	if s.world.Run.Running {
		return false
	}
	s.world.Run.Generation++
	s.world.ResetRun()
	s.world.ResetPlayer()
	s.waves.SpawnWave(s.world.Run.Wave)
	s.world.Run.Running = true
	s.eventDispatcher.Dispatch(event.Event{Type: event.RunStarted, Data: s.world.Run.Generation})
	return true
}

// TogglePause переключает паузу. Вне забега пауза не включается.
func (s *StateSystem) TogglePause() bool {
	if !s.world.Run.Running {
		return false
	}
	s.world.Run.Paused = !s.world.Run.Paused
	s.eventDispatcher.Dispatch(event.Event{Type: event.PauseToggled, Data: s.world.Run.Paused})
	return true
}

// Reset возвращает всё к состоянию до старта: счёт 0, начальные жизни,
// волна 1, пустые коллекции. Уже запланированные возрождения устаревают.
func (s *StateSystem) Reset() {
	s.world.Run.Generation++
	s.world.ResetRun()
	s.world.ResetPlayer()
	s.eventDispatcher.Dispatch(event.Event{Type: event.RunReset, Data: s.world.Run.Generation})
}

// Respawn выполняется по истечении задержки после попадания в игрока.
// Возвращает false, если событие устарело (другой забег или забег окончен).
func (s *StateSystem) Respawn(generation uint64) bool {
	run := &s.world.Run
	if generation != run.Generation || !run.Running {
		return false
	}
	if run.Lives <= 0 {
		run.Running = false
		run.Paused = false
		run.GameOver = true
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.GameOver,
			Data: event.ScoreData{Score: run.Score, Wave: run.Wave},
		})
		return true
	}
	if s.world.Player.Alive {
		return false
	}
	s.world.ResetPlayer()
	s.eventDispatcher.Dispatch(event.Event{Type: event.PlayerRespawned})
	return true
}
