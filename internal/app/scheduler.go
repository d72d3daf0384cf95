// internal/app/scheduler.go
package app

import (
	"sort"
	"time"
)

// Task - отложенное действие. Получает поколение забега, в котором было
// запланировано, и возвращает false, если к моменту срабатывания оно устарело.
type Task func(generation uint64) bool

type scheduled struct {
	name       string
	at         time.Time
	generation uint64
	task       Task
}

// Scheduler хранит отложенные события с дедлайнами по реальному времени.
// Срабатывает только из цикла кадра (Advance), поэтому блокировки не нужны.
// Отмены нет: устаревшие события отсеиваются самими задачами по поколению.
type Scheduler struct {
	pending []scheduled
	onDrop  func(name string, generation uint64)
}

func NewScheduler(onDrop func(name string, generation uint64)) *Scheduler {
	return &Scheduler{onDrop: onDrop}
}

// Schedule ставит task на момент at.
func (s *Scheduler) Schedule(name string, at time.Time, generation uint64, task Task) {
	s.pending = append(s.pending, scheduled{name: name, at: at, generation: generation, task: task})
	sort.SliceStable(s.pending, func(i, j int) bool {
		return s.pending[i].at.Before(s.pending[j].at)
	})
}

// Advance выполняет все события с дедлайном не позже now, в порядке дедлайнов.
// Возвращает число выполненных задач (включая отброшенные).
func (s *Scheduler) Advance(now time.Time) int {
	n := 0
	for len(s.pending) > 0 && !s.pending[0].at.After(now) {
		next := s.pending[0]
		s.pending = s.pending[1:]
		n++
		if !next.task(next.generation) && s.onDrop != nil {
			s.onDrop(next.name, next.generation)
		}
	}
	return n
}

// Pending возвращает число ожидающих событий.
func (s *Scheduler) Pending() int {
	return len(s.pending)
}
