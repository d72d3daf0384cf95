// internal/app/listener.go
package app

import (
	"log"

	"go-galaxy-raid/internal/event"
)

// GameEventListener связывает события симуляции с планировщиком.
type GameEventListener struct {
	game *Game
}

func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.PlayerHit:
		data, ok := e.Data.(event.PlayerHitData)
		if !ok {
			return
		}
		g := l.game
		at := g.now.Add(g.World.Tuning.RespawnDelay())
		g.scheduler.Schedule("respawn", at, data.Generation, g.StateSystem.Respawn)
	}
}

// LogListener пишет жизненный цикл забега в лог.
type LogListener struct {
	Logger *log.Logger
}

// NewLogListener создаёт listener поверх стандартного логгера.
func NewLogListener() *LogListener {
	return &LogListener{Logger: log.Default()}
}

// LoggedEvents - события, которые стоит подписать на LogListener.
var LoggedEvents = []event.EventType{
	event.RunStarted,
	event.RunReset,
	event.PauseToggled,
	event.EnemyHit,
	event.EnemyDestroyed,
	event.PlayerHit,
	event.PlayerRespawned,
	event.WaveCleared,
	event.GameOver,
}

func (l *LogListener) OnEvent(e event.Event) {
	switch data := e.Data.(type) {
	case event.EnemyData:
		switch {
		case e.Type == event.EnemyDestroyed:
			l.Logger.Printf("%s %d destroyed", data.Type, data.ID)
		case data.HP > 0:
			// попадания по рядовым сразу дают EnemyDestroyed
			l.Logger.Printf("%s %d hit, hp left: %d", data.Type, data.ID, data.HP)
		}
	case event.PlayerHitData:
		l.Logger.Printf("player hit, lives left: %d", data.LivesLeft)
	case event.WaveData:
		l.Logger.Printf("wave %d: %dx%d formation", data.Wave, data.Cols, data.Rows)
	case event.ScoreData:
		l.Logger.Printf("game over: score %d, wave %d", data.Score, data.Wave)
	case uint64:
		l.Logger.Printf("%s (run %d)", e.Type, data)
	case bool:
		l.Logger.Printf("%s: %v", e.Type, data)
	default:
		l.Logger.Printf("%s", e.Type)
	}
}
