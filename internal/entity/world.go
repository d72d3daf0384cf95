// internal/entity/world.go
package entity

import (
	"go-galaxy-raid/internal/component"
	"go-galaxy-raid/internal/config"
)

// World - полное состояние симуляции. Все системы получают его явно,
// глобальных переменных нет.
type World struct {
	GameTime     float64
	NextID       component.EntityID
	Tuning       *config.Tuning
	Player       *component.Player
	Bullets      []*component.Bullet
	EnemyBullets []*component.EnemyBullet
	Enemies      []*component.Enemy
	Formation    component.Formation
	Run          component.RunState
}

func NewWorld(t *config.Tuning) *World {
	w := &World{
		NextID: 1,
		Tuning: t,
		Player: &component.Player{
			Size:     component.Size{W: t.PlayerWidth, H: t.PlayerHeight},
			Speed:    t.PlayerSpeed,
			FireRate: t.PlayerFireRate,
		},
		Bullets:      make([]*component.Bullet, 0, 32),
		EnemyBullets: make([]*component.EnemyBullet, 0, 32),
		Enemies:      make([]*component.Enemy, 0, 64),
	}
	w.Formation.Reset()
	w.ResetRun()
	w.ResetPlayer()
	return w
}

func (w *World) NewEntity() component.EntityID {
	id := w.NextID
	w.NextID++
	return id
}

// ResetPlayer ставит игрока в точку появления и оживляет его.
func (w *World) ResetPlayer() {
	w.Player.X, w.Player.Y = w.Tuning.PlayerSpawn()
	w.Player.Alive = true
	w.Player.FireCooldown = 0
}

// ResetRun возвращает счёт, жизни и волну к начальным значениям
// и очищает все коллекции. Поколение забега не трогает.
func (w *World) ResetRun() {
	w.Run.Running = false
	w.Run.Paused = false
	w.Run.GameOver = false
	w.Run.Score = 0
	w.Run.Lives = w.Tuning.StartingLives
	w.Run.Wave = 1
	w.ClearBullets()
	w.Enemies = w.Enemies[:0]
	w.Formation.Reset()
	w.GameTime = 0
}

func (w *World) ClearBullets() {
	w.Bullets = w.Bullets[:0]
	w.EnemyBullets = w.EnemyBullets[:0]
}

// LiveEnemies возвращает число врагов с HP > 0.
func (w *World) LiveEnemies() int {
	n := 0
	for _, e := range w.Enemies {
		if e.Alive() {
			n++
		}
	}
	return n
}
