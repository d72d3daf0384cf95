package system

import (
	"testing"

	"go-galaxy-raid/internal/component"
	"go-galaxy-raid/internal/config"
	"go-galaxy-raid/internal/entity"
	"go-galaxy-raid/internal/event"
	"go-galaxy-raid/internal/utils"
)

// recorder запоминает все события, на которые подписан.
type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) {
	r.events = append(r.events, e)
}

func (r *recorder) count(t event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

type fixture struct {
	world     *entity.World
	rng       *utils.PRNGService
	events    *event.Dispatcher
	rec       *recorder
	player    *PlayerSystem
	movement  *MovementSystem
	combat    *CombatSystem
	bullets   *ProjectileSystem
	collision *CollisionSystem
	waves     *WaveSystem
	state     *StateSystem
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	world := entity.NewWorld(config.Default())
	rng := utils.NewPRNGService(1)
	events := event.NewDispatcher()
	rec := &recorder{}
	events.SubscribeAll(rec,
		event.RunStarted, event.RunReset, event.PauseToggled, event.EnemyHit,
		event.EnemyDestroyed, event.PlayerHit, event.PlayerRespawned,
		event.WaveCleared, event.GameOver,
	)
	waves := NewWaveSystem(world, rng, events)
	return &fixture{
		world:     world,
		rng:       rng,
		events:    events,
		rec:       rec,
		player:    NewPlayerSystem(world),
		movement:  NewMovementSystem(world, rng),
		combat:    NewCombatSystem(world, rng),
		bullets:   NewProjectileSystem(world),
		collision: NewCollisionSystem(world, events),
		waves:     waves,
		state:     NewStateSystem(world, waves, events),
	}
}

func (f *fixture) addEnemy(x, y float64, hp int, typ component.EnemyType) *component.Enemy {
	t := f.world.Tuning
	e := &component.Enemy{
		ID:        f.world.NewEntity(),
		Position:  component.Position{X: x, Y: y},
		Size:      component.Size{W: t.EnemyWidth, H: t.EnemyHeight},
		HP:        hp,
		Type:      typ,
		Phase:     component.InFormation,
		Target:    component.Position{X: x, Y: y},
		DiveTimer: 100,
	}
	f.world.Enemies = append(f.world.Enemies, e)
	return e
}

func (f *fixture) addBullet(x, y float64) *component.Bullet {
	t := f.world.Tuning
	b := &component.Bullet{
		Position: component.Position{X: x, Y: y},
		Size:     component.Size{W: t.BulletWidth, H: t.BulletHeight},
		VY:       -t.BulletSpeed,
	}
	f.world.Bullets = append(f.world.Bullets, b)
	return b
}

func (f *fixture) addEnemyBullet(x, y, vx, vy float64) *component.EnemyBullet {
	t := f.world.Tuning
	b := &component.EnemyBullet{
		Position: component.Position{X: x, Y: y},
		Size:     component.Size{W: t.BulletWidth, H: t.BulletHeight},
		Velocity: component.Velocity{VX: vx, VY: vy},
	}
	f.world.EnemyBullets = append(f.world.EnemyBullets, b)
	return b
}

// settle ставит всех врагов сразу в их слоты строя.
func (f *fixture) settle() {
	for _, e := range f.world.Enemies {
		e.EntryT = 1
		e.SnapToSlot()
		e.DiveTimer = 100
	}
}
