// internal/app/game.go
package app

import (
	"log"
	"time"

	"go-galaxy-raid/internal/component"
	"go-galaxy-raid/internal/config"
	"go-galaxy-raid/internal/entity"
	"go-galaxy-raid/internal/event"
	"go-galaxy-raid/internal/system"
	"go-galaxy-raid/internal/utils"
)

// Game holds the simulation state and drives it one frame at a time.
// Every method must be called from the same goroutine.
type Game struct {
	World            *entity.World
	Rng              *utils.PRNGService
	EventDispatcher  *event.Dispatcher
	PlayerSystem     *system.PlayerSystem
	MovementSystem   *system.MovementSystem
	CombatSystem     *system.CombatSystem
	ProjectileSystem *system.ProjectileSystem
	CollisionSystem  *system.CollisionSystem
	WaveSystem       *system.WaveSystem
	FormationSystem  *system.FormationSystem
	StateSystem      *system.StateSystem

	scheduler *Scheduler
	now       time.Time
	lastFrame time.Time
	hasFrame  bool
	pauseHeld bool
}

// NewGame initializes a new game instance. A zero seed picks a time-based one.
func NewGame(t *config.Tuning, seed int64) *Game {
	if t == nil {
		t = config.Default()
	}
	world := entity.NewWorld(t)
	rng := utils.NewPRNGService(seed)
	eventDispatcher := event.NewDispatcher()

	g := &Game{
		World:            world,
		Rng:              rng,
		EventDispatcher:  eventDispatcher,
		PlayerSystem:     system.NewPlayerSystem(world),
		MovementSystem:   system.NewMovementSystem(world, rng),
		CombatSystem:     system.NewCombatSystem(world, rng),
		ProjectileSystem: system.NewProjectileSystem(world),
		CollisionSystem:  system.NewCollisionSystem(world, eventDispatcher),
		WaveSystem:       system.NewWaveSystem(world, rng, eventDispatcher),
		FormationSystem:  system.NewFormationSystem(world),
	}
	g.StateSystem = system.NewStateSystem(world, g.WaveSystem, eventDispatcher)
	g.scheduler = NewScheduler(func(name string, generation uint64) {
		log.Printf("dropped stale %s event (run %d)", name, generation)
	})

	eventDispatcher.Subscribe(event.PlayerHit, &GameEventListener{game: g})
	return g
}

// Start begins a new run unless one is already in progress.
func (g *Game) Start() {
	if g.StateSystem.Start() {
		g.hasFrame = false
	}
}

// TogglePause pauses or resumes a running game.
func (g *Game) TogglePause() {
	g.StateSystem.TogglePause()
}

// Reset returns to the pre-start state. Pending respawns become stale.
func (g *Game) Reset() {
	g.StateSystem.Reset()
	g.hasFrame = false
}

func (g *Game) IsRunning() bool  { return g.World.Run.Running }
func (g *Game) IsPaused() bool   { return g.World.Run.Paused }
func (g *Game) IsGameOver() bool { return g.World.Run.GameOver }

// PendingEvents returns the number of scheduled events not yet fired.
func (g *Game) PendingEvents() int {
	return g.scheduler.Pending()
}

// Frame advances the game to the host timestamp now and returns the dt that
// was simulated (0 when stopped or paused). The pause intent is edge-triggered.
func (g *Game) Frame(now time.Time, in component.Intent) float64 {
	g.now = now
	if in.Pause && !g.pauseHeld {
		g.TogglePause()
	}
	g.pauseHeld = in.Pause

	dt := 0.0
	if g.hasFrame {
		dt = FrameDelta(g.lastFrame, now, g.World.Tuning.MaxDeltaTime)
	}
	g.lastFrame = now
	g.hasFrame = true

	if !g.World.Run.Running || g.World.Run.Paused {
		return 0
	}

	g.scheduler.Advance(now)
	if !g.World.Run.Running {
		return 0
	}

	g.Update(dt, in)
	return dt
}

// Update runs one simulation step in the fixed order:
// player, enemies, bullets, collisions, waves.
func (g *Game) Update(deltaTime float64, in component.Intent) {
	g.World.GameTime += deltaTime

	g.PlayerSystem.Update(deltaTime, in)
	g.MovementSystem.Update(deltaTime)
	g.CombatSystem.Update(deltaTime)
	g.ProjectileSystem.Update(deltaTime)
	g.CollisionSystem.Update()
	g.WaveSystem.Update()
	g.FormationSystem.Update(deltaTime)
}
