package system

import (
	"testing"

	"go-galaxy-raid/internal/event"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartIsIdempotentWhileRunning(t *testing.T) {
	f := newFixture(t)
	require.True(t, f.state.Start())
	gen := f.world.Run.Generation
	require.Len(t, f.world.Enemies, 50)

	f.world.Run.Score = 120
	assert.False(t, f.state.Start())
	assert.Equal(t, 120, f.world.Run.Score)
	assert.Equal(t, gen, f.world.Run.Generation)
	assert.Equal(t, 1, f.rec.count(event.RunStarted))
}

func TestPauseOnlyWhileRunning(t *testing.T) {
	f := newFixture(t)
	assert.False(t, f.state.TogglePause())
	assert.False(t, f.world.Run.Paused)

	f.state.Start()
	assert.True(t, f.state.TogglePause())
	assert.True(t, f.world.Run.Paused)
	assert.True(t, f.state.TogglePause())
	assert.False(t, f.world.Run.Paused)
}

func TestResetMidWave(t *testing.T) {
	f := newFixture(t)
	f.state.Start()
	f.world.Run.Score = 340
	f.world.Run.Lives = 1
	f.world.Run.Wave = 4
	f.addBullet(100, 100)
	f.addEnemyBullet(100, 100, 0, 1)

	f.state.Reset()

	run := f.world.Run
	assert.False(t, run.Running)
	assert.Equal(t, 0, run.Score)
	assert.Equal(t, 3, run.Lives)
	assert.Equal(t, 1, run.Wave)
	assert.Empty(t, f.world.Bullets)
	assert.Empty(t, f.world.EnemyBullets)
	assert.Empty(t, f.world.Enemies)
	assert.True(t, f.world.Player.Alive)
}

func TestRespawnRestoresPlayer(t *testing.T) {
	f := newFixture(t)
	f.state.Start()
	p := f.world.Player
	p.X, p.Y = 50, 700
	p.Alive = false
	p.FireCooldown = 0.1
	f.world.Run.Lives = 2

	require.True(t, f.state.Respawn(f.world.Run.Generation))

	sx, sy := f.world.Tuning.PlayerSpawn()
	assert.True(t, p.Alive)
	assert.Equal(t, sx, p.X)
	assert.Equal(t, sy, p.Y)
	assert.Zero(t, p.FireCooldown)
	assert.Equal(t, 1, f.rec.count(event.PlayerRespawned))
}

func TestRespawnWithNoLivesEndsRun(t *testing.T) {
	f := newFixture(t)
	f.state.Start()
	f.world.Player.Alive = false
	f.world.Run.Lives = 0
	f.world.Run.Score = 230

	require.True(t, f.state.Respawn(f.world.Run.Generation))

	assert.False(t, f.world.Run.Running)
	assert.True(t, f.world.Run.GameOver)
	assert.False(t, f.world.Player.Alive)
	require.Equal(t, 1, f.rec.count(event.GameOver))
}

func TestStaleRespawnIsIgnored(t *testing.T) {
	f := newFixture(t)
	f.state.Start()
	gen := f.world.Run.Generation
	f.world.Player.Alive = false

	f.state.Reset()
	f.state.Start()
	f.world.Player.Alive = false

	assert.False(t, f.state.Respawn(gen))
	assert.False(t, f.world.Player.Alive)

	f.state.Reset()
	assert.False(t, f.state.Respawn(f.world.Run.Generation), "not running after reset")
}
